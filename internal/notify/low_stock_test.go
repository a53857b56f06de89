package notify

import (
	"errors"
	"fmt"
	"testing"

	"gymshop-inventory/internal/model"
	"gymshop-inventory/internal/watch"
)

type recordingNotifier struct {
	calls []string
}

func (r *recordingNotifier) Notify(title, body string) error {
	r.calls = append(r.calls, fmt.Sprintf("%s|%s", title, body))
	return nil
}

func product(name string, stock, reorder int) model.Product {
	return model.Product{
		Name:         name,
		CurrentStock: stock,
		ReorderLevel: reorder,
	}
}

func TestObserverAlertsEveryLowProduct(t *testing.T) {
	feed := watch.NewFeed()
	notifier := &recordingNotifier{}
	obs := NewLowStockObserver(feed, notifier)
	if err := obs.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer obs.Stop()

	feed.PublishProducts([]model.Product{
		product("Whey Protein 1kg", 5, 5),
		product("Shaker Bottle", 6, 5),
		product("Creatine 300g", 0, 3),
	})

	if len(notifier.calls) != 2 {
		t.Fatalf("expected 2 alerts, got %d: %v", len(notifier.calls), notifier.calls)
	}
	want := "Low Stock Alert|Whey Protein 1kg is running low (5 left)"
	if notifier.calls[0] != want {
		t.Errorf("expected %q, got %q", want, notifier.calls[0])
	}
}

func TestObserverRefiresOnEverySnapshot(t *testing.T) {
	feed := watch.NewFeed()
	notifier := &recordingNotifier{}
	obs := NewLowStockObserver(feed, notifier)
	if err := obs.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer obs.Stop()

	low := []model.Product{product("Creatine 300g", 1, 3)}
	feed.PublishProducts(low)
	feed.PublishProducts(low)

	// No dedup: a product that stays low alerts again on the next snapshot.
	if len(notifier.calls) != 2 {
		t.Errorf("expected 2 alerts across 2 snapshots, got %d", len(notifier.calls))
	}
}

func TestObserverStartIsIdempotent(t *testing.T) {
	feed := watch.NewFeed()
	notifier := &recordingNotifier{}
	obs := NewLowStockObserver(feed, notifier)
	if err := obs.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := obs.Start(); err != nil {
		t.Fatalf("second start failed: %v", err)
	}
	defer obs.Stop()

	feed.PublishProducts([]model.Product{product("Creatine 300g", 1, 3)})

	if len(notifier.calls) != 1 {
		t.Errorf("double Start must not double-subscribe, got %d alerts", len(notifier.calls))
	}
}

func TestObserverStopsAlerting(t *testing.T) {
	feed := watch.NewFeed()
	notifier := &recordingNotifier{}
	obs := NewLowStockObserver(feed, notifier)
	if err := obs.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	feed.PublishProducts([]model.Product{product("Creatine 300g", 1, 3)})
	obs.Stop()
	feed.PublishProducts([]model.Product{product("Creatine 300g", 1, 3)})

	if len(notifier.calls) != 1 {
		t.Errorf("expected no alerts after Stop, got %d", len(notifier.calls))
	}
}

func TestSetupCachesResult(t *testing.T) {
	var s Setup
	runs := 0
	wantErr := errors.New("permission denied")

	for i := 0; i < 3; i++ {
		err := s.Init(func() error {
			runs++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected cached error, got %v", err)
		}
	}
	if runs != 1 {
		t.Errorf("init body must run once, ran %d times", runs)
	}
}
