package notify

import (
	"fmt"
	"log"

	"gymshop-inventory/internal/model"
	"gymshop-inventory/internal/watch"
)

// LowStockObserver alerts on every product at or below its reorder level.
// It re-fires for a product on every snapshot while the product stays low;
// there is no dedup. That matches the product behavior, not an oversight.
type LowStockObserver struct {
	feed     *watch.Feed
	notifier Notifier
	setup    Setup
	sub      *watch.Subscription
}

func NewLowStockObserver(feed *watch.Feed, notifier Notifier) *LowStockObserver {
	return &LowStockObserver{feed: feed, notifier: notifier}
}

// Start subscribes the observer to product snapshots. Safe to call more
// than once.
func (o *LowStockObserver) Start() error {
	return o.setup.Init(func() error {
		sub, err := o.feed.Products(o.scan)
		if err != nil {
			return err
		}
		o.sub = sub
		return nil
	})
}

// Stop releases the snapshot listener.
func (o *LowStockObserver) Stop() {
	if o.sub != nil {
		o.sub.Cancel()
	}
}

func (o *LowStockObserver) scan(products []model.Product) {
	for _, p := range products {
		if !p.LowStock() {
			continue
		}
		body := fmt.Sprintf("%s is running low (%d left)", p.Name, p.CurrentStock)
		if err := o.notifier.Notify("Low Stock Alert", body); err != nil {
			log.Printf("low stock alert for %s failed: %v", p.Name, err)
		}
	}
}
