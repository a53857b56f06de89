package watch

import (
	"sync"

	"gymshop-inventory/internal/model"

	"github.com/asaskevich/EventBus"
)

const (
	topicProducts = "snapshot:products"
	topicEntries  = "snapshot:entries"
)

// Feed fans out replacement snapshots of the product list and the ledger.
// Publishers send the full current result set after every committed change;
// consumers must treat each delivery as a complete replacement, never a
// delta.
type Feed struct {
	bus EventBus.Bus
}

func NewFeed() *Feed {
	return &Feed{bus: EventBus.New()}
}

// Subscription is a live listener handle. Cancel releases it; forgetting to
// cancel leaks the listener for the life of the feed.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// Products registers a handler for product snapshots.
func (f *Feed) Products(handler func(products []model.Product)) (*Subscription, error) {
	if err := f.bus.Subscribe(topicProducts, handler); err != nil {
		return nil, err
	}
	return &Subscription{cancel: func() {
		f.bus.Unsubscribe(topicProducts, handler)
	}}, nil
}

// Entries registers a handler for ledger snapshots.
func (f *Feed) Entries(handler func(entries []model.StockEntry)) (*Subscription, error) {
	if err := f.bus.Subscribe(topicEntries, handler); err != nil {
		return nil, err
	}
	return &Subscription{cancel: func() {
		f.bus.Unsubscribe(topicEntries, handler)
	}}, nil
}

func (f *Feed) PublishProducts(products []model.Product) {
	f.bus.Publish(topicProducts, products)
}

func (f *Feed) PublishEntries(entries []model.StockEntry) {
	f.bus.Publish(topicEntries, entries)
}
