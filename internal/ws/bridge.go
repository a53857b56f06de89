package ws

import (
	"gymshop-inventory/internal/model"
	"gymshop-inventory/internal/watch"
)

// AttachFeed forwards snapshot publications to connected clients. Each
// message carries the full current result set, mirroring the feed's
// replacement-snapshot contract.
func AttachFeed(hub *Hub, feed *watch.Feed) ([]*watch.Subscription, error) {
	productsSub, err := feed.Products(func(products []model.Product) {
		hub.BroadcastJSON(map[string]interface{}{
			"type": "products_snapshot",
			"data": products,
		})
	})
	if err != nil {
		return nil, err
	}

	entriesSub, err := feed.Entries(func(entries []model.StockEntry) {
		hub.BroadcastJSON(map[string]interface{}{
			"type": "entries_snapshot",
			"data": entries,
		})
	})
	if err != nil {
		productsSub.Cancel()
		return nil, err
	}

	return []*watch.Subscription{productsSub, entriesSub}, nil
}

// AlertNotifier pushes notifications to connected clients, which render them
// as device alerts.
type AlertNotifier struct {
	hub *Hub
}

func NewAlertNotifier(hub *Hub) *AlertNotifier {
	return &AlertNotifier{hub: hub}
}

func (n *AlertNotifier) Notify(title, body string) error {
	n.hub.BroadcastJSON(map[string]interface{}{
		"type":  "low_stock_alert",
		"title": title,
		"body":  body,
	})
	return nil
}
