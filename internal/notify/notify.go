package notify

import (
	"log"
	"sync"
)

// Notifier delivers one device-level notification. Fire and forget: no
// delivery confirmation, no deduplication contract.
type Notifier interface {
	Notify(title, body string) error
}

// Setup models the one-time notification channel/permission initialization.
// Init may be invoked any number of times; the underlying work runs once and
// later calls return the cached result.
type Setup struct {
	once sync.Once
	err  error
}

func (s *Setup) Init(fn func() error) error {
	s.once.Do(func() {
		s.err = fn()
	})
	return s.err
}

// LogNotifier writes notifications to the process log. Used as the fallback
// delivery channel and in tests.
type LogNotifier struct{}

func (LogNotifier) Notify(title, body string) error {
	log.Printf("[notify] %s: %s", title, body)
	return nil
}
