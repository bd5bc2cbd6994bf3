package store

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
)

const defaultWriteTimeout = 5 * time.Second

type Option func(*Store)

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithPersistErrorHandler is called with a *PersistError for every failed write.
// It runs on the persist goroutine without any store lock held.
func WithPersistErrorHandler(fn func(error)) Option {
	return func(s *Store) {
		s.onPersistError = fn
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// WithCurrency sets the currency of the derived cart summary.
func WithCurrency(cur currency.Unit) Option {
	return func(s *Store) {
		s.currency = cur
	}
}
