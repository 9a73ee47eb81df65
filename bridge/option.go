package bridge

import (
	"errors"
	"log/slog"

	"golang.org/x/sync/semaphore"
)

// Option is a function that configures the dispatcher.
type Option func(d *Dispatcher) error

// WithLogger sets the dispatcher logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) error {
		if logger == nil {
			return errors.New("logger was nil")
		}
		d.logger = logger
		return nil
	}
}

// WithConcurrency bounds the number of handlers running at once; zero means unbounded.
func WithConcurrency(limit int) Option {
	return func(d *Dispatcher) error {
		if limit < 0 {
			return errors.New("concurrency must not be negative")
		}
		if limit == 0 {
			d.workers = nil
			return nil
		}
		d.workers = semaphore.NewWeighted(int64(limit))
		return nil
	}
}

// WithIDGenerator overrides the pending call id generator.
func WithIDGenerator(newID func() string) Option {
	return func(d *Dispatcher) error {
		if newID == nil {
			return errors.New("id generator was nil")
		}
		d.newID = newID
		return nil
	}
}
