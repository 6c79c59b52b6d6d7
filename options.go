package lazyval

import (
	"log/slog"
	"time"
)

// DisposeFunc releases whatever a superseded value holds.
type DisposeFunc[T any] func(old T) error

type Option[T any] func(*Value[T])

// WithPolicy sets the expiration policy. Nil keeps the default Never policy.
func WithPolicy[T any](p Policy) Option[T] {
	return func(v *Value[T]) {
		if p != nil {
			v.policy = p
		}
	}
}

// WithConfig sets the policy described by cfg. Invalid configs panic, so
// validate them with Config.Build first when they come from user input.
func WithConfig[T any](cfg Config) Option[T] {
	return func(v *Value[T]) {
		p, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		v.policy = p
	}
}

// WithDispose sets the hook called with every superseded value.
func WithDispose[T any](fn func(old T) error) Option[T] {
	return func(v *Value[T]) {
		v.dispose = fn
	}
}

func WithMetrics[T any](mtr Metrics) Option[T] {
	return func(v *Value[T]) {
		if mtr != nil {
			v.mtr = mtr
		}
	}
}

func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(v *Value[T]) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithClock replaces time.Now. The clock must return readings that carry
// a monotonic component or never move backwards.
func WithClock[T any](clock func() time.Time) Option[T] {
	return func(v *Value[T]) {
		if clock != nil {
			v.now = clock
		}
	}
}
