package lazyval

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

var now = time.Now

// Value computes a value on first demand, caches it and recomputes it once
// its policy judges it stale. It is safe for concurrent use.
//
// Reads of a fresh value take no lock. Recomputation is serialized per Value,
// so concurrent callers that find the same stale value trigger one compute call.
type Value[T any] struct {
	mtx     sync.Mutex
	current atomic.Pointer[holder[T]]

	compute func() (T, error)
	dispose DisposeFunc[T]
	policy  Policy
	mtr     Metrics
	logger  *slog.Logger
	now     func() time.Time
	epoch   time.Time
}

// New returns a Value computed by compute. Without options it never expires.
func New[T any](compute func() (T, error), opts ...Option[T]) *Value[T] {
	if compute == nil {
		panic("lazyval: nil compute func")
	}

	v := &Value[T]{
		compute: compute,
		policy:  Never(),
		mtr:     NewNopMetrics(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     now,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.epoch = v.now()
	return v
}

// NewLazy returns a permanently memoized Value.
func NewLazy[T any](compute func() (T, error), opts ...Option[T]) *Value[T] {
	return New(compute, append(opts[:len(opts):len(opts)], WithPolicy[T](Never()))...)
}

// NewCache returns a Value recomputed lifetime after each computation.
func NewCache[T any](compute func() (T, error), lifetime time.Duration, opts ...Option[T]) *Value[T] {
	return New(compute, append(opts[:len(opts):len(opts)], WithPolicy[T](FixedLifetime(lifetime)))...)
}

// NewIdleCache returns a Value recomputed after idle without reads, or lifetime
// after computation, whichever comes first. Zero lifetime disables the lifetime bound.
func NewIdleCache[T any](compute func() (T, error), idle, lifetime time.Duration, opts ...Option[T]) *Value[T] {
	policy := FixedIdle(idle)
	if lifetime > 0 {
		policy = IdleAndLifetime(idle, lifetime)
	}
	return New(compute, append(opts[:len(opts):len(opts)], WithPolicy[T](policy))...)
}

// FromFunc adapts a compute func that cannot fail.
func FromFunc[T any](fn func() T) func() (T, error) {
	return func() (T, error) {
		return fn(), nil
	}
}

// Get returns the current value, computing it if it is absent or stale.
// A compute error is returned only to the caller that ran the computation,
// the previous value stays in place and the next Get retries.
func (v *Value[T]) Get() (T, error) {
	observed := v.current.Load()
	if observed != nil {
		if at := v.since(); !v.isStale(observed, at) {
			v.touch(observed, at)
			v.mtr.AddHits(MethodGet, 1)
			return observed.val, nil
		}
	}

	fresh, superseded, err := v.recharge(observed)
	if err != nil {
		v.logger.Warn("compute value failed", slog.Any("error", err))
		var emptyVal T
		return emptyVal, err
	}

	if superseded != nil {
		v.disposeValue(MethodGet, superseded.val)
	}
	return fresh.val, nil
}

// MustGet is Get for callers that cannot handle errors. A compute failure
// panics with an *InitializationError.
func (v *Value[T]) MustGet() T {
	val, err := v.Get()
	if err != nil {
		panic(&InitializationError{Err: err})
	}
	return val
}

// Supplier returns MustGet as a plain function.
func (v *Value[T]) Supplier() func() T {
	return v.MustGet
}

// Peek returns the current value if it is fresh. It never computes and
// does not count as an access for idle policies.
func (v *Value[T]) Peek() (T, bool) {
	if h := v.current.Load(); h != nil && !v.isStale(h, v.since()) {
		return h.val, true
	}
	var emptyVal T
	return emptyVal, false
}

// MustPeek returns the held value whether it is stale or not.
// It panics with ErrNotYetAvailable if nothing is held.
func (v *Value[T]) MustPeek() T {
	h := v.current.Load()
	if h == nil {
		panic(ErrNotYetAvailable)
	}
	return h.val
}

// Charged reports whether a value is held, fresh or stale.
func (v *Value[T]) Charged() bool {
	return v.current.Load() != nil
}

// recharge replaces observed with a freshly computed holder unless another
// caller already replaced it with a fresh one. superseded is the holder that
// was replaced, nil if the slot was empty or nothing was replaced.
func (v *Value[T]) recharge(observed *holder[T]) (fresh, superseded *holder[T], err error) {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	current := v.current.Load()
	if current != observed && current != nil {
		if at := v.since(); !v.isStale(current, at) {
			v.touch(current, at)
			v.mtr.AddHits(MethodGet, 1)
			return current, nil, nil
		}
	}
	v.mtr.AddMisses(MethodGet, 1)

	startTime := now()
	val, err := v.compute()
	v.mtr.ObserveRequest(MethodCompute, startTime)
	if err != nil {
		v.mtr.AddErrors(MethodCompute, 1)
		return nil, nil, fmt.Errorf("%w: %w", ErrComputeFailed, err)
	}

	fresh = newHolder(val, v.since())
	v.current.Store(fresh)
	if current == nil {
		v.mtr.SetCharged(true)
	}
	return fresh, current, nil
}

// release empties the slot and returns what it held. With onlyStale it
// keeps a fresh value in place.
func (v *Value[T]) release(onlyStale bool) *holder[T] {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	current := v.current.Load()
	if current == nil {
		return nil
	}
	if onlyStale && !v.isStale(current, v.since()) {
		return nil
	}

	v.current.Store(nil)
	v.mtr.SetCharged(false)
	return current
}

func (v *Value[T]) since() time.Duration {
	return v.now().Sub(v.epoch)
}

func (v *Value[T]) isStale(h *holder[T], at time.Duration) bool {
	return v.policy.IsStale(h.stamps(v.epoch), v.epoch.Add(at))
}

func (v *Value[T]) touch(h *holder[T], at time.Duration) {
	if v.policy.TouchOnRead() {
		h.touch(at)
	}
}
