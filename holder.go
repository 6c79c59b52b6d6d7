package lazyval

import (
	"sync/atomic"
	"time"
)

// holder is an immutable snapshot of a computed value. A nil *holder is the
// empty state: nothing was computed yet, or the value was reset or purged.
//
// Timestamps are offsets from the owning Value's epoch, so they only ever
// compare monotonic readings.
type holder[T any] struct {
	val        T
	computedAt time.Duration
	lastAccess atomic.Int64
}

func newHolder[T any](val T, at time.Duration) *holder[T] {
	h := &holder[T]{val: val, computedAt: at}
	h.lastAccess.Store(int64(at))
	return h
}

func (h *holder[T]) stamps(epoch time.Time) Stamps {
	return Stamps{
		ComputedAt:   epoch.Add(h.computedAt),
		LastAccessAt: epoch.Add(time.Duration(h.lastAccess.Load())),
	}
}

// touch advances the last access offset. Racing readers are not serialized:
// any of them may win, an older reading never overwrites a newer one it has seen.
func (h *holder[T]) touch(at time.Duration) {
	if last := h.lastAccess.Load(); int64(at) > last {
		h.lastAccess.CompareAndSwap(last, int64(at))
	}
}
