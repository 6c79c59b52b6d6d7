package lazyval

// Resettable is a Value that can be emptied on demand.
type Resettable[T any] struct {
	*Value[T]
}

func NewResettable[T any](compute func() (T, error), opts ...Option[T]) *Resettable[T] {
	return &Resettable[T]{Value: New(compute, opts...)}
}

// Reset drops the current value whether it is stale or not, so the next Get
// recomputes. The dropped value goes to the dispose hook.
func (r *Resettable[T]) Reset() {
	startTime := now()
	defer r.mtr.ObserveRequest(MethodReset, startTime)

	if superseded := r.release(false); superseded != nil {
		r.disposeValue(MethodReset, superseded.val)
	}
}
