package lazyval

import (
	"fmt"
	"log/slog"
)

// disposeValue hands a superseded value to the dispose hook. It must be
// called with no lock held. Failures are logged and counted, never returned.
func (v *Value[T]) disposeValue(method string, old T) {
	if v.dispose == nil {
		return
	}

	startTime := now()
	defer v.mtr.ObserveRequest(MethodDispose, startTime)

	if err := v.callDispose(old); err != nil {
		v.mtr.AddErrors(MethodDispose, 1)
		v.logger.Error("dispose value failed",
			slog.String("method", method),
			slog.Any("error", err),
		)
	}
}

func (v *Value[T]) callDispose(old T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrDisposeFailed, r)
		}
	}()

	if disposeErr := v.dispose(old); disposeErr != nil {
		return fmt.Errorf("%w: %w", ErrDisposeFailed, disposeErr)
	}
	return nil
}
