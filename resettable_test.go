package lazyval

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestResettable_Reset_ForcesRecompute(t *testing.T) {
	cnt := &counter{}
	v := NewResettable(cnt.compute)

	first := requireGet(t, v.Value)
	require.Same(t, first, requireGet(t, v.Value))

	v.Reset()
	require.False(t, v.Charged())

	second := requireGet(t, v.Value)
	require.NotSame(t, first, second)
	require.Equal(t, int32(2), cnt.Calls())
}

func TestResettable_Reset_FreshValueWithLifetime(t *testing.T) {
	clock := newTestClock()
	cnt := &counter{}
	v := NewResettable(cnt.compute, WithPolicy[*int](FixedLifetime(time.Hour)), WithClock[*int](clock.Now))

	first := requireGet(t, v.Value)
	clock.Advance(time.Second)
	v.Reset()

	require.NotSame(t, first, requireGet(t, v.Value))
	require.Equal(t, int32(2), cnt.Calls())
}

func TestResettable_Reset_DisposesCurrentValue(t *testing.T) {
	cnt := &counter{}
	var disposed []int
	v := NewResettable(cnt.compute, WithDispose(func(old *int) error {
		disposed = append(disposed, *old)
		return nil
	}))

	v.Reset()
	require.Empty(t, disposed)

	requireGet(t, v.Value)
	v.Reset()
	v.Reset()
	require.Equal(t, []int{1}, disposed)

	requireGet(t, v.Value)
	v.Reset()
	require.Equal(t, []int{1, 2}, disposed)
}

func TestResettable_Reset_Concurrent(t *testing.T) {
	cnt := &counter{}

	var mtx sync.Mutex
	disposed := make(map[int]int)
	v := NewResettable(cnt.compute, WithDispose(func(old *int) error {
		mtx.Lock()
		disposed[*old]++
		mtx.Unlock()
		return nil
	}))

	resets := atomic.Int32{}
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				if _, err := v.Get(); err != nil {
					return err
				}
				if j%10 == 0 {
					v.Reset()
					resets.Add(1)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	mtx.Lock()
	defer mtx.Unlock()
	for val, count := range disposed {
		require.Equal(t, 1, count, "value %d disposed more than once", val)
	}
	require.LessOrEqual(t, len(disposed), int(cnt.Calls()))
}
