package lazyval

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testClock struct {
	base   time.Time
	offset atomic.Int64
}

func newTestClock() *testClock {
	return &testClock{base: time.Now()}
}

func (c *testClock) Now() time.Time {
	return c.base.Add(time.Duration(c.offset.Load()))
}

func (c *testClock) Advance(d time.Duration) {
	c.offset.Add(int64(d))
}

// counter hands out a new *int on every call so generations compare by pointer.
type counter struct {
	calls atomic.Int32
}

func (c *counter) compute() (*int, error) {
	val := int(c.calls.Add(1))
	return &val, nil
}

func (c *counter) Calls() int32 {
	return c.calls.Load()
}

func requireGet(t *testing.T, v *Value[*int]) *int {
	t.Helper()
	val, err := v.Get()
	require.NoError(t, err)
	require.NotNil(t, val)
	return val
}
