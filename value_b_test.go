package lazyval

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func BenchmarkValue_Get(b *testing.B) {
	type benchCase struct {
		policy        Policy
		computeDelay  time.Duration
		purgeInterval time.Duration
	}

	benchCases := map[string]benchCase{
		"never": {
			policy: Never(),
		},
		"lifetime": {
			policy:        FixedLifetime(time.Millisecond),
			computeDelay:  10 * time.Microsecond,
			purgeInterval: time.Millisecond,
		},
		"idle_lifetime": {
			policy:        IdleAndLifetime(time.Millisecond, 10*time.Millisecond),
			computeDelay:  10 * time.Microsecond,
			purgeInterval: time.Millisecond,
		},
	}

	for name, tc := range benchCases {
		b.Run(name, func(b *testing.B) {
			v := New(func() (string, error) {
				time.Sleep(tc.computeDelay)
				return fmt.Sprintf("val %d", time.Now().UnixNano()), nil
			}, WithPolicy[string](tc.policy))

			ctx, cancel := context.WithCancel(context.Background())
			var purgeDone chan struct{}
			if tc.purgeInterval > 0 {
				purgeDone = v.SchedulePurge(ctx, tc.purgeInterval)
			}

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					_, _ = v.Get()
				}
			})
			b.StopTimer()

			cancel()
			if purgeDone != nil {
				<-purgeDone
			}
		})
	}
}
