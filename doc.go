// Package lazyval provides a single-slot lazy value that is computed on first
// demand, cached, and recomputed transparently once it goes stale.
//
// # Basic Usage
//
// A permanently memoized value:
//
//	cfg := lazyval.NewLazy(loadConfig)
//	c, err := cfg.Get()
//
// A value recomputed every five minutes:
//
//	token := lazyval.NewCache(fetchToken, 5*time.Minute)
//
// A connection dropped after a minute without use, or after an hour at most,
// closed when it is replaced:
//
//	conn := lazyval.NewIdleCache(dial, time.Minute, time.Hour,
//	    lazyval.WithDispose(func(c *Conn) error { return c.Close() }),
//	)
//
// # Expiration Policies
//
// [Never], [FixedLifetime], [FixedIdle] and [IdleAndLifetime] decide when a
// value is stale. All of them compare monotonic clock readings, so wall clock
// adjustments never make a value look fresher or older than it is.
//
// # Concurrency
//
// Reading a fresh value takes no lock. When the value is absent or stale,
// callers serialize on a per-value mutex and only the first of them calls
// the compute func; the others get its result. A failed computation publishes
// nothing: the error goes to the caller that ran it and the next Get retries.
//
// The dispose hook runs after the mutex is released, once per replaced value.
// Its errors and panics are logged and counted, never returned.
//
// # Resetting and Purging
//
// [Resettable.Reset] drops the value regardless of its age. [Value.Purge] and
// [Value.SchedulePurge] drop only stale values, so the resources they hold are
// released even when nobody reads them.
package lazyval
