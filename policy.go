package lazyval

import (
	"fmt"
	"time"
)

const (
	PolicyNever        = "never"
	PolicyLifetime     = "lifetime"
	PolicyIdle         = "idle"
	PolicyIdleLifetime = "idle_lifetime"
)

// Stamps are the timestamps of a computed value the policy decides on.
// Both carry a monotonic clock reading.
type Stamps struct {
	ComputedAt   time.Time
	LastAccessAt time.Time
}

// Policy decides whether a computed value has gone stale.
type Policy interface {
	IsStale(s Stamps, now time.Time) bool
	// TouchOnRead reports whether fresh reads must advance LastAccessAt.
	TouchOnRead() bool
}

type neverPolicy struct{}

// Never keeps the first computed value forever.
func Never() Policy { return neverPolicy{} }

func (neverPolicy) IsStale(Stamps, time.Time) bool { return false }
func (neverPolicy) TouchOnRead() bool              { return false }
func (neverPolicy) String() string                 { return PolicyNever }

type lifetimePolicy struct {
	living time.Duration
}

// FixedLifetime expires a value d after it was computed.
func FixedLifetime(d time.Duration) Policy { return lifetimePolicy{living: d} }

func (p lifetimePolicy) IsStale(s Stamps, now time.Time) bool {
	return now.After(s.ComputedAt.Add(p.living))
}

func (p lifetimePolicy) TouchOnRead() bool { return false }
func (p lifetimePolicy) String() string    { return fmt.Sprintf("%s(%s)", PolicyLifetime, p.living) }

type idlePolicy struct {
	idle time.Duration
}

// FixedIdle expires a value that was not read for d.
func FixedIdle(d time.Duration) Policy { return idlePolicy{idle: d} }

func (p idlePolicy) IsStale(s Stamps, now time.Time) bool {
	return now.After(s.LastAccessAt.Add(p.idle))
}

func (p idlePolicy) TouchOnRead() bool { return true }
func (p idlePolicy) String() string    { return fmt.Sprintf("%s(%s)", PolicyIdle, p.idle) }

type idleLifetimePolicy struct {
	idle   idlePolicy
	living lifetimePolicy
}

// IdleAndLifetime expires a value on whichever bound is hit first.
func IdleAndLifetime(idle, living time.Duration) Policy {
	return idleLifetimePolicy{
		idle:   idlePolicy{idle: idle},
		living: lifetimePolicy{living: living},
	}
}

func (p idleLifetimePolicy) IsStale(s Stamps, now time.Time) bool {
	return p.living.IsStale(s, now) || p.idle.IsStale(s, now)
}

func (p idleLifetimePolicy) TouchOnRead() bool { return true }

func (p idleLifetimePolicy) String() string {
	return fmt.Sprintf("%s(%s,%s)", PolicyIdleLifetime, p.idle.idle, p.living.living)
}

// ParsePolicy builds a policy by name. Durations not used by the named policy are ignored.
func ParsePolicy(name string, idle, lifetime time.Duration) (Policy, error) {
	if idle < 0 || lifetime < 0 {
		return nil, fmt.Errorf("%w: negative duration", ErrInvalidPolicy)
	}

	switch name {
	case "", PolicyNever:
		return Never(), nil
	case PolicyLifetime:
		if lifetime == 0 {
			return nil, fmt.Errorf("%w: %s requires lifetime", ErrInvalidPolicy, name)
		}
		return FixedLifetime(lifetime), nil
	case PolicyIdle:
		if idle == 0 {
			return nil, fmt.Errorf("%w: %s requires idle", ErrInvalidPolicy, name)
		}
		return FixedIdle(idle), nil
	case PolicyIdleLifetime:
		if idle == 0 || lifetime == 0 {
			return nil, fmt.Errorf("%w: %s requires idle and lifetime", ErrInvalidPolicy, name)
		}
		return IdleAndLifetime(idle, lifetime), nil
	}
	return nil, fmt.Errorf("%w: unknown policy %q", ErrInvalidPolicy, name)
}
