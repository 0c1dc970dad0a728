package cache

import "time"

// Policy controls how long a stored entry remains valid.
//
// The zero Policy expires entries immediately, which effectively disables
// caching for that key.
type Policy struct {
	ttl     time.Duration
	forever bool
}

// FixedTTL returns a policy under which entries expire d after being stored.
// A non-positive d expires entries immediately.
func FixedTTL(d time.Duration) Policy {
	return Policy{ttl: d}
}

// Permanent is the policy for entries that never expire, such as
// closed-season records. Clear still removes them.
var Permanent = Policy{forever: true}

// IsPermanent reports whether entries under this policy never expire.
func (p Policy) IsPermanent() bool {
	return p.forever
}

// TTL returns the fixed lifetime, or zero for permanent policies.
func (p Policy) TTL() time.Duration {
	if p.forever {
		return 0
	}
	return p.ttl
}

// expiry converts the policy into an absolute deadline.
// The zero time marks an entry that never expires.
func (p Policy) expiry(now time.Time) time.Time {
	if p.forever {
		return time.Time{}
	}
	return now.Add(p.ttl)
}
