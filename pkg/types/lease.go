package types

import "time"

// a lease is time-bound ownership held by one lock client
// every table lock hangs off a lease; when the lease runs out its locks go with it
type Lease struct {
	LeaseID   uint64
	OwnerID   string
	ExpiresAt time.Duration //monotonic time from server start
	TTL       time.Duration
}

// elapsed is monotonic time from server start
func (l *Lease) IsExpired(elapsed time.Duration) bool {
	return elapsed >= l.ExpiresAt
}
