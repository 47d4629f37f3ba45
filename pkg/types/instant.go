package types

import "fmt"

// lifecycle state of an instant on the table timeline
type InstantState string

const (
	StateRequested InstantState = "REQUESTED"
	StateInflight  InstantState = "INFLIGHT"
	StateCompleted InstantState = "COMPLETED"
)

// an instant identifies one write action on the timeline
// it doubles as the ownership token of a transaction: two writers are the
// same owner iff their instants are equal field by field
// no ordering is defined on purpose, equality is all the manager needs
type Instant struct {
	Timestamp string
	Action    string
	State     InstantState
}

func NewInstant(timestamp, action string, state InstantState) *Instant {
	return &Instant{
		Timestamp: timestamp,
		Action:    action,
		State:     state,
	}
}

func (i Instant) IsCompleted() bool {
	return i.State == StateCompleted
}

// [==>ts__action__STATE] for pending instants, [ts__action__STATE] otherwise
func (i Instant) String() string {
	marker := ""
	if !i.IsCompleted() {
		marker = "==>"
	}
	return fmt.Sprintf("[%s%s__%s__%s]", marker, i.Timestamp, i.Action, i.State)
}

// renders an optional instant for logs
func FormatInstant(i *Instant) string {
	if i == nil {
		return "<none>"
	}
	return i.String()
}

// reports whether two optional instants name the same owner
// both absent counts as equal
func SameInstant(a, b *Instant) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
