package order

import "time"

// StatusEvent is an audit trail entry. Events are appended, never changed.
type StatusEvent struct {
	From Status
	To   Status
	At   time.Time
}
