package ledger

import "time"

// Clock supplies the calendar date. Injectable so date-boundary behavior
// (daily limit resets, monthly interest) is testable.
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }
