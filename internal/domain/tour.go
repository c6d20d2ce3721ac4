package domain

import "time"

// Tour represents a self-serve property tour booking
type Tour struct {
	ID          int64
	PropertyID  string
	ScheduledAt time.Time
	UserID      string
	Cancelled   bool
	Rescheduled bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the tour still occupies its slot:
// not cancelled, not superseded by a reschedule, and not in the past
func (t *Tour) IsActive(now time.Time) bool {
	return !t.Cancelled && !t.Rescheduled && !t.ScheduledAt.Before(now)
}

// IsPast returns true if the tour's slot has already started or passed
func (t *Tour) IsPast(now time.Time) bool {
	return !t.ScheduledAt.After(now)
}

// Stats holds aggregate tour counters for reporting
type Stats struct {
	Booked      int
	Cancelled   int
	Rescheduled int
}
