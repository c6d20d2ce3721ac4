package domain

import "time"

// Slot represents a bookable 30-minute tour window.
// Slots are ephemeral values derived from the calendar, never persisted.
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
}

// NewSlot builds a slot starting at the given time
func NewSlot(startTime time.Time) Slot {
	return Slot{
		StartTime: startTime,
		EndTime:   startTime.Add(SlotDuration),
	}
}

// Contains returns true if the given time equals the slot's start
func (s Slot) Contains(t time.Time) bool {
	return s.StartTime.Equal(t)
}
