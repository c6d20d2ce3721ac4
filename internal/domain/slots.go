package domain

import "time"

// BuildCanonicalSlots generates the full grid of bookable slots for the next
// TourWindowDays working days, 10:00 through 16:30 with a 30-minute step.
// Each of the three day offsets is advanced past weekends independently, one
// day at a time, so the result is deterministic for a given now.
func BuildCanonicalSlots(now time.Time) []Slot {
	slots := make([]Slot, 0, TourWindowDays*SlotsPerDay)

	for offset := 1; offset <= TourWindowDays; offset++ {
		day := nextWorkingDay(now, offset)
		slots = append(slots, buildSlotsForDay(day)...)
	}

	return slots
}

// FilterAvailableSlots removes from the canonical grid every slot occupied by
// an active tour, together with the slots immediately before and after it.
// The buffer keeps back-to-back tours from ever being booked on a property.
func FilterAvailableSlots(slots []Slot, tours []*Tour) []Slot {
	available := make([]Slot, 0, len(slots))

	for _, slot := range slots {
		if !slotBlocked(slot, tours) {
			available = append(available, slot)
		}
	}

	return available
}

// slotBlocked reports whether the slot collides with any active tour or its
// 30-minute buffer on either side
func slotBlocked(slot Slot, tours []*Tour) bool {
	for _, tour := range tours {
		occupied := NewSlot(tour.ScheduledAt)

		if slot.StartTime.Equal(occupied.StartTime) ||
			slot.EndTime.Equal(occupied.StartTime) ||
			slot.StartTime.Equal(occupied.EndTime) {
			return true
		}
	}

	return false
}

// nextWorkingDay returns now shifted by fromDays days, skipping forward one
// day at a time while the candidate lands on a Saturday or Sunday
func nextWorkingDay(now time.Time, fromDays int) time.Time {
	day := now.AddDate(0, 0, fromDays)

	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		return nextWorkingDay(now, fromDays+1)
	}

	return day
}

// buildSlotsForDay generates the 14 slots of a single calendar day
func buildSlotsForDay(day time.Time) []Slot {
	first := time.Date(day.Year(), day.Month(), day.Day(),
		FirstSlotHour, FirstSlotMinute, 0, 0, day.Location())
	last := time.Date(day.Year(), day.Month(), day.Day(),
		LastSlotHour, LastSlotMinute, 0, 0, day.Location())

	slots := make([]Slot, 0, SlotsPerDay)
	for start := first; !start.After(last); start = start.Add(SlotDuration) {
		slots = append(slots, NewSlot(start))
	}

	return slots
}
