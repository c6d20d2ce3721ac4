package domain

import "time"

// Slot grid constants
const (
	// SlotDuration is the fixed length of every tour slot
	SlotDuration = 30 * time.Minute

	// FirstSlotHour / FirstSlotMinute is the start of the first slot of a day (10:00)
	FirstSlotHour   = 10
	FirstSlotMinute = 0

	// LastSlotHour / LastSlotMinute is the start of the last slot of a day (16:30)
	LastSlotHour   = 16
	LastSlotMinute = 30

	// TourWindowDays is how many working days ahead slots are offered
	TourWindowDays = 3

	// SlotsPerDay is the number of slots between 10:00 and 16:30 inclusive
	SlotsPerDay = 14
)

// Scheduling window constants
const (
	// TomorrowCutoffHour is the local hour after which next-day bookings are rejected
	TomorrowCutoffHour = 21
)

// Time format constants
const (
	DateFormat = "2006-01-02"
)
