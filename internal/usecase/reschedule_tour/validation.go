package reschedule_tour

import (
	"fmt"
	"time"

	"github.com/avdmit/HTS-TourService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TourID <= 0 {
		return fmt.Errorf("%w: tourId must be positive", ErrInvalidInput)
	}

	if req.NewTourTime.IsZero() {
		return fmt.Errorf("%w: tourTime is required", ErrInvalidInput)
	}

	return nil
}

// validateScheduleWindow проверяет правило окна планирования для нового
// времени тура: запрет на текущий день и на завтра после 21:00
func validateScheduleWindow(tourTime, now time.Time) error {
	if now.Hour() >= domain.TomorrowCutoffHour && isSameDay(tourTime, now.AddDate(0, 0, 1)) {
		return fmt.Errorf("%w: cannot schedule a tour for tomorrow after 9.00pm", ErrInvalidScheduleWindow)
	}

	if isSameDay(tourTime, now) {
		return fmt.Errorf("%w: cannot schedule a tour for the current day", ErrInvalidScheduleWindow)
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// slotListContains проверяет, что время присутствует среди доступных слотов
func slotListContains(slots []domain.Slot, tourTime time.Time) bool {
	for _, slot := range slots {
		if slot.Contains(tourTime) {
			return true
		}
	}
	return false
}
