package book_tour

import (
	"fmt"
	"time"

	"github.com/avdmit/HTS-TourService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID == "" {
		return fmt.Errorf("%w: propertyId is required", ErrInvalidInput)
	}

	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.TourTime.IsZero() {
		return fmt.Errorf("%w: tourTime is required", ErrInvalidInput)
	}

	return nil
}

// validateScheduleWindow проверяет правило окна планирования для времени тура:
//   - после 21:00 нельзя бронировать на завтрашний календарный день;
//   - бронировать на текущий календарный день нельзя никогда.
//
// Принадлежность времени к сетке допустимых слотов проверяется отдельно,
// через членство в доступных слотах.
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
