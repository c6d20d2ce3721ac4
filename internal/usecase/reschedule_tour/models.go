package reschedule_tour

import "time"

// Request модель запроса на перенос тура
type Request struct {
	TourID      int64     // ID переносимого тура
	NewTourTime time.Time // Новое время тура (граница 30-минутного слота)
}

// Response модель ответа с новым туром, заменившим перенесенный
type Response struct {
	ID          int64     // ID нового тура
	PropertyID  string    // ID объекта
	ScheduledAt time.Time // Новое время тура
	UserID      string    // ID пользователя
	Cancelled   bool      // Флаг отмены
	Rescheduled bool      // Флаг переноса

	CreatedAt time.Time // Время создания записи
	UpdatedAt time.Time // Время обновления записи
}
