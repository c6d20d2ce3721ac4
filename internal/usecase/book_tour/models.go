package book_tour

import "time"

// Request модель запроса на бронирование тура
type Request struct {
	PropertyID string    // ID объекта недвижимости
	TourTime   time.Time // Запрошенное время тура (граница 30-минутного слота)
	UserID     string    // ID пользователя
}

// Response модель ответа с созданным туром
type Response struct {
	ID          int64     // ID созданного тура
	PropertyID  string    // ID объекта
	ScheduledAt time.Time // Время тура
	UserID      string    // ID пользователя
	Cancelled   bool      // Флаг отмены
	Rescheduled bool      // Флаг переноса

	CreatedAt time.Time // Время создания записи
	UpdatedAt time.Time // Время обновления записи
}
