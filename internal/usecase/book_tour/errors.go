package book_tour

import "errors"

var (
	// ErrInvalidScheduleWindow возвращается при нарушении правила окна
	// планирования: бронирование на текущий день или на завтра после 21:00
	ErrInvalidScheduleWindow = errors.New("book_tour: tour time is outside the allowed schedule window")

	// ErrSelfServeUnavailable возвращается, когда объект закрыт для
	// самостоятельных туров или шлюз доступности не ответил
	ErrSelfServeUnavailable = errors.New("book_tour: property is not available to self serve tours")

	// ErrSlotUnavailable возвращается, когда запрошенное время отсутствует
	// среди доступных слотов объекта
	ErrSlotUnavailable = errors.New("book_tour: tour slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_tour: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_tour: internal error")
)
