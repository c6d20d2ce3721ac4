package reschedule_tour

import "errors"

var (
	// ErrTourNotFound возвращается, когда активный тур не найден по ID,
	// в том числе при гонке между проверкой и пометкой переноса
	ErrTourNotFound = errors.New("reschedule_tour: tour unavailable to reschedule")

	// ErrTourNotReschedulable возвращается при попытке перенести тур,
	// время которого уже наступило
	ErrTourNotReschedulable = errors.New("reschedule_tour: cannot reschedule a past tour")

	// ErrInvalidScheduleWindow возвращается при нарушении правила окна
	// планирования для нового времени тура
	ErrInvalidScheduleWindow = errors.New("reschedule_tour: tour time is outside the allowed schedule window")

	// ErrSlotUnavailable возвращается, когда новое время отсутствует среди
	// доступных слотов объекта
	ErrSlotUnavailable = errors.New("reschedule_tour: tour slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_tour: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_tour: internal error")
)
