package tours

import "errors"

var (
	// ErrTourNotFound возвращается, когда активный тур не найден по ID
	ErrTourNotFound = errors.New("tours.service: tour unavailable to cancel")

	// ErrTourNotCancellable возвращается при попытке отменить тур,
	// время которого уже наступило
	ErrTourNotCancellable = errors.New("tours.service: cannot cancel a past tour")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tours.service: internal error")
)
