package get_available_slots

import "errors"

var (
	// ErrSelfServeUnavailable возвращается, когда объект закрыт для
	// самостоятельных туров или шлюз доступности не ответил
	ErrSelfServeUnavailable = errors.New("get_available_slots: property is not available to self serve tours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
