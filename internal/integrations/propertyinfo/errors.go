package propertyinfo

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("propertyinfo client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("propertyinfo client: invalid response")

	// ErrUnavailable возвращается, когда сервис недоступен или флаг политики
	// посещений отсутствует в ответе. Вызывающие трактуют это как "unknown"
	// и отказывают в операции (fail closed).
	ErrUnavailable = errors.New("propertyinfo client: visit policy unavailable")
)
