package tour

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("tour.repository: tour not found")

	// ErrSlotTaken возвращается при нарушении уникальности активного слота
	// (property_id, scheduled_at) — второй активный тур на тот же слот
	ErrSlotTaken = errors.New("tour.repository: active tour already occupies this slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tour.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tour.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tour.repository: failed to scan row")
)
