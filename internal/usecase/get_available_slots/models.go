package get_available_slots

import "github.com/avdmit/HTS-TourService/internal/domain"

// Request модель запроса на получение доступных слотов
type Request struct {
	PropertyID string // ID объекта недвижимости
}

// Response модель ответа со списком доступных слотов
type Response struct {
	PropertyID string        // ID объекта, для которого запрашивались слоты
	Slots      []domain.Slot // Доступные слоты в каноническом порядке
}
