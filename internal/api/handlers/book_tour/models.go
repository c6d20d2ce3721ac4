package book_tour

import (
	"time"

	bookTour "github.com/avdmit/HTS-TourService/internal/usecase/book_tour"
)

// BookTourRequest HTTP request model
type BookTourRequest struct {
	PropertyID string `json:"propertyId"`
	TourTime   string `json:"tourTime"` // RFC3339, например "2025-10-15T10:30:00Z"
	UserID     string `json:"userId"`
}

// TourResponse HTTP response model
type TourResponse struct {
	ID          int64  `json:"id"`
	PropertyID  string `json:"propertyId"`
	ScheduledAt string `json:"scheduledAt"`
	UserID      string `json:"userId"`
	Cancelled   bool   `json:"cancelled"`
	Rescheduled bool   `json:"rescheduled"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookTourRequest) ToUseCaseRequest() (*bookTour.Request, error) {
	tourTime, err := time.Parse(time.RFC3339, r.TourTime)
	if err != nil {
		return nil, err
	}

	return &bookTour.Request{
		PropertyID: r.PropertyID,
		TourTime:   tourTime,
		UserID:     r.UserID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookTour.Response) *TourResponse {
	return &TourResponse{
		ID:          resp.ID,
		PropertyID:  resp.PropertyID,
		ScheduledAt: resp.ScheduledAt.Format(time.RFC3339),
		UserID:      resp.UserID,
		Cancelled:   resp.Cancelled,
		Rescheduled: resp.Rescheduled,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
