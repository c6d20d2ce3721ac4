package reschedule_tour

import (
	"time"

	rescheduleTour "github.com/avdmit/HTS-TourService/internal/usecase/reschedule_tour"
)

// RescheduleTourRequest HTTP request model (тело запроса, если время не в query)
type RescheduleTourRequest struct {
	TourTime string `json:"tourTime"` // RFC3339
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleTour.Response) *TourResponse {
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
