package get_stats

import (
	"net/http"

	"github.com/avdmit/HTS-TourService/internal/api/handlers"
)

// StatsResponse HTTP модель агрегированных счетчиков
type StatsResponse struct {
	Booked      int `json:"booked"`
	Cancelled   int `json:"cancelled"`
	Rescheduled int `json:"rescheduled"`
}

type Handler struct {
	service TourService
	logger  Logger
}

func NewHandler(service TourService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /tour/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.logger.Error("GET /tour/stats - Failed to get stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StatsResponse{
		Booked:      stats.Booked,
		Cancelled:   stats.Cancelled,
		Rescheduled: stats.Rescheduled,
	})
}
