package cancel_tour

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdmit/HTS-TourService/internal/api/handlers"
	"github.com/avdmit/HTS-TourService/internal/service/tours"
)

const (
	msgInvalidTourID      = "invalid tour id"
	msgTourNotFound       = "Tour unavailable to cancel"
	msgTourNotCancellable = "Tour unavailable to cancel"
)

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

// Handle DELETE /tour/{tourId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tourIDStr := vars["tourId"]

	tourID, err := strconv.ParseInt(tourIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tour/{id} - Invalid tour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	if err := h.service.Cancel(r.Context(), tourID); err != nil {
		switch {
		case errors.Is(err, tours.ErrTourNotFound):
			h.logger.Warn("DELETE /tour/{id} - Tour not found: tour_id=%d", tourID)
			handlers.RespondBadRequest(w, msgTourNotFound)

		case errors.Is(err, tours.ErrTourNotCancellable):
			h.logger.Warn("DELETE /tour/{id} - Tour not cancellable: tour_id=%d", tourID)
			handlers.RespondBadRequest(w, msgTourNotCancellable)

		default:
			h.logger.Error("DELETE /tour/{id} - Failed to cancel tour: tour_id=%d, error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tour/{id} - Tour cancelled successfully: tour_id=%d", tourID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
