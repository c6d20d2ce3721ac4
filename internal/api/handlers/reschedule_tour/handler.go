package reschedule_tour

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avdmit/HTS-TourService/internal/api/handlers"
	rescheduleTour "github.com/avdmit/HTS-TourService/internal/usecase/reschedule_tour"
)

const (
	msgInvalidTourID         = "invalid tour id"
	msgMissingTourTime       = "tourTime is required"
	msgInvalidTourTime       = "invalid tourTime format, RFC3339 expected"
	msgTourNotFound          = "Tour unavailable to reschedule"
	msgTourNotReschedulable  = "Tour unavailable to reschedule"
	msgInvalidScheduleWindow = "tour time is outside the allowed schedule window"
	msgSlotUnavailable       = "Tour slot is not available"
)

type Handler struct {
	useCase RescheduleTourUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleTourUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /tour/{tourId}/reschedule
// Новое время принимается либо query-параметром tourTime, либо JSON телом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tourIDStr := vars["tourId"]

	tourID, err := strconv.ParseInt(tourIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tour/{id}/reschedule - Invalid tour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	tourTimeStr := r.URL.Query().Get("tourTime")
	if tourTimeStr == "" {
		var req RescheduleTourRequest
		if err := handlers.DecodeJSON(r, &req); err == nil {
			tourTimeStr = req.TourTime
		}
	}
	if tourTimeStr == "" {
		h.logger.Warn("PATCH /tour/{id}/reschedule - Missing tour time: tour_id=%d", tourID)
		handlers.RespondBadRequest(w, msgMissingTourTime)
		return
	}

	tourTime, err := time.Parse(time.RFC3339, tourTimeStr)
	if err != nil {
		h.logger.Warn("PATCH /tour/{id}/reschedule - Invalid tour time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rescheduleTour.Request{
		TourID:      tourID,
		NewTourTime: tourTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, rescheduleTour.ErrTourNotFound):
			h.logger.Warn("PATCH /tour/{id}/reschedule - Tour not found: tour_id=%d", tourID)
			handlers.RespondBadRequest(w, msgTourNotFound)

		case errors.Is(err, rescheduleTour.ErrTourNotReschedulable):
			h.logger.Warn("PATCH /tour/{id}/reschedule - Tour not reschedulable: tour_id=%d", tourID)
			handlers.RespondBadRequest(w, msgTourNotReschedulable)

		case errors.Is(err, rescheduleTour.ErrInvalidScheduleWindow):
			h.logger.Warn("PATCH /tour/{id}/reschedule - Schedule window violation: tour_id=%d", tourID)
			handlers.RespondBadRequest(w, msgInvalidScheduleWindow)

		case errors.Is(err, rescheduleTour.ErrSlotUnavailable):
			h.logger.Warn("PATCH /tour/{id}/reschedule - Slot unavailable: tour_id=%d, tour_time=%s",
				tourID, tourTimeStr)
			handlers.RespondBadRequest(w, msgSlotUnavailable)

		case errors.Is(err, rescheduleTour.ErrInvalidInput):
			h.logger.Warn("PATCH /tour/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTourTime)

		default:
			h.logger.Error("PATCH /tour/{id}/reschedule - Failed to reschedule tour: tour_id=%d, error=%v",
				tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tour/{id}/reschedule - Tour rescheduled successfully: old_id=%d, new_id=%d",
		tourID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
