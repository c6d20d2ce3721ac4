package book_tour

import (
	"errors"
	"net/http"

	"github.com/avdmit/HTS-TourService/internal/api/handlers"
	bookTour "github.com/avdmit/HTS-TourService/internal/usecase/book_tour"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidTourTime       = "invalid tourTime format, RFC3339 expected"
	msgInvalidScheduleWindow = "tour time is outside the allowed schedule window"
	msgSelfServeUnavailable  = "Home is not available to self serve tours"
	msgSlotUnavailable       = "Tour slot is not available"
)

type Handler struct {
	useCase BookTourUseCase
	logger  Logger
}

func NewHandler(useCase BookTourUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /tour
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookTourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tour - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /tour - Failed to parse tour time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookTour.ErrInvalidScheduleWindow):
			h.logger.Warn("POST /tour - Schedule window violation: property_id=%s, user_id=%s",
				req.PropertyID, req.UserID)
			handlers.RespondBadRequest(w, msgInvalidScheduleWindow)

		case errors.Is(err, bookTour.ErrSelfServeUnavailable):
			h.logger.Warn("POST /tour - Self serve unavailable: property_id=%s", req.PropertyID)
			handlers.RespondBadRequest(w, msgSelfServeUnavailable)

		case errors.Is(err, bookTour.ErrSlotUnavailable):
			h.logger.Warn("POST /tour - Slot unavailable: property_id=%s, tour_time=%s",
				req.PropertyID, req.TourTime)
			handlers.RespondBadRequest(w, msgSlotUnavailable)

		case errors.Is(err, bookTour.ErrInvalidInput):
			h.logger.Warn("POST /tour - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /tour - Failed to book tour: property_id=%s, user_id=%s, error=%v",
				req.PropertyID, req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tour - Tour booked successfully: tour_id=%d, property_id=%s, user_id=%s",
		result.ID, req.PropertyID, req.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
