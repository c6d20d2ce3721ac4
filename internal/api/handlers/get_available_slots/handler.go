package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdmit/HTS-TourService/internal/api/handlers"
	getAvailableSlots "github.com/avdmit/HTS-TourService/internal/usecase/get_available_slots"
)

const (
	msgSelfServeUnavailable = "Home is not available to self serve tours"
	msgInvalidPropertyID    = "property id is required"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /tour/slots/{propertyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID := vars["propertyId"]

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		PropertyID: propertyID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSelfServeUnavailable):
			h.logger.Warn("GET /tour/slots - Self serve unavailable: property_id=%s", propertyID)
			handlers.RespondBadRequest(w, msgSelfServeUnavailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /tour/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPropertyID)

		default:
			h.logger.Error("GET /tour/slots - Failed to get slots: property_id=%s, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tour/slots - %d slots returned: property_id=%s", len(result.Slots), propertyID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
