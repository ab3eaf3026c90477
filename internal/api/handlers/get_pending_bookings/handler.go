package get_pending_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetPending(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/pending - Failed to get pending bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/pending - Pending bookings retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
