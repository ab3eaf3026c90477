package list_venues

import (
	"net/http"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /venues - Failed to list venues: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]*VenueResponse, 0, len(venues))
	for _, v := range venues {
		slots, err := h.service.ListSlots(r.Context(), v.ID)
		if err != nil {
			h.logger.Error("GET /venues - Failed to list slots: venue_id=%d, error=%v", v.ID, err)
			handlers.RespondInternalError(w)
			return
		}
		result = append(result, FromDomainVenue(v, slots))
	}

	h.logger.Info("GET /venues - Venues retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
