package create_venue

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/service/venues"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgVenueExists        = "площадка с таким названием уже существует"
	msgInvalidInput       = "некорректные входные данные"
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

// Handle POST /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	venue, err := h.service.Create(r.Context(), req.Name, req.Capacity)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueExists):
			h.logger.Warn("POST /venues - Venue name taken: name=%q", req.Name)
			handlers.RespondConflict(w, msgVenueExists)

		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("POST /venues - Invalid input: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /venues - Failed to create venue: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues - Venue created: venue_id=%d, name=%q", venue.ID, venue.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainVenue(venue))
}
