package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	getFreeSlots "github.com/m04kA/SMC-GymBookingService/internal/usecase/get_free_slots"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/free-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueIDStr := vars["venueId"]

	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{venueId}/free-slots - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getFreeSlots.Request{
		VenueID: venueID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrInvalidDate):
			h.logger.Warn("GET /venues/{venueId}/free-slots - Invalid date: venue_id=%d, date=%q", venueID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getFreeSlots.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{venueId}/free-slots - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{venueId}/free-slots - Failed to get free slots: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{venueId}/free-slots - Free slots retrieved: venue_id=%d, date=%s, count=%d",
		venueID, date, len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
