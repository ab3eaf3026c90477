package review_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDecision    = "некорректное решение, ожидается approved или rejected"
	msgNotFound           = "бронирование не найдено"
	msgNotPending         = "бронирование не находится на рассмотрении"
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

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ReviewBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var result *models.StatusResponse
	switch req.Decision {
	case DecisionApproved:
		result, err = h.service.Approve(r.Context(), bookingID)
	case DecisionRejected:
		result, err = h.service.Reject(r.Context(), bookingID)
	default:
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid decision %q: booking_id=%d", req.Decision, bookingID)
		handlers.RespondBadRequest(w, msgInvalidDecision)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotReview):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking is not pending: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNotPending)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to review booking: booking_id=%d, decision=%s, error=%v",
				bookingID, req.Decision, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Booking reviewed: booking_id=%d, status=%s",
		bookingID, result.NewStatus)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
