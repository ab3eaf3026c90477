package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserNotFound       = "пользователь не найден"
	msgVenueNotFound      = "площадка не найдена"
	msgInvalidTimeFormat  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidTimeOrder   = "время окончания должно быть позже времени начала"
	msgHeadcountMismatch  = "количество учётных номеров не совпадает с заявленным числом людей"
	msgOutsideOpenHours   = "запрошенный интервал не попадает в часы работы площадки"
	msgUserConflict       = "у пользователя уже есть бронирование на это время"
	msgVenueConflict      = "площадка уже забронирована на это время"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID in context")
		handlers.RespondForbidden(w, msgInvalidInput)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrInvalidTimeFormat):
			h.logger.Warn("POST /bookings - Invalid time format: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)

		case errors.Is(err, createBooking.ErrInvalidTimeOrder):
			h.logger.Warn("POST /bookings - Invalid time order: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgInvalidTimeOrder)

		case errors.Is(err, createBooking.ErrHeadcountMismatch):
			h.logger.Warn("POST /bookings - Headcount mismatch: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgHeadcountMismatch)

		case errors.Is(err, createBooking.ErrOutsideOpenHours):
			h.logger.Warn("POST /bookings - Outside open hours: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgOutsideOpenHours)

		case errors.Is(err, createBooking.ErrUserConflict):
			h.logger.Warn("POST /bookings - User conflict: user_id=%d", userID)
			handlers.RespondConflict(w, msgUserConflict)

		case errors.Is(err, createBooking.ErrVenueConflict):
			h.logger.Warn("POST /bookings - Venue conflict: venue_id=%d", req.VenueID)
			handlers.RespondConflict(w, msgVenueConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, venue_id=%d, error=%v",
				userID, req.VenueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, venue_id=%d, error=%v",
				userID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, venue_id=%d",
		result.BookingID, userID, req.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
