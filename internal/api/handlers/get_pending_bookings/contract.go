package get_pending_bookings

import (
	"context"

	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetPending(ctx context.Context) ([]*models.PendingBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
