package add_slot

import (
	"context"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

type VenueService interface {
	AddSlot(ctx context.Context, venueID int64, startTime, endTime string) (*domain.OpenSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
