package list_venues

import (
	"context"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

type VenueService interface {
	List(ctx context.Context) ([]*domain.Venue, error)
	ListSlots(ctx context.Context, venueID int64) ([]*domain.OpenSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
