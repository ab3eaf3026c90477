package create_venue

import (
	"context"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

type VenueService interface {
	Create(ctx context.Context, name string, capacity int) (*domain.Venue, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
