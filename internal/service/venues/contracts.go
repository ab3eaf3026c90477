package venues

import (
	"context"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}

// SlotRepository интерфейс репозитория открытых окон
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.OpenSlot) (*domain.OpenSlot, error)
	GetByVenueID(ctx context.Context, venueID int64) ([]*domain.OpenSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
