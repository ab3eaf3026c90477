package get_free_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByVenueAndDay получает неотменённые бронирования площадки,
	// начинающиеся в пределах указанных суток
	GetActiveByVenueAndDay(ctx context.Context, venueID int64, dayStart time.Time) ([]*domain.Booking, error)
}

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// SlotRepository интерфейс репозитория открытых окон
type SlotRepository interface {
	GetByVenueID(ctx context.Context, venueID int64) ([]*domain.OpenSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
