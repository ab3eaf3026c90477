package get_free_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	venueRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/venue"
)

// UseCase use case для получения свободных интервалов площадки на дату
type UseCase struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	slotRepo    SlotRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	slotRepo SlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		slotRepo:    slotRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных интервалов
// Операция только читает: окна не режутся, конфликтующие выпадают целиком
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: venue=%d, date=%s", req.VenueID, req.Date)

	// 1. Валидация даты (локальная таймзона сервера)
	dayStart, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(req.Date), time.Local)
	if err != nil {
		uc.logger.Warn("GetFreeSlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// 2. Площадка существует
	if _, err := uc.venueRepo.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetFreeSlots: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Все открытые окна площадки (ежедневные шаблоны, без даты)
	slots, err := uc.slotRepo.GetByVenueID(ctx, req.VenueID)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get open slots for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get open slots: %v", ErrInternal, err)
	}

	// 4. Активные бронирования, начинающиеся в эти сутки
	bookings, err := uc.bookingRepo.GetActiveByVenueAndDay(ctx, req.VenueID, dayStart)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get bookings for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Фильтруем окна по конфликтам
	intervals := filterFreeSlots(slots, bookings)

	uc.logger.Info("GetFreeSlots: venue=%d, date=%s: %d of %d slots free",
		req.VenueID, req.Date, len(intervals), len(slots))

	return &Response{
		VenueID:   req.VenueID,
		Date:      req.Date,
		Intervals: intervals,
	}, nil
}
