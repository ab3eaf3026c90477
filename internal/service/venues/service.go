package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/slot"
	venueRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-GymBookingService/pkg/types"
)

// Service сервис для административного управления площадками
// и их открытыми окнами
type Service struct {
	venueRepo VenueRepository
	slotRepo  SlotRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(venueRepo VenueRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		slotRepo:  slotRepo,
		logger:    logger,
	}
}

// Create создает новую площадку
func (s *Service) Create(ctx context.Context, name string, capacity int) (*domain.Venue, error) {
	s.logger.Info("CreateVenue: name=%q, capacity=%d", name, capacity)

	name = strings.TrimSpace(name)
	if name == "" || len(name) > domain.MaxVenueNameLength {
		return nil, fmt.Errorf("%w: venue name is required and must fit %d characters",
			ErrInvalidInput, domain.MaxVenueNameLength)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	created, err := s.venueRepo.Create(ctx, &domain.Venue{Name: name, Capacity: capacity})
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueExists) {
			s.logger.Warn("CreateVenue: name %q already exists", name)
			return nil, ErrVenueExists
		}
		s.logger.Error("CreateVenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateVenue: created venue id=%d", created.ID)
	return created, nil
}

// List возвращает все площадки
func (s *Service) List(ctx context.Context) ([]*domain.Venue, error) {
	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListVenues: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return venues, nil
}

// AddSlot добавляет площадке открытое окно (ежедневный шаблон времени суток)
func (s *Service) AddSlot(ctx context.Context, venueID int64, startTime, endTime string) (*domain.OpenSlot, error) {
	s.logger.Info("AddSlot: venue=%d, range=%s-%s", venueID, startTime, endTime)

	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(endTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}
	if !end.IsAfter(start) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}

	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("AddSlot: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("AddSlot: failed to get venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: AddSlot - repository error: %v", ErrInternal, err)
	}

	created, err := s.slotRepo.Create(ctx, &domain.OpenSlot{
		VenueID:   venueID,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		s.logger.Error("AddSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSlot: created slot id=%d for venue=%d", created.ID, venueID)
	return created, nil
}

// ListSlots возвращает открытые окна площадки
func (s *Service) ListSlots(ctx context.Context, venueID int64) ([]*domain.OpenSlot, error) {
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}

	slots, err := s.slotRepo.GetByVenueID(ctx, venueID)
	if err != nil {
		s.logger.Error("ListSlots: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}
	return slots, nil
}

// DeleteSlot удаляет открытое окно
func (s *Service) DeleteSlot(ctx context.Context, slotID int64) error {
	s.logger.Info("DeleteSlot: deleting slot id=%d", slotID)

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("DeleteSlot: slot id=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: repository error for slot=%d: %v", slotID, err)
		return fmt.Errorf("%w: DeleteSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSlot: slot id=%d deleted", slotID)
	return nil
}
