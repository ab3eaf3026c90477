package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/user"
	venueRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-GymBookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	venueRepo   VenueRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	venueRepo VenueRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		venueRepo:   venueRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Порядок проверок фиксирован: сначала существование сущностей (дешёвые и
// точные ошибки), потом структурная валидация, потом попадание в открытые
// окна и в конце два скана конфликтов. Сканы конфликтов и вставка выполняются
// в одной сериализуемой транзакции с FOR UPDATE - без неё два конкурентных
// запроса на пересекающийся интервал могли бы оба пройти проверку и оба
// вставиться
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, venue=%d, date=%s, range=%s-%s, people=%d",
		req.UserID, req.VenueID, req.Date, req.StartTime, req.EndTime, req.PeopleCount)

	// 1. Пользователь существует
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 2. Площадка существует
	if _, err := uc.venueRepo.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Дата и время парсятся в абсолютные timestamps
	start, end, err := parseRange(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: time parse failed: %v", err)
		return nil, err
	}

	// 4. Конец строго позже начала
	if !end.After(start) {
		uc.logger.Warn("CreateBooking: invalid range order: start=%s end=%s", req.StartTime, req.EndTime)
		return nil, ErrInvalidTimeOrder
	}

	// 5. Число непустых учётных номеров равно заявленному количеству людей
	studentIDs := cleanStudentIDs(req.StudentIDs)
	if len(studentIDs) != req.PeopleCount {
		uc.logger.Warn("CreateBooking: headcount mismatch: people=%d, ids=%d", req.PeopleCount, len(studentIDs))
		return nil, ErrHeadcountMismatch
	}

	if err := validateContact(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6. Интервал целиком внутри хотя бы одного открытого окна.
		// Сравнение по времени суток: окна - ежедневные шаблоны
		slots, err := uc.slotRepo.GetByVenueID(txCtx, req.VenueID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get open slots for venue id=%d: %v", req.VenueID, err)
			return fmt.Errorf("%w: failed to get open slots: %v", ErrInternal, err)
		}
		if !rangeInsideOpenSlot(slots, start, end) {
			uc.logger.Warn("CreateBooking: range %s-%s outside open hours of venue id=%d",
				req.StartTime, req.EndTime, req.VenueID)
			return ErrOutsideOpenHours
		}

		// 7. У пользователя нет пересекающегося бронирования на любой площадке
		userBookings, err := uc.bookingRepo.GetActiveOverlapping(txCtx, ptr.Ptr(req.UserID), nil, start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get user bookings: %v", err)
			return fmt.Errorf("%w: failed to get user bookings: %v", ErrInternal, err)
		}
		if conflict := firstOverlapping(userBookings, start, end); conflict != nil {
			uc.logger.Warn("CreateBooking: user id=%d already booked venue id=%d in this range (booking id=%d)",
				req.UserID, conflict.VenueID, conflict.ID)
			return ErrUserConflict
		}

		// 8. Интервал площадки свободен
		venueBookings, err := uc.bookingRepo.GetActiveOverlapping(txCtx, nil, ptr.Ptr(req.VenueID), start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get venue bookings: %v", err)
			return fmt.Errorf("%w: failed to get venue bookings: %v", ErrInternal, err)
		}
		if conflict := firstOverlapping(venueBookings, start, end); conflict != nil {
			uc.logger.Warn("CreateBooking: venue id=%d already booked in this range (booking id=%d)",
				req.VenueID, conflict.ID)
			return ErrVenueConflict
		}

		// Вставка в той же транзакции
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:       req.UserID,
			VenueID:      req.VenueID,
			StartTime:    start,
			EndTime:      end,
			PeopleCount:  req.PeopleCount,
			ContactPhone: req.ContactPhone,
			StudentIDs:   studentIDs,
			Status:       domain.StatusPending,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", result.ID, result.Status)

	return &Response{
		BookingID: result.ID,
		Status:    string(result.Status),
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		CreatedAt: result.CreatedAt,
	}, nil
}
