package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// (новые вперед, с названием площадки)
func (s *Service) GetUserBookings(ctx context.Context, userID int64) ([]*models.UserBookingResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainUserBookings(bookings), nil
}

// GetPending получает очередь бронирований на модерацию
func (s *Service) GetPending(ctx context.Context) ([]*models.PendingBookingResponse, error) {
	s.logger.Info("GetPending: fetching pending bookings")

	bookings, err := s.bookingRepo.GetPending(ctx)
	if err != nil {
		s.logger.Error("GetPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPending: fetched %d pending bookings", len(bookings))
	return models.FromDomainPendingBookings(bookings), nil
}

// Approve одобряет бронирование; допустимо только из статуса pending
func (s *Service) Approve(ctx context.Context, id int64) (*models.StatusResponse, error) {
	return s.review(ctx, id, domain.StatusApproved)
}

// Reject отклоняет бронирование; допустимо только из статуса pending
// Отклонённое бронирование продолжает блокировать интервал, пока
// администратор не отменит или не удалит его
func (s *Service) Reject(ctx context.Context, id int64) (*models.StatusResponse, error) {
	return s.review(ctx, id, domain.StatusRejected)
}

func (s *Service) review(ctx context.Context, id int64, target domain.BookingStatus) (*models.StatusResponse, error) {
	s.logger.Info("Review: booking id=%d -> %s", id, target)

	booking, err := s.getForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeReviewed() {
		s.logger.Warn("Review: booking id=%d cannot be reviewed, status=%s", id, booking.Status)
		return nil, ErrCannotReview
	}

	if err := s.updateStatus(ctx, id, target); err != nil {
		return nil, err
	}

	s.logger.Info("Review: booking id=%d is now %s", id, target)
	return &models.StatusResponse{BookingID: id, NewStatus: string(target)}, nil
}

// Cancel отменяет бронирование; допустимо из любого статуса, кроме
// уже отменённого
func (s *Service) Cancel(ctx context.Context, id int64) (*models.StatusResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.getForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", id)
		return nil, ErrCannotCancel
	}

	if err := s.updateStatus(ctx, id, domain.StatusCancelled); err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return &models.StatusResponse{BookingID: id, NewStatus: string(domain.StatusCancelled)}, nil
}

// Delete физически удаляет бронирование независимо от статуса
// Административная операция, не часть обычного жизненного цикла
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}

func (s *Service) getForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

func (s *Service) updateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("failed to update status of booking id=%d: %v", id, err)
		return fmt.Errorf("%w: update status: %v", ErrInternal, err)
	}
	return nil
}
