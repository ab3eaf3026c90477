package models

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// BookingResponse модель бронирования для выдачи наружу
type BookingResponse struct {
	ID           int64
	UserID       int64
	VenueID      int64
	StartTime    time.Time
	EndTime      time.Time
	PeopleCount  int
	ContactPhone string
	StudentIDs   []string
	Status       string
	CreatedAt    time.Time
}

// UserBookingResponse бронирование в истории пользователя
type UserBookingResponse struct {
	BookingResponse
	VenueName string
}

// PendingBookingResponse бронирование в очереди на модерацию
type PendingBookingResponse struct {
	BookingResponse
	Username  string
	VenueName string
}

// StatusResponse результат смены статуса
type StatusResponse struct {
	BookingID int64
	NewStatus string
}

// FromDomainBooking конвертирует domain.Booking в response-модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		VenueID:      b.VenueID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		PeopleCount:  b.PeopleCount,
		ContactPhone: b.ContactPhone,
		StudentIDs:   b.StudentIDs,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}

// FromDomainUserBookings конвертирует историю пользователя
func FromDomainUserBookings(bookings []*domain.UserBooking) []*UserBookingResponse {
	result := make([]*UserBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, &UserBookingResponse{
			BookingResponse: *FromDomainBooking(&b.Booking),
			VenueName:       b.VenueName,
		})
	}
	return result
}

// FromDomainPendingBookings конвертирует очередь модерации
func FromDomainPendingBookings(bookings []*domain.PendingBooking) []*PendingBookingResponse {
	result := make([]*PendingBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, &PendingBookingResponse{
			BookingResponse: *FromDomainBooking(&b.Booking),
			Username:        b.Username,
			VenueName:       b.VenueName,
		})
	}
	return result
}
