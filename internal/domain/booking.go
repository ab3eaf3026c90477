package domain

import "time"

// BookingStatus represents the review status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a concrete reservation of a venue by a user
// for an absolute start/end timestamp pair
type Booking struct {
	ID           int64
	UserID       int64
	VenueID      int64
	StartTime    time.Time
	EndTime      time.Time
	PeopleCount  int
	ContactPhone string
	StudentIDs   []string // participant identifiers, stored comma-joined
	Status       BookingStatus
	CreatedAt    time.Time
}

// IsActive returns true if the booking still blocks its time range.
// Only cancelled bookings release the window; rejected ones keep blocking
// until an administrator cancels or deletes them.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status != StatusCancelled
}

// CanBeReviewed returns true if the booking can be approved or rejected
func (b *Booking) CanBeReviewed() bool {
	return b.Status == StatusPending
}

// Overlaps reports whether the booking's absolute time range intersects
// [start, end); touching boundaries do not count as overlap
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// UserBooking бронирование с денормализованным названием площадки
// для истории пользователя
type UserBooking struct {
	Booking
	VenueName string
}

// PendingBooking бронирование в очереди на модерацию с данными
// пользователя и площадки
type PendingBooking struct {
	Booking
	Username  string
	VenueName string
}

// ValidStatus проверяет, что строка является допустимым статусом
func ValidStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}
