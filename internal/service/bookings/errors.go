package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrCannotCancel возвращается при попытке отменить уже отменённое бронирование
	ErrCannotCancel = errors.New("bookings.service: booking is already cancelled")

	// ErrCannotReview возвращается, когда approve/reject применяется
	// к бронированию не в статусе pending
	ErrCannotReview = errors.New("bookings.service: booking is not pending review")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
