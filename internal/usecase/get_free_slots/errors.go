package get_free_slots

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("get_free_slots: venue not found")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("get_free_slots: invalid date format, expected YYYY-MM-DD")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_slots: internal error")
)
