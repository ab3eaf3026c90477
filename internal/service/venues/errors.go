package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venues.service: venue not found")

	// ErrVenueExists возвращается, когда имя площадки уже занято
	ErrVenueExists = errors.New("venues.service: venue name already exists")

	// ErrSlotNotFound возвращается, когда открытое окно не найдено
	ErrSlotNotFound = errors.New("venues.service: open slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("venues.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("venues.service: internal error")
)
