package create_booking

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrInvalidTimeFormat возвращается, когда дата или время не парсятся
	ErrInvalidTimeFormat = errors.New("create_booking: invalid date or time format")

	// ErrInvalidTimeOrder возвращается, когда конец не позже начала
	ErrInvalidTimeOrder = errors.New("create_booking: end time must be after start time")

	// ErrHeadcountMismatch возвращается, когда число учётных номеров
	// не совпадает с заявленным количеством людей
	ErrHeadcountMismatch = errors.New("create_booking: participant count does not match headcount")

	// ErrOutsideOpenHours возвращается, когда запрошенный интервал не попадает
	// целиком ни в одно открытое окно площадки
	ErrOutsideOpenHours = errors.New("create_booking: requested range is outside open hours")

	// ErrUserConflict возвращается, когда у пользователя уже есть пересекающееся
	// бронирование (на любой площадке)
	ErrUserConflict = errors.New("create_booking: user already has an overlapping booking")

	// ErrVenueConflict возвращается, когда интервал площадки уже занят
	ErrVenueConflict = errors.New("create_booking: venue is already booked for this range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
