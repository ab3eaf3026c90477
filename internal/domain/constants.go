package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxContactPhoneLength = 20
	MaxVenueNameLength    = 100
	MaxUsernameLength     = 50
	MinPasswordLength     = 8
	MaxPasswordBytes      = 72 // bcrypt input limit
)

// ActiveStatuses статусы, блокирующие временной интервал
// Используются при проверке конфликтов бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
}
