package domain

// User роли пользователей
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents a registered account
type User struct {
	ID       int64
	Username string
	Password string // bcrypt hash
	Role     string
	Email    string
}

// IsAdmin returns true if the user may review and manage bookings
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
