package register_user

import (
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// RegisterUserRequest HTTP request model
type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// UserResponse HTTP response model. Пароль наружу не отдается.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// FromDomainUser конвертирует domain.User в HTTP response
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Email:    u.Email,
	}
}
