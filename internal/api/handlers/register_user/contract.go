package register_user

import (
	"context"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

type UserService interface {
	Register(ctx context.Context, username, password, email string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
