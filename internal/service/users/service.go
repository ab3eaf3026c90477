package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/user"
)

// Service сервис управления пользователями
type Service struct {
	repo   UserRepository
	logger Logger
}

func NewService(repo UserRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Register регистрирует нового пользователя с ролью student.
// Пароль проверяется на соответствие политике и хранится в виде bcrypt-хеша.
func (s *Service) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || len(username) > domain.MaxUsernameLength {
		s.logger.Warn("Register: invalid username %q", username)
		return nil, fmt.Errorf("%w: username must be 1-%d characters", ErrInvalidInput, domain.MaxUsernameLength)
	}

	if email == "" || !strings.Contains(email, "@") {
		s.logger.Warn("Register: invalid email %q", email)
		return nil, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	if err := validatePassword(password); err != nil {
		s.logger.Warn("Register: weak password for username=%s: %v", username, err)
		return nil, err
	}

	// Быстрая проверка занятости имени; гонку закрывает unique constraint
	// при вставке
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		s.logger.Warn("Register: username already taken: %s", username)
		return nil, fmt.Errorf("%w: %s", ErrUserExists, username)
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Register: failed to check username %s: %v", username, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	user := &domain.User{
		Username: username,
		Password: string(hash),
		Role:     domain.RoleStudent,
		Email:    email,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserExists) {
			s.logger.Warn("Register: username or email already taken: %s", username)
			return nil, fmt.Errorf("%w: %s", ErrUserExists, username)
		}
		s.logger.Error("Register: failed to create user %s: %v", username, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user created id=%d username=%s", created.ID, created.Username)
	return created, nil
}

// GetByID возвращает пользователя по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrUserNotFound, id)
		}
		s.logger.Error("GetByID: failed to get user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return user, nil
}

// validatePassword проверяет политику паролей: длина от MinPasswordLength
// символов, не более MaxPasswordBytes байт (ограничение bcrypt), только
// латинские буквы и цифры, обязательно верхний и нижний регистр и цифра.
func validatePassword(password string) error {
	if len(password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", ErrWeakPassword, domain.MinPasswordLength)
	}

	if len(password) > domain.MaxPasswordBytes {
		return fmt.Errorf("%w: at most %d bytes allowed", ErrWeakPassword, domain.MaxPasswordBytes)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			hasUpper = true
		case unicode.IsLower(r) && r <= unicode.MaxASCII:
			hasLower = true
		case unicode.IsDigit(r) && r <= unicode.MaxASCII:
			hasDigit = true
		default:
			return fmt.Errorf("%w: only latin letters and digits allowed", ErrWeakPassword)
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("%w: upper, lower case letters and a digit required", ErrWeakPassword)
	}

	return nil
}
