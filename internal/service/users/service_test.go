package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/user"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUserRepo struct {
	byUsername map[string]*domain.User
	nextID     int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.byUsername[user.Username]; ok {
		return nil, userRepo.ErrUserExists
	}
	u := *user
	f.nextID++
	u.ID = f.nextID
	f.byUsername[u.Username] = &u
	return &u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func TestRegister_Success(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	user, err := svc.Register(context.Background(), "student1", "Passw0rd123", "student1@example.com")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, domain.RoleStudent, user.Role)
	// Пароль хранится как bcrypt-хеш
	assert.NotEqual(t, "Passw0rd123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Passw0rd123")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	_, err := svc.Register(context.Background(), "student1", "Passw0rd123", "a@example.com")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "student1", "Passw0rd123", "b@example.com")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegister_PasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{name: "valid", password: "Passw0rd", ok: true},
		{name: "too short", password: "Pw1", ok: false},
		{name: "no digit", password: "Password", ok: false},
		{name: "no upper case", password: "passw0rd", ok: false},
		{name: "no lower case", password: "PASSW0RD", ok: false},
		{name: "non latin letters", password: "Пароль123Aa", ok: false},
		{name: "special characters", password: "Passw0rd!", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeUserRepo(), nopLogger{})
			_, err := svc.Register(context.Background(), "student_"+tt.name, tt.password, "u@example.com")
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	_, err := svc.Register(context.Background(), "   ", "Passw0rd123", "u@example.com")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), "student1", "Passw0rd123", "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Register(context.Background(), "student1", "Passw0rd123", "u@example.com")
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "student1", got.Username)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
