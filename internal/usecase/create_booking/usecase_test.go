package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/user"
	venueRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/venue"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	b := *booking
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	f.created = &b
	return &b, nil
}

func (f *fakeBookingRepo) GetActiveOverlapping(ctx context.Context, userID, venueID *int64, from, to time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.existing {
		if b.Status == domain.StatusCancelled {
			continue
		}
		if userID != nil && b.UserID != *userID {
			continue
		}
		if venueID != nil && b.VenueID != *venueID {
			continue
		}
		if b.Overlaps(from, to) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeVenueRepo struct {
	venues map[int64]*domain.Venue
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	return v, nil
}

type fakeSlotRepo struct {
	slots []*domain.OpenSlot
}

func (f *fakeSlotRepo) GetByVenueID(ctx context.Context, venueID int64) ([]*domain.OpenSlot, error) {
	return f.slots, nil
}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
}

func newFixture(existing []*domain.Booking) *fixture {
	bookings := &fakeBookingRepo{existing: existing}
	uc := NewUseCase(
		bookings,
		&fakeUserRepo{users: map[int64]*domain.User{1: {ID: 1, Username: "student1"}}},
		&fakeVenueRepo{venues: map[int64]*domain.Venue{10: {ID: 10, Name: "Main hall", Capacity: 30}}},
		&fakeSlotRepo{slots: []*domain.OpenSlot{
			{ID: 1, VenueID: 10, StartTime: mustTime("08:00"), EndTime: mustTime("22:00")},
		}},
		fakeTxManager{},
		nopLogger{},
	)
	return &fixture{uc: uc, bookings: bookings}
}

func validRequest() *Request {
	return &Request{
		UserID:       1,
		VenueID:      10,
		Date:         "2025-10-15",
		StartTime:    "17:00",
		EndTime:      "18:00",
		PeopleCount:  2,
		ContactPhone: "+79000000000",
		StudentIDs:   []string{"s-100", "s-200"},
	}
}

func existingBooking(userID, venueID int64, startH, endH int, status domain.BookingStatus) *domain.Booking {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local)
	return &domain.Booking{
		ID:        99,
		UserID:    userID,
		VenueID:   venueID,
		StartTime: day.Add(time.Duration(startH) * time.Hour),
		EndTime:   day.Add(time.Duration(endH) * time.Hour),
		Status:    status,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.NotZero(t, resp.BookingID)

	require.NotNil(t, f.bookings.created)
	assert.Equal(t, domain.StatusPending, f.bookings.created.Status)
	assert.Equal(t, []string{"s-100", "s-200"}, f.bookings.created.StudentIDs)
	assert.Equal(t, time.Date(2025, 10, 15, 17, 0, 0, 0, time.Local), f.bookings.created.StartTime)
}

func TestExecute_UserNotFound(t *testing.T) {
	f := newFixture(nil)
	req := validRequest()
	req.UserID = 404
	// Площадки тоже нет: проверка пользователя должна сработать первой
	req.VenueID = 404

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_VenueNotFound(t *testing.T) {
	f := newFixture(nil)
	req := validRequest()
	req.VenueID = 404

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_InvalidTimeFormat(t *testing.T) {
	f := newFixture(nil)
	req := validRequest()
	req.StartTime = "пять вечера"

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestExecute_EndNotAfterStart(t *testing.T) {
	f := newFixture(nil)

	req := validRequest()
	req.EndTime = "17:00"
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeOrder)

	req = validRequest()
	req.EndTime = "16:00"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeOrder)
}

func TestExecute_HeadcountMismatch(t *testing.T) {
	f := newFixture(nil)

	// Меньше номеров, чем людей
	req := validRequest()
	req.StudentIDs = []string{"s-100"}
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrHeadcountMismatch)

	// Пустые и пробельные номера не считаются
	req = validRequest()
	req.StudentIDs = []string{"s-100", "   ", "s-200"}
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_OutsideOpenHours(t *testing.T) {
	f := newFixture(nil)
	req := validRequest()
	req.StartTime = "21:30"
	req.EndTime = "22:30"

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideOpenHours)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_UserConflictOnAnotherVenue(t *testing.T) {
	// Конфликт пользователя ищется по всем площадкам
	f := newFixture([]*domain.Booking{
		existingBooking(1, 77, 17, 19, domain.StatusApproved),
	})

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUserConflict)
}

func TestExecute_VenueConflict(t *testing.T) {
	f := newFixture([]*domain.Booking{
		existingBooking(2, 10, 17, 18, domain.StatusPending),
	})

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrVenueConflict)
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	f := newFixture([]*domain.Booking{
		existingBooking(2, 10, 17, 18, domain.StatusCancelled),
	})

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_TouchingBookingDoesNotConflict(t *testing.T) {
	// Существующее бронирование заканчивается ровно в 17:00
	f := newFixture([]*domain.Booking{
		existingBooking(2, 10, 16, 17, domain.StatusApproved),
	})

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}
