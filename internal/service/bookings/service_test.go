package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	bookings map[int64]*domain.Booking
	pending  []*domain.PendingBooking
	byUser   []*domain.UserBooking
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	m := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeRepo{bookings: m}
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.UserBooking, error) {
	return f.byUser, nil
}

func (f *fakeRepo) GetPending(ctx context.Context) ([]*domain.PendingBooking, error) {
	return f.pending, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	start := time.Date(2025, 10, 15, 17, 0, 0, 0, time.Local)
	return &domain.Booking{
		ID:           id,
		UserID:       1,
		VenueID:      10,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		PeopleCount:  2,
		ContactPhone: "+79000000000",
		StudentIDs:   []string{"s-100", "s-200"},
		Status:       status,
		CreatedAt:    start.Add(-24 * time.Hour),
	}
}

func TestApprove(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		wantErr error
	}{
		{name: "pending is approved", status: domain.StatusPending},
		{name: "approved cannot be approved again", status: domain.StatusApproved, wantErr: ErrCannotReview},
		{name: "rejected cannot be approved", status: domain.StatusRejected, wantErr: ErrCannotReview},
		{name: "cancelled cannot be approved", status: domain.StatusCancelled, wantErr: ErrCannotReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(testBooking(1, tt.status))
			svc := NewService(repo, nopLogger{})

			resp, err := svc.Approve(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// Статус не изменился
				assert.Equal(t, tt.status, repo.bookings[1].Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(domain.StatusApproved), resp.NewStatus)
			assert.Equal(t, domain.StatusApproved, repo.bookings[1].Status)
		})
	}
}

func TestReject_OnlyFromPending(t *testing.T) {
	repo := newFakeRepo(testBooking(1, domain.StatusPending), testBooking(2, domain.StatusApproved))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Reject(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.NewStatus)

	_, err = svc.Reject(context.Background(), 2)
	assert.ErrorIs(t, err, ErrCannotReview)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		wantErr error
	}{
		{name: "pending can be cancelled", status: domain.StatusPending},
		{name: "approved can be cancelled", status: domain.StatusApproved},
		{name: "rejected can be cancelled", status: domain.StatusRejected},
		{name: "cancelled cannot be cancelled again", status: domain.StatusCancelled, wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(testBooking(1, tt.status))
			svc := NewService(repo, nopLogger{})

			resp, err := svc.Cancel(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(domain.StatusCancelled), resp.NewStatus)
			assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
		})
	}
}

func TestDelete_AnyStatus(t *testing.T) {
	// Удаление безусловно, в отличие от отмены
	repo := newFakeRepo(testBooking(1, domain.StatusCancelled))
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.NotContains(t, repo.bookings, int64(1))
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	err := svc.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo(testBooking(1, domain.StatusApproved))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
	assert.Equal(t, []string{"s-100", "s-200"}, resp.StudentIDs)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetPending(t *testing.T) {
	repo := newFakeRepo()
	repo.pending = []*domain.PendingBooking{
		{Booking: *testBooking(1, domain.StatusPending), Username: "student1", VenueName: "Main hall"},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetPending(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "student1", result[0].Username)
	assert.Equal(t, "Main hall", result[0].VenueName)
}

func TestGetUserBookings(t *testing.T) {
	repo := newFakeRepo()
	repo.byUser = []*domain.UserBooking{
		{Booking: *testBooking(1, domain.StatusApproved), VenueName: "Main hall"},
		{Booking: *testBooking(2, domain.StatusCancelled), VenueName: "Pool"},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetUserBookings(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Main hall", result[0].VenueName)
	assert.Equal(t, "Pool", result[1].VenueName)
}
