package get_free_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	venueRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/venue"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetActiveByVenueAndDay(ctx context.Context, venueID int64, dayStart time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
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

func newTestUseCase(venues map[int64]*domain.Venue, slots []*domain.OpenSlot, bookings []*domain.Booking) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeVenueRepo{venues: venues},
		&fakeSlotRepo{slots: slots},
		nopLogger{},
	)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Venue{1: {ID: 1}}, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: "15-10-2025"})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Venue{}, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{VenueID: 42, Date: "2025-10-15"})

	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_ReturnsFreeIntervals(t *testing.T) {
	slots := []*domain.OpenSlot{
		slot(1, "08:00", "10:00"),
		slot(2, "17:00", "19:00"),
	}
	bookings := []*domain.Booking{booking("08:30", "09:00", domain.StatusApproved)}

	uc := newTestUseCase(map[int64]*domain.Venue{1: {ID: 1, Name: "Main hall"}}, slots, bookings)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: "2025-10-15"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.VenueID)
	assert.Equal(t, "2025-10-15", resp.Date)
	require.Len(t, resp.Intervals, 1)
	assert.Equal(t, int64(2), resp.Intervals[0].SlotID)
	assert.Equal(t, 61200, resp.Intervals[0].StartSeconds)
	assert.Equal(t, 68400, resp.Intervals[0].EndSeconds)
}
