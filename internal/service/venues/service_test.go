package venues

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/slot"
	venueRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/venue"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeVenueRepo struct {
	venues map[int64]*domain.Venue
	nextID int64
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: make(map[int64]*domain.Venue)}
}

func (f *fakeVenueRepo) Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
	for _, v := range f.venues {
		if v.Name == venue.Name {
			return nil, venueRepo.ErrVenueExists
		}
	}
	v := *venue
	f.nextID++
	v.ID = f.nextID
	f.venues[v.ID] = &v
	return &v, nil
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	return v, nil
}

func (f *fakeVenueRepo) List(ctx context.Context) ([]*domain.Venue, error) {
	result := make([]*domain.Venue, 0, len(f.venues))
	for _, v := range f.venues {
		result = append(result, v)
	}
	return result, nil
}

type fakeSlotRepo struct {
	slots  map[int64]*domain.OpenSlot
	nextID int64
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[int64]*domain.OpenSlot)}
}

func (f *fakeSlotRepo) Create(ctx context.Context, slot *domain.OpenSlot) (*domain.OpenSlot, error) {
	s := *slot
	f.nextID++
	s.ID = f.nextID
	f.slots[s.ID] = &s
	return &s, nil
}

func (f *fakeSlotRepo) GetByVenueID(ctx context.Context, venueID int64) ([]*domain.OpenSlot, error) {
	result := make([]*domain.OpenSlot, 0)
	for _, s := range f.slots {
		if s.VenueID == venueID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeSlotRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.slots[id]; !ok {
		return slotRepo.ErrSlotNotFound
	}
	delete(f.slots, id)
	return nil
}

func newTestService() (*Service, *fakeVenueRepo, *fakeSlotRepo) {
	venues := newFakeVenueRepo()
	slots := newFakeSlotRepo()
	return NewService(venues, slots, nopLogger{}), venues, slots
}

func TestCreate(t *testing.T) {
	svc, _, _ := newTestService()

	venue, err := svc.Create(context.Background(), "Main hall", 30)
	require.NoError(t, err)
	assert.NotZero(t, venue.ID)
	assert.Equal(t, "Main hall", venue.Name)

	// Имя уникально
	_, err = svc.Create(context.Background(), "Main hall", 10)
	assert.ErrorIs(t, err, ErrVenueExists)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), "   ", 30)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), "Main hall", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddSlot(t *testing.T) {
	svc, _, slots := newTestService()

	venue, err := svc.Create(context.Background(), "Main hall", 30)
	require.NoError(t, err)

	slot, err := svc.AddSlot(context.Background(), venue.ID, "08:00", "22:00")
	require.NoError(t, err)
	assert.Equal(t, venue.ID, slot.VenueID)
	assert.Contains(t, slots.slots, slot.ID)
}

func TestAddSlot_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	venue, err := svc.Create(context.Background(), "Main hall", 30)
	require.NoError(t, err)

	// Некорректный формат
	_, err = svc.AddSlot(context.Background(), venue.ID, "восемь утра", "22:00")
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Конец не позже начала
	_, err = svc.AddSlot(context.Background(), venue.ID, "22:00", "08:00")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.AddSlot(context.Background(), venue.ID, "08:00", "08:00")
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Площадка должна существовать
	_, err = svc.AddSlot(context.Background(), 404, "08:00", "22:00")
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestDeleteSlot(t *testing.T) {
	svc, _, _ := newTestService()

	venue, err := svc.Create(context.Background(), "Main hall", 30)
	require.NoError(t, err)
	slot, err := svc.AddSlot(context.Background(), venue.ID, "08:00", "22:00")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSlot(context.Background(), slot.ID))
	assert.ErrorIs(t, svc.DeleteSlot(context.Background(), slot.ID), ErrSlotNotFound)
}
