package get_free_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/pkg/types"
)

func mustTime(s string) types.TimeString {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func slot(id int64, start, end string) *domain.OpenSlot {
	return &domain.OpenSlot{
		ID:        id,
		VenueID:   1,
		StartTime: mustTime(start),
		EndTime:   mustTime(end),
	}
}

func booking(start, end string, status domain.BookingStatus) *domain.Booking {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local)
	return &domain.Booking{
		ID:        100,
		UserID:    1,
		VenueID:   1,
		StartTime: atClock(day, start),
		EndTime:   atClock(day, end),
		Status:    status,
	}
}

func atClock(day time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		panic(err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

func TestFilterFreeSlots_NoBookings(t *testing.T) {
	slots := []*domain.OpenSlot{
		slot(1, "08:00", "10:00"),
		slot(2, "17:00", "19:00"),
	}

	free := filterFreeSlots(slots, nil)

	require.Len(t, free, 2)
	assert.Equal(t, int64(1), free[0].SlotID)
	assert.Equal(t, 8*3600, free[0].StartSeconds)
	assert.Equal(t, int64(2), free[1].SlotID)
	assert.Equal(t, 61200, free[1].StartSeconds)
	assert.Equal(t, 68400, free[1].EndSeconds)
}

func TestFilterFreeSlots_OverlappingBookingDropsWholeSlot(t *testing.T) {
	// Окно 17:00-19:00, бронирование 18:00-18:30: окно выпадает целиком,
	// остаток не возвращается
	slots := []*domain.OpenSlot{slot(1, "17:00", "19:00")}
	bookings := []*domain.Booking{booking("18:00", "18:30", domain.StatusApproved)}

	free := filterFreeSlots(slots, bookings)

	assert.Empty(t, free)
}

func TestFilterFreeSlots_TouchingBoundariesDoNotConflict(t *testing.T) {
	// Бронирование заканчивается ровно в начале окна и начинается ровно
	// в конце другого: оба окна остаются свободными
	slots := []*domain.OpenSlot{
		slot(1, "10:00", "12:00"),
		slot(2, "08:00", "10:00"),
	}
	bookings := []*domain.Booking{
		booking("12:00", "13:00", domain.StatusApproved),
		booking("07:00", "08:00", domain.StatusPending),
	}

	free := filterFreeSlots(slots, bookings)

	require.Len(t, free, 2)
	// Отсортированы по возрастанию начала
	assert.Equal(t, int64(2), free[0].SlotID)
	assert.Equal(t, int64(1), free[1].SlotID)
}

func TestFilterFreeSlots_CancelledBookingIgnored(t *testing.T) {
	slots := []*domain.OpenSlot{slot(1, "17:00", "19:00")}
	bookings := []*domain.Booking{booking("17:00", "18:00", domain.StatusCancelled)}

	free := filterFreeSlots(slots, bookings)

	require.Len(t, free, 1)
	assert.Equal(t, int64(1), free[0].SlotID)
}

func TestFilterFreeSlots_RejectedBookingStillBlocks(t *testing.T) {
	// Отклонённое бронирование продолжает занимать интервал
	slots := []*domain.OpenSlot{slot(1, "17:00", "19:00")}
	bookings := []*domain.Booking{booking("17:30", "18:00", domain.StatusRejected)}

	free := filterFreeSlots(slots, bookings)

	assert.Empty(t, free)
}

func TestFilterFreeSlots_PendingBookingBlocks(t *testing.T) {
	slots := []*domain.OpenSlot{slot(1, "08:00", "09:00")}
	bookings := []*domain.Booking{booking("08:00", "09:00", domain.StatusPending)}

	free := filterFreeSlots(slots, bookings)

	assert.Empty(t, free)
}
