package create_booking

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

func openSlot(start, end string) *domain.OpenSlot {
	return &domain.OpenSlot{VenueID: 1, StartTime: mustTime(start), EndTime: mustTime(end)}
}

func TestParseRange(t *testing.T) {
	start, end, err := parseRange("2025-10-15", "17:00", "18:30")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 17, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 10, 15, 18, 30, 0, 0, time.Local), end)
}

func TestParseRange_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		start string
		end   string
	}{
		{name: "bad date", date: "15.10.2025", start: "17:00", end: "18:00"},
		{name: "bad start time", date: "2025-10-15", start: "17", end: "18:00"},
		{name: "bad end time", date: "2025-10-15", start: "17:00", end: "половина седьмого"},
		{name: "empty date", date: "", start: "17:00", end: "18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseRange(tt.date, tt.start, tt.end)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestCleanStudentIDs(t *testing.T) {
	got := cleanStudentIDs([]string{" s-100 ", "", "s-200", "   ", "s-300"})
	assert.Equal(t, []string{"s-100", "s-200", "s-300"}, got)
}

func TestValidateContact(t *testing.T) {
	valid := &Request{PeopleCount: 2, ContactPhone: "+7 900 000-00-00"}
	assert.NoError(t, validateContact(valid))

	noPhone := &Request{PeopleCount: 2, ContactPhone: "  "}
	assert.ErrorIs(t, validateContact(noPhone), ErrInvalidInput)

	longPhone := &Request{PeopleCount: 2, ContactPhone: "+7 900 000 00 00 00 00 00"}
	assert.ErrorIs(t, validateContact(longPhone), ErrInvalidInput)

	zeroPeople := &Request{PeopleCount: 0, ContactPhone: "+79000000000"}
	assert.ErrorIs(t, validateContact(zeroPeople), ErrInvalidInput)
}

func TestRangeInsideOpenSlot(t *testing.T) {
	slots := []*domain.OpenSlot{
		openSlot("08:00", "12:00"),
		openSlot("17:00", "22:00"),
	}

	day := func(clock string) time.Time {
		parsed, err := time.Parse("15:04", clock)
		require.NoError(t, err)
		return time.Date(2025, 10, 15, parsed.Hour(), parsed.Minute(), 0, 0, time.Local)
	}

	// Целиком внутри окна
	assert.True(t, rangeInsideOpenSlot(slots, day("17:00"), day("19:00")))
	// Ровно границы окна
	assert.True(t, rangeInsideOpenSlot(slots, day("08:00"), day("12:00")))
	// Вылезает за конец окна
	assert.False(t, rangeInsideOpenSlot(slots, day("11:00"), day("13:00")))
	// Между окнами
	assert.False(t, rangeInsideOpenSlot(slots, day("13:00"), day("14:00")))
	// Пустой список окон
	assert.False(t, rangeInsideOpenSlot(nil, day("17:00"), day("18:00")))
}

func TestFirstOverlapping(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local)
	mk := func(id int64, startH, endH int, status domain.BookingStatus) *domain.Booking {
		return &domain.Booking{
			ID:        id,
			StartTime: day.Add(time.Duration(startH) * time.Hour),
			EndTime:   day.Add(time.Duration(endH) * time.Hour),
			Status:    status,
		}
	}

	start := day.Add(17 * time.Hour)
	end := day.Add(19 * time.Hour)

	// Отменённое не конфликтует, отклонённое конфликтует
	bookings := []*domain.Booking{
		mk(1, 17, 18, domain.StatusCancelled),
		mk(2, 18, 20, domain.StatusRejected),
	}
	conflict := firstOverlapping(bookings, start, end)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(2), conflict.ID)

	// Соприкосновение границами - не конфликт
	touching := []*domain.Booking{
		mk(3, 15, 17, domain.StatusApproved),
		mk(4, 19, 21, domain.StatusApproved),
	}
	assert.Nil(t, firstOverlapping(touching, start, end))
}
