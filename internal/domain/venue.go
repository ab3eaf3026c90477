package domain

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/pkg/types"
)

// Venue represents a bookable venue
type Venue struct {
	ID       int64
	Name     string
	Capacity int
}

// OpenSlot is a recurring daily time-of-day window during which a venue
// accepts bookings. Slots carry no calendar date: the same window applies
// to every day.
type OpenSlot struct {
	ID        int64
	VenueID   int64
	StartTime types.TimeString
	EndTime   types.TimeString
}

// ContainsSeconds reports whether the [startSec, endSec] time-of-day range
// is fully inside the slot window
func (s *OpenSlot) ContainsSeconds(startSec, endSec int) bool {
	return s.StartTime.Seconds() <= startSec && s.EndTime.Seconds() >= endSec
}

// OverlapsSeconds reports whether the slot window intersects the half-open
// [startSec, endSec) time-of-day range; touching boundaries do not overlap
func (s *OpenSlot) OverlapsSeconds(startSec, endSec int) bool {
	return !(s.EndTime.Seconds() <= startSec || s.StartTime.Seconds() >= endSec)
}

// FreeInterval is an open slot that survived conflict filtering for a
// particular date, expressed in seconds since midnight for the frontend
type FreeInterval struct {
	SlotID       int64
	StartSeconds int
	EndSeconds   int
}

// SecondsSinceMidnight converts a timestamp to seconds since the start of
// its day. The single canonical time-of-day representation: open-slot
// matching always goes through this conversion, never through mixed
// datetime/time comparisons.
func SecondsSinceMidnight(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
