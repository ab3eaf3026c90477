package get_free_slots

import (
	"sort"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// filterFreeSlots оставляет открытые окна, не пересекающиеся ни с одним
// активным бронированием суток. Окно либо выживает целиком, либо выпадает -
// окна не режутся и не склеиваются.
//
// Пересечение полуинтервалов в секундах с начала суток:
// конфликт есть, если НЕ (slotEnd <= bookingStart || slotStart >= bookingEnd).
// Граничные случаи (окно заканчивается ровно там, где начинается
// бронирование) пересечением не считаются
func filterFreeSlots(slots []*domain.OpenSlot, bookings []*domain.Booking) []domain.FreeInterval {
	free := make([]domain.FreeInterval, 0, len(slots))

	for _, s := range slots {
		conflict := false
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			bStart := domain.SecondsSinceMidnight(b.StartTime)
			bEnd := domain.SecondsSinceMidnight(b.EndTime)
			if s.OverlapsSeconds(bStart, bEnd) {
				conflict = true
				break
			}
		}
		if !conflict {
			free = append(free, domain.FreeInterval{
				SlotID:       s.ID,
				StartSeconds: s.StartTime.Seconds(),
				EndSeconds:   s.EndTime.Seconds(),
			})
		}
	}

	sort.Slice(free, func(i, j int) bool {
		return free[i].StartSeconds < free[j].StartSeconds
	})
	return free
}
