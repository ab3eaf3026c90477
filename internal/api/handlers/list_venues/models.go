package list_venues

import (
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// OpenSlotResponse открытое окно площадки
type OpenSlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"` // "08:00"
	EndTime   string `json:"endTime"`   // "22:00"
}

// VenueResponse площадка с её открытыми окнами
type VenueResponse struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Capacity  int                `json:"capacity"`
	OpenSlots []OpenSlotResponse `json:"openSlots"`
}

// FromDomainVenue конвертирует площадку и её окна в HTTP response
func FromDomainVenue(v *domain.Venue, slots []*domain.OpenSlot) *VenueResponse {
	openSlots := make([]OpenSlotResponse, 0, len(slots))
	for _, s := range slots {
		openSlots = append(openSlots, OpenSlotResponse{
			ID:        s.ID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return &VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Capacity:  v.Capacity,
		OpenSlots: openSlots,
	}
}
