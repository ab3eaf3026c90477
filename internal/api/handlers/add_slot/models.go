package add_slot

import (
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// AddSlotRequest HTTP request model
type AddSlotRequest struct {
	StartTime string `json:"startTime"` // "08:00"
	EndTime   string `json:"endTime"`   // "22:00"
}

// OpenSlotResponse HTTP response model
type OpenSlotResponse struct {
	ID        int64  `json:"id"`
	VenueID   int64  `json:"venueId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromDomainSlot конвертирует domain.OpenSlot в HTTP response
func FromDomainSlot(s *domain.OpenSlot) *OpenSlotResponse {
	return &OpenSlotResponse{
		ID:        s.ID,
		VenueID:   s.VenueID,
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
	}
}
