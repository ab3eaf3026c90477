package create_venue

import (
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// CreateVenueRequest HTTP request model
type CreateVenueRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// VenueResponse HTTP response model
type VenueResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// FromDomainVenue конвертирует domain.Venue в HTTP response
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	return &VenueResponse{
		ID:       v.ID,
		Name:     v.Name,
		Capacity: v.Capacity,
	}
}
