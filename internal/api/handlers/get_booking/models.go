package get_booking

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64    `json:"id"`
	UserID       int64    `json:"userId"`
	VenueID      int64    `json:"venueId"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	PeopleCount  int      `json:"peopleCount"`
	ContactPhone string   `json:"contactPhone"`
	StudentIDs   []string `json:"studentIds"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"createdAt"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(b *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		VenueID:      b.VenueID,
		StartTime:    b.StartTime.Format(time.RFC3339),
		EndTime:      b.EndTime.Format(time.RFC3339),
		PeopleCount:  b.PeopleCount,
		ContactPhone: b.ContactPhone,
		StudentIDs:   b.StudentIDs,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}
