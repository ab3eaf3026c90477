package get_pending_bookings

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

// PendingBookingResponse бронирование в очереди на модерацию
type PendingBookingResponse struct {
	ID           int64    `json:"id"`
	UserID       int64    `json:"userId"`
	Username     string   `json:"username"`
	VenueID      int64    `json:"venueId"`
	VenueName    string   `json:"venueName"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	PeopleCount  int      `json:"peopleCount"`
	ContactPhone string   `json:"contactPhone"`
	StudentIDs   []string `json:"studentIds"`
	CreatedAt    string   `json:"createdAt"`
}

// FromServiceResponse конвертирует модели сервиса в HTTP response
func FromServiceResponse(bookings []*models.PendingBookingResponse) []*PendingBookingResponse {
	result := make([]*PendingBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, &PendingBookingResponse{
			ID:           b.ID,
			UserID:       b.UserID,
			Username:     b.Username,
			VenueID:      b.VenueID,
			VenueName:    b.VenueName,
			StartTime:    b.StartTime.Format(time.RFC3339),
			EndTime:      b.EndTime.Format(time.RFC3339),
			PeopleCount:  b.PeopleCount,
			ContactPhone: b.ContactPhone,
			StudentIDs:   b.StudentIDs,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
