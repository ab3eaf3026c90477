package get_user_bookings

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

// UserBookingResponse бронирование в истории пользователя
type UserBookingResponse struct {
	ID           int64    `json:"id"`
	VenueID      int64    `json:"venueId"`
	VenueName    string   `json:"venueName"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	PeopleCount  int      `json:"peopleCount"`
	ContactPhone string   `json:"contactPhone"`
	StudentIDs   []string `json:"studentIds"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"createdAt"`
}

// FromServiceResponse конвертирует модели сервиса в HTTP response
func FromServiceResponse(bookings []*models.UserBookingResponse) []*UserBookingResponse {
	result := make([]*UserBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, &UserBookingResponse{
			ID:           b.ID,
			VenueID:      b.VenueID,
			VenueName:    b.VenueName,
			StartTime:    b.StartTime.Format(time.RFC3339),
			EndTime:      b.EndTime.Format(time.RFC3339),
			PeopleCount:  b.PeopleCount,
			ContactPhone: b.ContactPhone,
			StudentIDs:   b.StudentIDs,
			Status:       b.Status,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
