package create_booking

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID      int64    `json:"venueId"`
	Date         string   `json:"date"`      // "2025-10-15"
	StartTime    string   `json:"startTime"` // "17:00"
	EndTime      string   `json:"endTime"`   // "18:00"
	PeopleCount  int      `json:"peopleCount"`
	ContactPhone string   `json:"contactPhone"`
	StudentIDs   []string `json:"studentIds"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// userID приходит из заголовка аутентификации, а не из тела.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:       userID,
		VenueID:      r.VenueID,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		PeopleCount:  r.PeopleCount,
		ContactPhone: r.ContactPhone,
		StudentIDs:   r.StudentIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.BookingID,
		Status:    resp.Status,
		Date:      resp.StartTime.Format(domain.DateFormat),
		StartTime: resp.StartTime.Format(domain.TimeFormat),
		EndTime:   resp.EndTime.Format(domain.TimeFormat),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
