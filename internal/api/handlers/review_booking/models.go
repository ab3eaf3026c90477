package review_booking

import (
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

// Допустимые значения поля decision
const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

// ReviewBookingRequest HTTP request model
type ReviewBookingRequest struct {
	Decision string `json:"decision"` // "approved" или "rejected"
}

// StatusResponse HTTP response model
type StatusResponse struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
}

// FromServiceResponse конвертирует результат смены статуса в HTTP response
func FromServiceResponse(resp *models.StatusResponse) *StatusResponse {
	return &StatusResponse{
		BookingID: resp.BookingID,
		Status:    resp.NewStatus,
	}
}
