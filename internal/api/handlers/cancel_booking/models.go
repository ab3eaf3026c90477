package cancel_booking

import (
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

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
