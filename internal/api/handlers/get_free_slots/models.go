package get_free_slots

import (
	getFreeSlots "github.com/m04kA/SMC-GymBookingService/internal/usecase/get_free_slots"
)

// FreeIntervalResponse свободный интервал открытого окна
type FreeIntervalResponse struct {
	SlotID       int64 `json:"slotId"`
	StartSeconds int   `json:"startSeconds"` // секунды от полуночи
	EndSeconds   int   `json:"endSeconds"`
}

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	VenueID   int64                  `json:"venueId"`
	Date      string                 `json:"date"`
	Intervals []FreeIntervalResponse `json:"intervals"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	intervals := make([]FreeIntervalResponse, 0, len(resp.Intervals))
	for _, interval := range resp.Intervals {
		intervals = append(intervals, FreeIntervalResponse{
			SlotID:       interval.SlotID,
			StartSeconds: interval.StartSeconds,
			EndSeconds:   interval.EndSeconds,
		})
	}

	return &FreeSlotsResponse{
		VenueID:   resp.VenueID,
		Date:      resp.Date,
		Intervals: intervals,
	}
}
