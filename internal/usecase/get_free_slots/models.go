package get_free_slots

import "github.com/m04kA/SMC-GymBookingService/internal/domain"

// Request модель запроса на получение свободных интервалов
type Request struct {
	VenueID int64  // ID площадки
	Date    string // Дата, "2025-10-15"
}

// Response модель ответа со списком свободных интервалов
type Response struct {
	VenueID   int64                  // ID площадки
	Date      string                 // Дата запроса
	Intervals []domain.FreeInterval  // Свободные интервалы, по возрастанию начала
}
