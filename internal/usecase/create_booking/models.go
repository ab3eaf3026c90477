package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64    // ID пользователя
	VenueID      int64    // ID площадки
	Date         string   // Дата бронирования, "2025-10-15"
	StartTime    string   // Время начала, "17:00"
	EndTime      string   // Время окончания, "18:00"
	PeopleCount  int      // Заявленное количество людей
	ContactPhone string   // Контактный телефон
	StudentIDs   []string // Учётные номера участников
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID int64     // ID созданного бронирования
	Status    string    // Статус (всегда pending при создании)
	StartTime time.Time // Абсолютное время начала
	EndTime   time.Time // Абсолютное время окончания
	CreatedAt time.Time // Время создания
}
