package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// parseRange собирает абсолютные timestamps из даты и времени суток
// Дата и время интерпретируются в локальной таймзоне сервера
func parseRange(date, startTime, endTime string) (time.Time, time.Time, error) {
	layout := domain.DateFormat + " " + domain.TimeFormat

	start, err := time.ParseInLocation(layout, strings.TrimSpace(date)+" "+strings.TrimSpace(startTime), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	end, err := time.ParseInLocation(layout, strings.TrimSpace(date)+" "+strings.TrimSpace(endTime), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	return start, end, nil
}

// cleanStudentIDs убирает пустые и пробельные учётные номера
func cleanStudentIDs(ids []string) []string {
	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			clean = append(clean, id)
		}
	}
	return clean
}

// validateContact проверяет контактные данные запроса
func validateContact(req *Request) error {
	if req.PeopleCount < 1 {
		return fmt.Errorf("%w: peopleCount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ContactPhone) == "" {
		return fmt.Errorf("%w: contactPhone is required", ErrInvalidInput)
	}
	if len(req.ContactPhone) > domain.MaxContactPhoneLength {
		return fmt.Errorf("%w: contactPhone is too long", ErrInvalidInput)
	}
	return nil
}

// rangeInsideOpenSlot проверяет, что интервал [start, end] целиком попадает
// хотя бы в одно открытое окно площадки. Сравнение всегда по секундам
// с начала суток: открытые окна - ежедневные шаблоны без даты
func rangeInsideOpenSlot(slots []*domain.OpenSlot, start, end time.Time) bool {
	startSec := domain.SecondsSinceMidnight(start)
	endSec := domain.SecondsSinceMidnight(end)

	for _, s := range slots {
		if s.ContainsSeconds(startSec, endSec) {
			return true
		}
	}
	return false
}

// firstOverlapping возвращает первое активное бронирование, пересекающее
// [start, end), или nil. Повторная проверка поверх выборки репозитория:
// сравнение абсолютных интервалов в одном месте
func firstOverlapping(bookings []*domain.Booking, start, end time.Time) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Overlaps(start, end) {
			return b
		}
	}
	return nil
}
