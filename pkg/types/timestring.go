package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM"
// Используется для времени открытых окон (open slots), которые повторяются
// ежедневно и не привязаны к календарной дате
type TimeString string

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

// parse разбирает "HH:MM" или "HH:MM:SS" (второй вариант приходит из
// postgres-колонок типа TIME)
func parse(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return t, nil
}

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := parse(s)
	if err != nil {
		return "", err
	}
	return NewTimeString(t), nil
}

// String возвращает строковое представление
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero проверяет, что значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет формат времени
func (ts TimeString) Validate() error {
	_, err := parse(string(ts))
	return err
}

// Seconds возвращает количество секунд с начала суток
// Например "17:00" -> 61200
func (ts TimeString) Seconds() int {
	t, err := parse(string(ts))
	if err != nil {
		return 0
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// IsBefore проверяет, что ts раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.Seconds() < other.Seconds()
}

// IsAfter проверяет, что ts позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.Seconds() > other.Seconds()
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := parse(string(ts))
	if err != nil {
		return "", err
	}
	return NewTimeString(t.Add(time.Duration(minutes) * time.Minute)), nil
}
