package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

// minutesPerDay количество минут в сутках
const minutesPerDay = 24 * 60

var (
	// ErrInvalidFormat возвращается при некорректном формате строки времени
	ErrInvalidFormat = errors.New("invalid time string format, expected HH:MM")

	// ErrOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrOutOfRange = errors.New("time is out of day range")
)

// TimeString строковое представление времени суток в формате HH:MM.
// Специальное значение "24:00" допустимо как конец суток (только как граница интервала).
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией.
// Принимает "HH:MM" и "HH:MM:SS" (секунды отбрасываются).
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) == len("15:04:05") {
		if _, err := time.Parse("15:04:05", s); err == nil {
			return TimeString(s[:5]), nil
		}
	}

	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет корректность формата времени
func (t TimeString) Validate() error {
	_, err := t.minutes()
	return err
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore проверяет, что время строго раньше other.
// Некорректные значения никогда не считаются раньше.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Equal проверяет равенство двух значений времени (с учётом нормализации)
func (t TimeString) Equal(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a == b
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперёд.
// Результат не может выходить за пределы суток ("24:00" - допустимая граница).
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.minutes()
	if err != nil {
		return "", err
	}

	m += minutes
	if m < 0 || m > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %dm", ErrOutOfRange, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// OnDate материализует время суток в абсолютный момент на указанную дату
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	m, err := t.minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, date.Location()), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в колонку TIME
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner: PostgreSQL отдаёт TIME как "HH:MM:SS",
// значение нормализуется к формату HH:MM
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidFormat, src)
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// minutes парсит значение в количество минут от начала суток
func (t TimeString) minutes() (int, error) {
	if t == "24:00" {
		return minutesPerDay, nil
	}

	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}

	return parsed.Hour()*60 + parsed.Minute(), nil
}
