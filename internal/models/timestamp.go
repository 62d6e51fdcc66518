package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Формат даты-времени без часового пояса, в котором API принимает и отдает даты
const TimestampLayout = "2006-01-02T15:04:05"

// Формат хранения в SQLite: совместим с функцией DATE()
const storageLayout = "2006-01-02 15:04:05"

var acceptedLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	storageLayout,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp - дата и время без часового пояса (наивное значение)
type Timestamp struct {
	time.Time
}

// NewTimestamp отбрасывает часовой пояс и доли секунды
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

// ParseTimestamp разбирает дату в одном из поддерживаемых форматов
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t), nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q: expected format %s", s, TimestampLayout)
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// Date возвращает календарную дату в формате YYYY-MM-DD
func (t Timestamp) Date() string {
	return t.Format("2006-01-02")
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value хранит значение текстом, чтобы работали DATE() и сортировка
func (t Timestamp) Value() (driver.Value, error) {
	return t.Format(storageLayout), nil
}

// Scan принимает как time.Time, так и текстовое значение из драйвера
func (t *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case nil:
		*t = Timestamp{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}
