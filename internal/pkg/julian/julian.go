// Package julian converts between ARGO JULD day offsets and calendar dates.
//
// JULD is the number of (possibly fractional) days elapsed since the ARGO
// reference date 1950-01-01T00:00:00Z.
package julian

import (
	"encoding/json"
	"math"
	"time"
)

const (
	secondsPerDay = 86400
	nanosPerDay   = secondsPerDay * 1e9

	// maxDayOffset ограничивает диапазон смещений, которые переводятся в даты
	// без переполнения time.Time (около 2.7 млн лет в обе стороны)
	maxDayOffset = 1e9
)

// Epoch - опорная дата ARGO
var Epoch = time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)

// Date - календарная дата, которая может быть неизвестна.
// Valid == false означает "дата неизвестна", Time в этом случае нулевой.
type Date struct {
	Time  time.Time
	Valid bool
}

// Unknown возвращает неизвестную дату
func Unknown() Date {
	return Date{}
}

// ToCalendarDate переводит смещение в днях от Epoch в календарную дату.
// NaN, ±Inf и значения вне представимого диапазона дают неизвестную дату.
func ToCalendarDate(dayOffset float64) Date {
	if math.IsNaN(dayOffset) || math.IsInf(dayOffset, 0) || math.Abs(dayOffset) > maxDayOffset {
		return Unknown()
	}

	whole, frac := math.Modf(dayOffset)
	t := Epoch.AddDate(0, 0, int(whole)).Add(time.Duration(math.Round(frac * nanosPerDay)))

	return Date{Time: t, Valid: true}
}

// ToDayOffset переводит момент времени в смещение в днях от Epoch
func ToDayOffset(t time.Time) float64 {
	t = t.UTC()
	seconds := t.Unix() - Epoch.Unix()
	return float64(seconds)/secondsPerDay + float64(t.Nanosecond())/nanosPerDay
}

// FromNullable переводит смещение, пришедшее из хранилища, где NULL
// представлен как nil
func FromNullable(dayOffset *float64) Date {
	if dayOffset == nil {
		return Unknown()
	}
	return ToCalendarDate(*dayOffset)
}

// String возвращает дату в RFC 3339 или "unknown"
func (d Date) String() string {
	if !d.Valid {
		return "unknown"
	}
	return d.Time.UTC().Format(time.RFC3339Nano)
}

// MarshalJSON кодирует неизвестную дату как null
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
}

// UnmarshalJSON принимает null или строку RFC 3339
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Unknown()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}

	*d = Date{Time: t.UTC(), Valid: true}
	return nil
}
