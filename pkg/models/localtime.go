package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalTimeLayout is ISO-8601 without a zone offset, matching how quote and
// trade timestamps appear on the wire.
const LocalTimeLayout = "2006-01-02T15:04:05"

// LocalTime is a wall-clock timestamp serialized without a time zone.
type LocalTime struct {
	time.Time
}

// NewLocalTime truncates t to second precision, the granularity carried on
// the wire and in the database columns.
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{t.Truncate(time.Second)}
}

// ParseLocalTime parses an ISO-8601 timestamp, with or without fractional
// seconds.
func ParseLocalTime(s string) (LocalTime, error) {
	for _, layout := range []string{LocalTimeLayout, LocalTimeLayout + ".999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalTime{t}, nil
		}
	}
	return LocalTime{}, fmt.Errorf("invalid timestamp %q, expected %s", s, LocalTimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(LocalTimeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t LocalTime) Value() (driver.Value, error) {
	return t.Time, nil
}

// Scan implements sql.Scanner. Accepts native timestamps as well as the
// string forms sqlite hands back.
func (t *LocalTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		t.Time = v
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case nil:
		return nil
	}
	return fmt.Errorf("cannot scan %T into LocalTime", value)
}

func (t *LocalTime) scanString(s string) error {
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05.999999999",
		LocalTimeLayout + ".999999999",
		LocalTimeLayout,
	} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q into LocalTime", s)
}
