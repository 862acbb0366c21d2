package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// Date is a calendar day exchanged as "YYYY-MM-DD". The zero value
// is encoded as null.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Date{}, nil
	}

	t, err := time.Parse(DateLayout, raw)
	if err == nil {
		return Date{t}, nil
	}

	// The backend sometimes returns full timestamps for date fields
	t, rfcErr := time.Parse(time.RFC3339, raw)
	if rfcErr != nil {
		return Date{}, errors.Wrapf(err, "could not parse date '%s'", raw)
	}

	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}, nil
}

func MustParseDate(raw string) Date {
	d, err := ParseDate(raw)
	if err != nil {
		panic(errors.WithStack(err))
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithStack(err)
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return errors.WithStack(err)
	}

	*d = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, used by yaml and flag decoding.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return errors.WithStack(err)
	}

	*d = parsed

	return nil
}

var (
	_ json.Marshaler   = Date{}
	_ json.Unmarshaler = &Date{}
)
