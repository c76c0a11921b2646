package datetime

import (
	"encoding/json"
	"strings"
)

// MarshalJSON implements json.Marshaler. Values are written as extended
// ISO 8601 with their UTC offset; the zero value is null.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	if dt.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(dt.ISO8601(true))
}

// UnmarshalJSON implements json.Unmarshaler. It accepts what
// ParseISO8601 accepts, using the calendar dt belongs to.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if s == "" || s == "null" {
		*dt = DateTime{cal: dt.cal}
		return nil
	}
	return dt.UnmarshalText([]byte(s))
}

// MarshalText implements encoding.TextMarshaler.
func (dt DateTime) MarshalText() ([]byte, error) {
	if dt.IsZero() {
		return []byte{}, nil
	}
	return []byte(dt.ISO8601(true)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dt *DateTime) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*dt = DateTime{cal: dt.cal}
		return nil
	}
	parsed, err := dt.Calendar().ParseISO8601(string(data))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
