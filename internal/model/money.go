// Package model holds the flat domain records mirrored from the Jarvis
// backend. The backend owns all of them; the client only reshapes them
// for display.
package model

import (
	"bytes"
	"time"
)

// Date formats the backend has been observed to emit. RFC3339 comes from
// the API proper; the short forms appear in user-entered reminder dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexTime is a time.Time that unmarshals from any of the date encodings
// the backend uses. An unparseable or empty value decodes to the zero
// time rather than failing the whole record; callers substitute their own
// fallback.
type FlexTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *FlexTime) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, string(data)); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// Or returns the wrapped time, or fallback when it is zero.
func (t FlexTime) Or(fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}
	return t.Time
}
