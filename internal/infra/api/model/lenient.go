package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Int is a counter the backend sometimes sends as a string or a float.
// Anything unparseable decodes to 0.
type Int int

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (n *Int) UnmarshalJSON(data []byte) error {
	var f Number
	if err := f.UnmarshalJSON(data); err != nil {
		return nil
	}
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		*n = 0

		return nil
	}
	*n = Int(f)

	return nil
}

// Bool is an optional flag. Valid is false when the field was missing,
// null or unreadable.
type Bool struct {
	Value bool
	Valid bool
}

// UnmarshalJSON accepts true/false, "true"/"false" and 1/0 in either form.
func (b *Bool) UnmarshalJSON(data []byte) error {
	*b = Bool{}

	text := strings.ToLower(strings.Trim(string(bytes.TrimSpace(data)), `"`))
	switch text {
	case "true", "1":
		*b = Bool{Value: true, Valid: true}
	case "false", "0":
		*b = Bool{Value: false, Valid: true}
	}

	return nil
}

// timeLayouts are tried in order for string timestamps.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Time is a timestamp that decodes to the zero time when missing or
// malformed. Numbers are read as Unix milliseconds.
type Time struct {
	time.Time
}

// UnmarshalJSON accepts an RFC 3339 or date-only string, epoch millis, or null.
func (t *Time) UnmarshalJSON(data []byte) error {
	*t = Time{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] != '"' {
		if ms, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			t.Time = time.UnixMilli(ms).UTC()
		}

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed

			return nil
		}
	}

	return nil
}
