package catches

import (
	"strings"
	"time"

	"github.com/agentstation/catchlog/pkg/errors"
)

// ISOLayout is the instant format sent to the remote service.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// LocalInputLayout is the format of an HTML datetime-local input.
const LocalInputLayout = "2006-01-02T15:04"

// DateLayout is the format of the date filters.
const DateLayout = "2006-01-02"

var localLayouts = []string{
	LocalInputLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	DateLayout,
}

// NormalizeTimestamp turns a form value into a UTC ISO-8601 instant. Values
// without a zone are read in loc (time.Local when nil).
func NormalizeTimestamp(s string, loc *time.Location) (string, error) {
	t, err := ParseTimestamp(s, loc)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(ISOLayout), nil
}

// ParseTimestamp accepts RFC 3339 instants and zone-less local values.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewValidationError("dateCapture", s, "invalid time value")
}

// LocalInputValue formats t for a datetime-local input in loc.
func LocalInputValue(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(LocalInputLayout)
}

// ValidateDate checks a YYYY-MM-DD filter value.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return errors.NewValidationError("date", s, "expected YYYY-MM-DD")
	}
	return nil
}
