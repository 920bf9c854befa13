package primitive

import (
	"strings"
	"time"
)

// ISO8601 selects RFC 3339 rendering and lenient ISO 8601 parsing instead of
// a fixed Go layout.
const ISO8601 = "iso-8601"

// DateLayout is the calendar date layout used for dates in ISO8601 mode.
const DateLayout = "2006-01-02"

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// IsISO reports whether layout selects ISO8601 mode.
func IsISO(layout string) bool {
	return strings.EqualFold(layout, ISO8601)
}

// ParseTime parses s with layout. In ISO8601 mode an offset is optional and
// a value without one is read as UTC.
func ParseTime(layout, s string) (time.Time, error) {
	if !IsISO(layout) {
		return time.Parse(layout, s)
	}

	var firstErr error

	for _, l := range isoLayouts {
		t, err := time.Parse(l, s)
		if err == nil {
			return t, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, firstErr
}

// FormatTime renders t with layout. In ISO8601 mode a zero offset renders as "Z".
func FormatTime(layout string, t time.Time) string {
	if IsISO(layout) {
		return t.Format(time.RFC3339Nano)
	}

	return t.Format(layout)
}

// ParseDate parses a calendar date. ISO8601 mode uses DateLayout.
func ParseDate(layout, s string) (time.Time, error) {
	if IsISO(layout) {
		layout = DateLayout
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, err
	}

	return TruncateDate(t), nil
}

// FormatDate renders the calendar date of t.
func FormatDate(layout string, t time.Time) string {
	if IsISO(layout) {
		layout = DateLayout
	}

	return t.Format(layout)
}

// TruncateDate drops the time of day, keeping the calendar date of t at UTC midnight.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// HasClock reports whether t carries a time of day.
func HasClock(t time.Time) bool {
	h, m, s := t.Clock()
	return h != 0 || m != 0 || s != 0 || t.Nanosecond() != 0
}
