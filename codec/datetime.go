// Package codec renders and parses the four date/time shapes whose schemas
// the catalog advertises. Each layout matches its schema format hint
// character for character, which is what pins the hints' minLength values.
package codec

import (
	"time"

	paramskema "github.com/reoring/paramskema"
)

// Go reference layouts for the schema format hints.
const (
	LayoutDate          = "2006-01-02"          // yyyy-mm-dd
	LayoutLocalDateTime = "2006-01-02T15:04:05" // yyyy-mm-ddThh:MM:ss
	LayoutZonedDateTime = "2006-01-02T15:04:05-0700"
	LayoutUTCDateTime   = "2006-01-02T15:04:05Z0700" // renders "Z" for UTC
)

// FormatDate renders d as yyyy-mm-dd.
func FormatDate(d paramskema.Date) string {
	return d.Time().Format(LayoutDate)
}

// ParseDate parses a yyyy-mm-dd string.
func ParseDate(s string) (paramskema.Date, error) {
	t, err := time.Parse(LayoutDate, s)
	if err != nil {
		return paramskema.Date{}, err
	}
	return paramskema.Date(t), nil
}

// FormatLocalDateTime renders d as yyyy-mm-ddThh:MM:ss, dropping any zone.
func FormatLocalDateTime(d paramskema.LocalDateTime) string {
	return d.Time().Format(LayoutLocalDateTime)
}

// ParseLocalDateTime parses a yyyy-mm-ddThh:MM:ss string.
func ParseLocalDateTime(s string) (paramskema.LocalDateTime, error) {
	t, err := time.Parse(LayoutLocalDateTime, s)
	if err != nil {
		return paramskema.LocalDateTime{}, err
	}
	return paramskema.LocalDateTime(t), nil
}

// FormatZoned renders t as yyyy-mm-ddThh:MM:ss+hhMM.
func FormatZoned(t time.Time) string {
	return t.Format(LayoutZonedDateTime)
}

// ParseZoned parses a yyyy-mm-ddThh:MM:ss+hhMM string.
func ParseZoned(s string) (time.Time, error) {
	return time.Parse(LayoutZonedDateTime, s)
}

// FormatUTC renders d as yyyy-mm-ddThh:MM:ssZ. The receiver is normalized
// to UTC so the trailing designator is always the literal Z.
func FormatUTC(d paramskema.UTCTime) string {
	return d.Time().Format(LayoutUTCDateTime)
}

// ParseUTC parses a yyyy-mm-ddThh:MM:ssZ string (offsets are accepted and
// normalized to UTC).
func ParseUTC(s string) (paramskema.UTCTime, error) {
	t, err := time.Parse(LayoutUTCDateTime, s)
	if err != nil {
		return paramskema.UTCTime{}, err
	}
	return paramskema.UTCTime(t.UTC()), nil
}
