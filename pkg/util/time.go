package util

import (
	"fmt"
	"time"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
	// DateFormatUS is the alternate accepted input format for dates.
	DateFormatUS = "01/02/2006"
	// FilenameTimestampFormat is the compact timestamp used in generated
	// file names.
	FilenameTimestampFormat = "20060102150405"
)

// GetDefaultTimezone returns the process-local timezone.
func GetDefaultTimezone() *time.Location {
	localTimeZone, _ := time.LoadLocation("Local")
	return localTimeZone
}

// Now returns the current time in the default timezone.
func Now() time.Time {
	return time.Now().In(GetDefaultTimezone())
}

// StrToDate parses a date in DateFormat.
func StrToDate(str string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, str, GetDefaultTimezone())
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// ParseFlexibleDate parses a date in either 2006-01-02 or 01/02/2006 form.
func ParseFlexibleDate(str string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateFormat, str, GetDefaultTimezone()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateFormatUS, str, GetDefaultTimezone()); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, expected %s or %s", str, DateFormat, DateFormatUS)
}

// DateToStr formats a date in DateFormat.
func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}

// FilenameTimestamp formats t as a compact local timestamp for file names.
func FilenameTimestamp(t time.Time) string {
	return t.In(GetDefaultTimezone()).Format(FilenameTimestampFormat)
}

// StartOfDay returns midnight of t's day in the default timezone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, GetDefaultTimezone())
}

// EndOfDay returns the last second of t's day in the default timezone.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, GetDefaultTimezone())
}
