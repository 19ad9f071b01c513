package normalize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat indicates a value that cannot be normalized.
var ErrInvalidFormat = errors.New("invalid format")

// Time canonicalizes a time-of-day string to HH:MM:SS.
// Accepted inputs: "H", "H:MM", "H:MM:SS". Empty input means midnight.
// Single-component values are whole hours; components are zero-padded.
func Time(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "00:00:00", nil
	}

	parts := strings.Split(raw, ":")
	if len(parts) > 3 {
		return "", fmt.Errorf("%w: time %q", ErrInvalidFormat, raw)
	}

	components := [3]int{}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return "", fmt.Errorf("%w: time %q", ErrInvalidFormat, raw)
		}
		components[i] = n
	}

	return fmt.Sprintf("%02d:%02d:%02d", components[0], components[1], components[2]), nil
}

// Duration canonicalizes a worked-hours string to HH:MM:SS using the same
// rules as Time. "0" and empty both mean a zero duration.
func Duration(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return "00:00:00", nil
	}
	return Time(raw)
}

var monthsByName = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// MonthDate resolves a full English month name (case-insensitive) and a year
// to the first day of that month.
func MonthDate(name string, year int) (time.Time, error) {
	month, ok := monthsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: month %q", ErrInvalidFormat, name)
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// MonthName returns the capitalized English name used on payslip periods.
func MonthName(m time.Month) string {
	return m.String()
}

// EntryDate parses the attendance-sheet date format M/D/YYYY.
func EntryDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidFormat, raw)
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidFormat, raw)
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidFormat, raw)
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidFormat, raw)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidFormat, raw)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// Bool parses attendance-sheet booleans. "yes", "1" and "true" are true
// (case-insensitive); everything else, including empty, is false.
func Bool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "1", "true":
		return true
	default:
		return false
	}
}
