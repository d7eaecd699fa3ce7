package domain

import (
	"fmt"
	"time"
)

// DayWindow half-open window [Start, End) of one calendar day in salon wall-clock time
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// NewDayWindow returns the window of the calendar day containing t, in loc
func NewDayWindow(t time.Time, loc *time.Location) DayWindow {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	// AddDate, а не Add(24h): сутки с переходом на летнее время короче или длиннее
	return DayWindow{Start: start, End: start.AddDate(0, 0, 1)}
}

// ParseDayWindow parses a YYYY-MM-DD date in loc
func ParseDayWindow(date string, loc *time.Location) (DayWindow, error) {
	parsed, err := time.ParseInLocation(DateFormat, date, loc)
	if err != nil {
		return DayWindow{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	return NewDayWindow(parsed, loc), nil
}

// Contains reports whether t falls inside the window
func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Date returns the window's date as YYYY-MM-DD
func (w DayWindow) Date() string {
	return w.Start.Format(DateFormat)
}

// Location returns the window's location
func (w DayWindow) Location() *time.Location {
	return w.Start.Location()
}

// DaysBetween returns the day windows touched by the half-open range [start, end)
func DaysBetween(start, end time.Time, loc *time.Location) []DayWindow {
	if !start.Before(end) {
		return nil
	}
	var windows []DayWindow
	for w := NewDayWindow(start, loc); w.Start.Before(end); w = NewDayWindow(w.End, loc) {
		windows = append(windows, w)
	}
	return windows
}
