// Package valueobject contains domain value objects for the property operations backend.
package valueobject

import (
	"fmt"
	"time"
)

// DateWindow is an inclusive [Start, End] interval used to select ledger rows for a report.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewDateWindow creates a window from start to end, both inclusive.
func NewDateWindow(start, end time.Time) DateWindow {
	return DateWindow{Start: start, End: end}
}

// Contains reports whether the calendar date of t lies inside the window. The date is read in
// t's own location and compared at midnight in the window's location, so a ledger date stored
// as UTC midnight matches the same day in any property time zone. A zero time never matches.
func (w DateWindow) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	day := CalendarDay(t, w.Start.Location())
	return !day.Before(w.Start) && !day.After(w.End)
}

// CalendarDay returns midnight in loc on the calendar date t carries in its own location.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Days returns the fractional number of days between Start and End.
func (w DateWindow) Days() float64 {
	return w.End.Sub(w.Start).Hours() / 24
}

// Label returns a short human-readable label such as "2024-03-01 - 2024-03-31".
func (w DateWindow) Label() string {
	return fmt.Sprintf("%s - %s", w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}

// MonthStart returns midnight on the first day of the month containing t.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// QuarterStart returns midnight on the first day of the quarter containing t.
func QuarterStart(t time.Time) time.Time {
	quarter := (int(t.Month()) - 1) / 3
	return time.Date(t.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, t.Location())
}

// YearStart returns midnight on January 1st of the year containing t.
func YearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// CalendarMonth returns the window from the first to the last day of the month containing t.
func CalendarMonth(t time.Time) DateWindow {
	start := MonthStart(t)
	return DateWindow{Start: start, End: start.AddDate(0, 1, -1)}
}

// MonthToDate returns the window from the first of the current month up to now.
func MonthToDate(now time.Time) DateWindow {
	return DateWindow{Start: MonthStart(now), End: now}
}

// PreviousMonth returns the full calendar month before the one containing now.
func PreviousMonth(now time.Time) DateWindow {
	return CalendarMonth(MonthStart(now).AddDate(0, -1, 0))
}

// QuarterToDate returns the window from the start of the current quarter up to now.
func QuarterToDate(now time.Time) DateWindow {
	return DateWindow{Start: QuarterStart(now), End: now}
}

// YearToDate returns the window from January 1st up to now.
func YearToDate(now time.Time) DateWindow {
	return DateWindow{Start: YearStart(now), End: now}
}

// CalendarYear returns January 1st through December 31st of the given year.
func CalendarYear(year int, loc *time.Location) DateWindow {
	if loc == nil {
		loc = time.UTC
	}
	return DateWindow{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, loc),
	}
}

// MonthsElapsed returns the 1-based month index of now within its year.
func MonthsElapsed(now time.Time) int {
	return int(now.Month())
}
