package calendar

import "time"

// DateOps is the calendar arithmetic the windower depends on. All results are
// expressed in Location(). Weeks start on Sunday.
type DateOps interface {
	Location() *time.Location
	StartOfDay(t time.Time) time.Time
	StartOfWeek(t time.Time) time.Time
	EndOfWeek(t time.Time) time.Time
	StartOfMonth(t time.Time) time.Time
	EndOfMonth(t time.Time) time.Time
	AddDays(t time.Time, n int) time.Time
	AddMonths(t time.Time, n int) time.Time
	EachDay(start, end time.Time) []time.Time
}

// Dates implements DateOps for a fixed location.
type Dates struct {
	loc *time.Location
}

// NewDates returns DateOps bound to loc. A nil loc means UTC.
func NewDates(loc *time.Location) Dates {
	if loc == nil {
		loc = time.UTC
	}
	return Dates{loc: loc}
}

func (d Dates) Location() *time.Location { return d.loc }

func (d Dates) StartOfDay(t time.Time) time.Time {
	t = t.In(d.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, d.loc)
}

func (d Dates) StartOfWeek(t time.Time) time.Time {
	day := d.StartOfDay(t)
	return d.AddDays(day, -int(day.Weekday()))
}

// EndOfWeek returns the last representable instant of Saturday.
func (d Dates) EndOfWeek(t time.Time) time.Time {
	return d.AddDays(d.StartOfWeek(t), 7).Add(-time.Nanosecond)
}

func (d Dates) StartOfMonth(t time.Time) time.Time {
	t = t.In(d.loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, d.loc)
}

// EndOfMonth returns the last representable instant of the month.
func (d Dates) EndOfMonth(t time.Time) time.Time {
	first := d.StartOfMonth(t)
	return time.Date(first.Year(), first.Month()+1, 1, 0, 0, 0, 0, d.loc).Add(-time.Nanosecond)
}

// AddDays moves by calendar days, keeping the wall clock across DST changes.
func (d Dates) AddDays(t time.Time, n int) time.Time {
	t = t.In(d.loc)
	return time.Date(t.Year(), t.Month(), t.Day()+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), d.loc)
}

// AddMonths moves by calendar months. The day is clamped to the length of the
// target month, so Jan 31 + 1 month is the last day of February.
func (d Dates) AddMonths(t time.Time, n int) time.Time {
	t = t.In(d.loc)
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, d.loc)
	day := t.Day()
	if last := daysIn(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), d.loc)
}

// EachDay returns the start of every day from start's day through end, inclusive.
func (d Dates) EachDay(start, end time.Time) []time.Time {
	var days []time.Time
	for day := d.StartOfDay(start); !day.After(end); day = d.AddDays(day, 1) {
		days = append(days, day)
	}
	return days
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// sameDay reports whether a and b share a calendar date in loc.
func sameDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
