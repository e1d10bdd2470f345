package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

const sixWeekCells = 42

// GridCell is one day of a month grid. Cells outside the month are padding and
// render dimmed, but still carry their items.
type GridCell struct {
	Date    time.Time
	InMonth bool
	IsToday bool
	Items   []domain.ScheduleItem
}

// MonthGrid is a Sunday-first grid of whole weeks covering a month.
type MonthGrid struct {
	Year     int
	Month    time.Month
	Cells    []GridCell
	Leading  int
	Trailing int
}

// Weeks splits the cells into rows of seven.
func (g MonthGrid) Weeks() [][]GridCell {
	weeks := make([][]GridCell, 0, len(g.Cells)/7)
	for i := 0; i+7 <= len(g.Cells); i += 7 {
		weeks = append(weeks, g.Cells[i:i+7])
	}
	return weeks
}

// MonthGrid lays out a month window. Leading cells come from the previous
// month back to Sunday and trailing cells from the next month through
// Saturday. Items are bucketed over the whole padded range.
func (w *Windower) MonthGrid(items []domain.ScheduleItem, window domain.ViewWindow) (MonthGrid, error) {
	if window.Mode != domain.ModeMonth {
		return MonthGrid{}, fmt.Errorf("building month grid from %s window: %w", window.Mode, ErrUnknownViewMode)
	}
	if window.Start.IsZero() {
		return MonthGrid{}, fmt.Errorf("building month grid: %w", ErrInvalidAnchorDate)
	}

	loc := w.dates.Location()
	first := w.dates.StartOfMonth(window.Start)
	gridStart := w.dates.StartOfWeek(first)
	gridEnd := w.dates.EndOfWeek(window.End)

	days := w.dates.EachDay(gridStart, gridEnd)
	if w.sixWeek {
		for len(days) < sixWeekCells {
			days = append(days, w.dates.AddDays(days[len(days)-1], 1))
		}
		gridEnd = w.dates.AddDays(days[len(days)-1], 1).Add(-time.Nanosecond)
	}

	padded := domain.ViewWindow{Mode: domain.ModeMonth, Start: gridStart, End: gridEnd}
	buckets := w.bucketByDay(days, Partition(items, padded))

	now := w.clock.Now()
	grid := MonthGrid{Year: first.Year(), Month: first.Month(), Cells: make([]GridCell, len(buckets))}
	for i, b := range buckets {
		inMonth := b.Date.Month() == first.Month() && b.Date.Year() == first.Year()
		grid.Cells[i] = GridCell{
			Date:    b.Date,
			InMonth: inMonth,
			IsToday: sameDay(b.Date, now, loc),
			Items:   b.Items,
		}
		if !inMonth {
			if b.Date.Before(first) {
				grid.Leading++
			} else {
				grid.Trailing++
			}
		}
	}
	return grid, nil
}
