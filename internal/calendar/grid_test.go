package calendar

import (
	"testing"
	"time"

	"github.com/alexanderramin/chapterhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthGrid(t *testing.T, w *Windower, anchor time.Time, items ...domain.ScheduleItem) MonthGrid {
	t.Helper()
	win, err := w.ComputeWindow(domain.ModeMonth, anchor)
	require.NoError(t, err)
	grid, err := w.MonthGrid(items, win)
	require.NoError(t, err)
	return grid
}

func TestMonthGrid_May2025(t *testing.T) {
	w := newTestWindower(utc(2025, 5, 14, 0, 0))
	grid := monthGrid(t, w, utc(2025, 5, 1, 0, 0))

	// May 1 2025 is a Thursday: four padding days from April.
	assert.Equal(t, 4, grid.Leading)
	assert.Equal(t, utc(2025, 4, 27, 0, 0), grid.Cells[0].Date)
	assert.False(t, grid.Cells[0].InMonth)
	assert.True(t, grid.Cells[4].InMonth)
	assert.Equal(t, 1, grid.Cells[4].Date.Day())

	// May 31 is a Saturday, so the last row closes without June padding.
	assert.Equal(t, 0, grid.Trailing)
	assert.Len(t, grid.Cells, 35)
	assert.Zero(t, len(grid.Cells)%7)
	assert.Len(t, grid.Weeks(), 5)
}

func TestMonthGrid_SixWeekPadsFromNextMonth(t *testing.T) {
	w := newTestWindower(utc(2025, 5, 14, 0, 0), WithSixWeekGrid(true))
	grid := monthGrid(t, w, utc(2025, 5, 1, 0, 0))

	require.Len(t, grid.Cells, 42)
	assert.Equal(t, 4, grid.Leading)
	assert.Equal(t, 7, grid.Trailing)
	last := grid.Cells[len(grid.Cells)-1]
	assert.Equal(t, utc(2025, 6, 7, 0, 0), last.Date)
	assert.False(t, last.InMonth)
}

func TestMonthGrid_TrailingPadding(t *testing.T) {
	w := newTestWindower(utc(2025, 6, 1, 0, 0))
	grid := monthGrid(t, w, utc(2025, 6, 18, 0, 0))

	// June 2025 starts on Sunday and ends on Monday the 30th.
	assert.Equal(t, 0, grid.Leading)
	assert.Equal(t, 5, grid.Trailing)
	assert.Equal(t, utc(2025, 7, 5, 0, 0), grid.Cells[len(grid.Cells)-1].Date)
}

func TestMonthGrid_CellCountMultipleOfSeven(t *testing.T) {
	for _, six := range []bool{false, true} {
		w := newTestWindower(utc(2025, 1, 1, 0, 0), WithSixWeekGrid(six))
		for anchor := utc(2000, 1, 15, 0, 0); anchor.Year() <= 2030; anchor = anchor.AddDate(0, 1, 0) {
			grid := monthGrid(t, w, anchor)
			assert.Zero(t, len(grid.Cells)%7, "anchor %s", anchor)
			assert.Equal(t, time.Sunday, grid.Cells[0].Date.Weekday())
			assert.Equal(t, time.Saturday, grid.Cells[len(grid.Cells)-1].Date.Weekday())
			if six {
				assert.Len(t, grid.Cells, 42)
			}
		}
	}
}

func TestMonthGrid_PaddingCellsCarryItems(t *testing.T) {
	w := newTestWindower(utc(2025, 5, 14, 0, 0))
	april := item(domain.ItemEvent, "april", utc(2025, 4, 28, 18, 0))
	may := item(domain.ItemShift, "may", utc(2025, 5, 14, 9, 0))
	march := item(domain.ItemTask, "march", utc(2025, 3, 30, 9, 0))

	grid := monthGrid(t, w, utc(2025, 5, 1, 0, 0), april, may, march)

	require.Len(t, grid.Cells[1].Items, 1)
	assert.Equal(t, "april", grid.Cells[1].Items[0].ID)
	assert.False(t, grid.Cells[1].InMonth)

	var mayCell GridCell
	for _, c := range grid.Cells {
		if c.Date.Equal(utc(2025, 5, 14, 0, 0)) {
			mayCell = c
		}
	}
	require.Len(t, mayCell.Items, 1)
	assert.True(t, mayCell.IsToday)

	for _, c := range grid.Cells {
		for _, it := range c.Items {
			assert.NotEqual(t, "march", it.ID)
		}
	}
}

func TestMonthGrid_RejectsOtherModes(t *testing.T) {
	w := newTestWindower(utc(2025, 5, 14, 0, 0))
	win, err := w.ComputeWindow(domain.ModeWeek, utc(2025, 5, 14, 0, 0))
	require.NoError(t, err)

	_, err = w.MonthGrid(nil, win)
	assert.ErrorIs(t, err, ErrUnknownViewMode)
}
