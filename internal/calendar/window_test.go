package calendar

import (
	"testing"
	"time"

	"github.com/alexanderramin/chapterhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func item(typ domain.ItemType, id string, start time.Time) domain.ScheduleItem {
	return domain.ScheduleItem{ID: id, Name: id, Type: typ, Start: start, End: start.Add(time.Hour)}
}

func newTestWindower(now time.Time, opts ...WindowerOption) *Windower {
	return NewWindower(NewDates(time.UTC), FixedClock(now), opts...)
}

func TestComputeWindow_WeekScenario(t *testing.T) {
	w := newTestWindower(utc(2025, 5, 1, 0, 0))

	win, err := w.ComputeWindow(domain.ModeWeek, utc(2025, 5, 14, 15, 30))
	require.NoError(t, err)

	assert.Equal(t, utc(2025, 5, 11, 0, 0), win.Start)
	assert.Equal(t, utc(2025, 5, 18, 0, 0).Add(-time.Nanosecond), win.End)

	items := []domain.ScheduleItem{
		item(domain.ItemEvent, "in", utc(2025, 5, 15, 10, 0)),
		item(domain.ItemEvent, "next-week", utc(2025, 5, 18, 0, 0)),
		item(domain.ItemEvent, "first-instant", utc(2025, 5, 11, 0, 0)),
	}
	got := Partition(items, win)
	require.Len(t, got, 2)
	assert.Equal(t, "in", got[0].ID)
	assert.Equal(t, "first-instant", got[1].ID, "week partition keeps input order")
}

func TestComputeWindow_WeekStartsSundayForEveryAnchor(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	w := NewWindower(NewDates(loc), FixedClock(time.Now()))

	for anchor := time.Date(2024, 1, 1, 13, 0, 0, 0, loc); anchor.Year() < 2027; anchor = anchor.AddDate(0, 0, 1) {
		win, err := w.ComputeWindow(domain.ModeWeek, anchor)
		require.NoError(t, err)

		assert.Equal(t, time.Sunday, win.Start.Weekday(), "anchor %s", anchor)
		assert.Equal(t, time.Saturday, win.End.Weekday(), "anchor %s", anchor)
		assert.Len(t, w.Dates().EachDay(win.Start, win.End), 7, "anchor %s", anchor)
		assert.True(t, win.Contains(anchor), "anchor %s must be inside its own week", anchor)
	}
}

func TestComputeWindow_DayIsHalfOpen(t *testing.T) {
	w := newTestWindower(utc(2025, 5, 1, 0, 0))

	win, err := w.ComputeWindow(domain.ModeDay, utc(2025, 5, 14, 18, 0))
	require.NoError(t, err)
	assert.Equal(t, utc(2025, 5, 14, 0, 0), win.Start)
	assert.Equal(t, utc(2025, 5, 15, 0, 0), win.End)

	assert.True(t, win.Contains(utc(2025, 5, 14, 0, 0)))
	assert.True(t, win.Contains(utc(2025, 5, 14, 23, 59)))
	assert.False(t, win.Contains(utc(2025, 5, 15, 0, 0)))
}

func TestComputeWindow_MonthBounds(t *testing.T) {
	w := newTestWindower(utc(2025, 1, 1, 0, 0))

	win, err := w.ComputeWindow(domain.ModeMonth, utc(2024, 2, 10, 9, 0))
	require.NoError(t, err)
	assert.Equal(t, utc(2024, 2, 1, 0, 0), win.Start)
	assert.Equal(t, utc(2024, 3, 1, 0, 0).Add(-time.Nanosecond), win.End)
}

func TestComputeWindow_InvalidAnchor(t *testing.T) {
	w := newTestWindower(utc(2025, 5, 14, 0, 0))

	for _, mode := range []domain.ViewMode{domain.ModeDay, domain.ModeWeek, domain.ModeMonth} {
		_, err := w.ComputeWindow(mode, time.Time{})
		assert.ErrorIs(t, err, ErrInvalidAnchorDate, "mode %s", mode)
	}

	_, err := w.ComputeWindow(domain.ModeAgenda, time.Time{})
	assert.NoError(t, err, "agenda ignores the anchor")

	_, err = w.ComputeWindow("fortnight", utc(2025, 5, 14, 0, 0))
	assert.ErrorIs(t, err, ErrUnknownViewMode)
}

func TestPartition_AgendaBoundsAndOrder(t *testing.T) {
	now := utc(2025, 5, 14, 12, 0)
	w := newTestWindower(now)

	win, err := w.ComputeWindow(domain.ModeAgenda, utc(2020, 1, 1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, now, win.Start)
	assert.Equal(t, utc(2025, 5, 21, 12, 0), win.End)

	items := []domain.ScheduleItem{
		item(domain.ItemTask, "last", now.AddDate(0, 0, 7)),
		item(domain.ItemEvent, "past", now.Add(-time.Minute)),
		item(domain.ItemShift, "mid", now.Add(48*time.Hour)),
		item(domain.ItemEvent, "now", now),
		item(domain.ItemEvent, "too-late", now.AddDate(0, 0, 7).Add(time.Nanosecond)),
	}

	got := Partition(items, win)
	ids := make([]string, len(got))
	for i, it := range got {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"now", "mid", "last"}, ids)
}

func TestPartition_SkipsInvalidStart(t *testing.T) {
	w := newTestWindower(utc(2025, 5, 14, 0, 0))
	items := []domain.ScheduleItem{
		{ID: "broken", Type: domain.ItemEvent},
		item(domain.ItemEvent, "ok", utc(2025, 5, 14, 9, 0)),
	}

	for _, mode := range []domain.ViewMode{domain.ModeDay, domain.ModeWeek, domain.ModeMonth, domain.ModeAgenda} {
		win, err := w.ComputeWindow(mode, utc(2025, 5, 14, 0, 0))
		require.NoError(t, err)
		assert.NotPanics(t, func() {
			for _, it := range Partition(items, win) {
				assert.NotEqual(t, "broken", it.ID, "mode %s", mode)
			}
		})
	}
}

func TestPartition_InclusionMatchesStartInWindow(t *testing.T) {
	w := newTestWindower(utc(2025, 5, 14, 0, 0))
	anchor := utc(2025, 5, 14, 0, 0)

	var items []domain.ScheduleItem
	for h := -24 * 40; h <= 24*40; h += 7 {
		items = append(items, item(domain.ItemEvent, "x", anchor.Add(time.Duration(h)*time.Hour)))
	}

	for _, mode := range []domain.ViewMode{domain.ModeDay, domain.ModeWeek, domain.ModeMonth} {
		win, err := w.ComputeWindow(mode, anchor)
		require.NoError(t, err)

		got := Partition(items, win)
		want := 0
		for _, it := range items {
			inside := !it.Start.Before(win.Start) && !it.Start.After(win.End)
			if mode == domain.ModeDay {
				inside = !it.Start.Before(win.Start) && it.Start.Before(win.End)
			}
			if inside {
				want++
			}
		}
		assert.Len(t, got, want, "mode %s", mode)
	}
}

func TestDayBuckets_EdgeHours(t *testing.T) {
	w := newTestWindower(utc(2025, 5, 14, 0, 0))
	win, err := w.ComputeWindow(domain.ModeDay, utc(2025, 5, 14, 12, 0))
	require.NoError(t, err)

	items := []domain.ScheduleItem{
		item(domain.ItemShift, "midnight", utc(2025, 5, 14, 0, 0)),
		item(domain.ItemShift, "late", utc(2025, 5, 14, 23, 59)),
		item(domain.ItemEvent, "morning-a", utc(2025, 5, 14, 9, 15)),
		item(domain.ItemTask, "morning-b", utc(2025, 5, 14, 9, 45)),
		item(domain.ItemEvent, "tomorrow", utc(2025, 5, 15, 0, 0)),
	}

	buckets := w.DayBuckets(items, win)
	require.Len(t, buckets, 24)
	assert.Equal(t, "midnight", buckets[0].Items[0].ID)
	assert.Equal(t, "late", buckets[23].Items[0].ID)
	require.Len(t, buckets[9].Items, 2)
	assert.Equal(t, "morning-a", buckets[9].Items[0].ID)
	assert.Equal(t, "morning-b", buckets[9].Items[1].ID)
	assert.Equal(t, utc(2025, 5, 14, 9, 0), buckets[9].Start)

	total := 0
	for _, b := range buckets {
		total += len(b.Items)
	}
	assert.Equal(t, 4, total, "next-day item stays out")
}

func TestComputeWindow_AgendaUsesCalendarZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	w := NewWindower(NewDates(tokyo), FixedClock(utc(2025, 5, 14, 20, 0)))

	win, err := w.ComputeWindow(domain.ModeAgenda, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, tokyo, win.Start.Location())
	assert.Equal(t, tokyo, win.End.Location())
	assert.Equal(t, time.May, win.Start.Month())
	assert.Equal(t, 15, win.Start.Day())
	assert.True(t, win.Start.Equal(utc(2025, 5, 14, 20, 0)))
}

func TestDayBuckets_FollowWallClockAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	w := NewWindower(NewDates(ny), FixedClock(utc(2025, 3, 9, 12, 0)))

	// Clocks jump from 02:00 to 03:00 on March 9 2025.
	win, err := w.ComputeWindow(domain.ModeDay, time.Date(2025, 3, 9, 12, 0, 0, 0, ny))
	require.NoError(t, err)
	early := item(domain.ItemShift, "early", time.Date(2025, 3, 9, 3, 30, 0, 0, ny))

	buckets := w.DayBuckets([]domain.ScheduleItem{early}, win)
	require.Len(t, buckets, 24)
	assert.Equal(t, 3, buckets[3].Start.Hour())
	assert.Equal(t, 18, buckets[18].Start.Hour())
	require.Len(t, buckets[3].Items, 1)
	assert.Equal(t, "early", buckets[3].Items[0].ID)
}

func TestWeekBuckets_SevenContiguousDays(t *testing.T) {
	w := newTestWindower(utc(2025, 5, 14, 0, 0))
	win, err := w.ComputeWindow(domain.ModeWeek, utc(2025, 5, 14, 0, 0))
	require.NoError(t, err)

	items := []domain.ScheduleItem{
		item(domain.ItemEvent, "sun", utc(2025, 5, 11, 8, 0)),
		item(domain.ItemEvent, "thu", utc(2025, 5, 15, 10, 0)),
		item(domain.ItemShift, "sat", utc(2025, 5, 17, 23, 0)),
	}

	buckets := w.WeekBuckets(items, win)
	require.Len(t, buckets, 7)
	for i, b := range buckets {
		assert.Equal(t, utc(2025, 5, 11+i, 0, 0), b.Date)
	}
	assert.Equal(t, "sun", buckets[0].Items[0].ID)
	assert.Equal(t, "thu", buckets[4].Items[0].ID)
	assert.Equal(t, "sat", buckets[6].Items[0].ID)
	assert.Empty(t, buckets[1].Items)
}

func TestItemKey_DistinguishesTypes(t *testing.T) {
	shift := item(domain.ItemShift, "1", utc(2025, 5, 14, 9, 0))
	event := item(domain.ItemEvent, "1", utc(2025, 5, 14, 9, 0))

	assert.Equal(t, "shift:1", shift.Key())
	assert.Equal(t, "event:1", event.Key())
	assert.NotEqual(t, shift.Key(), event.Key())
}
