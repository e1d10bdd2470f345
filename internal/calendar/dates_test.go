package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDates_DSTKeepsWallClock(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	d := NewDates(loc)

	// Clocks go forward on 2025-03-30.
	before := time.Date(2025, 3, 29, 9, 0, 0, 0, loc)
	after := d.AddDays(before, 1)
	assert.Equal(t, 9, after.Hour())
	assert.Equal(t, 23*time.Hour, after.Sub(before))

	days := d.EachDay(d.StartOfWeek(before), d.EndOfWeek(before))
	require.Len(t, days, 7)
	for _, day := range days {
		assert.Equal(t, 0, day.Hour())
	}
}

func TestDates_EndOfMonth(t *testing.T) {
	d := NewDates(time.UTC)
	cases := map[time.Month]int{time.February: 29, time.April: 30, time.December: 31}
	for m, last := range cases {
		end := d.EndOfMonth(time.Date(2024, m, 10, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, last, end.Day(), "month %s", m)
		assert.Equal(t, 23, end.Hour())
	}
}

func TestDates_NilLocationIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewDates(nil).Location())
}

func TestParseInstant(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	got, err := ParseInstant("2025-05-14T10:00:00Z", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC)))

	got, err = ParseInstant("2025-05-14T10:00", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 5, 14, 10, 0, 0, 0, loc)))

	got, err = ParseInstant(" 2025-05-14 ", loc)
	require.NoError(t, err)
	assert.Equal(t, 14, got.Day())

	for _, bad := range []string{"", "invalid-date-string", "2025-13-01", "14/05/2025"} {
		_, err := ParseInstant(bad, loc)
		assert.ErrorIs(t, err, ErrInvalidDateValue, "input %q", bad)
	}
}
