package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/chapterhub/internal/calendar"
	"github.com/alexanderramin/chapterhub/internal/domain"
	"github.com/alexanderramin/chapterhub/internal/teatest"
)

func newBrowseDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	return teatest.New(t, newBrowseModel(testApp(t), domain.ModeWeek), teatest.WithSize(120, 40))
}

func browseState(d *teatest.Driver) *browseModel {
	return d.Model.(*browseModel)
}

func TestBrowse_InitialWeek(t *testing.T) {
	d := newBrowseDriver(t)

	m := browseState(d)
	require.NotNil(t, m.resp)
	assert.Equal(t, domain.ModeWeek, m.resp.Window.Mode)

	view := d.View()
	assert.Contains(t, view, "[x] events")
	assert.Contains(t, view, "Front desk")
	assert.Contains(t, view, "quit")
}

func TestBrowse_NavigateAndReturnToday(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressKey('l')
	m := browseState(d)
	assert.Equal(t, time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC), m.resp.Window.Start)
	assert.NotContains(t, d.View(), "Front desk")

	d.PressKey('h')
	d.PressKey('h')
	assert.Equal(t, time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC), browseState(d).resp.Window.Start)

	d.PressKey('t')
	assert.Equal(t, time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC), browseState(d).resp.Window.Start)
	assert.Contains(t, d.View(), "Front desk")
}

func TestBrowse_SwitchModes(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressKey('d')
	assert.Equal(t, domain.ModeDay, browseState(d).resp.Window.Mode)
	assert.Contains(t, d.View(), "WEDNESDAY, MAY 14 2025")

	d.PressKey('m')
	assert.Contains(t, d.View(), "MAY 2025")

	d.PressKey('a')
	assert.Equal(t, domain.ModeAgenda, browseState(d).resp.Window.Mode)
	anchor := browseState(d).cursor.Anchor
	d.PressKey('l')
	assert.Equal(t, anchor, browseState(d).cursor.Anchor, "agenda does not navigate")
}

func TestBrowse_MonthNavigationClamps(t *testing.T) {
	d := newBrowseDriver(t)
	m := browseState(d)
	m.cursor.Anchor = time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	d.PressKey('m')
	d.PressKey('l')
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), browseState(d).cursor.Anchor)
}

func TestBrowse_ToggleCategories(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressKey('2')
	view := d.View()
	assert.Contains(t, view, "[ ] shifts")
	assert.NotContains(t, view, "Front desk")
	assert.Contains(t, view, "Spring gala")

	d.PressKey('2')
	assert.Contains(t, d.View(), "Front desk")
}

func TestBrowse_LiveSearch(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressKey('/')
	require.True(t, browseState(d).searching)
	d.Type("gala")

	m := browseState(d)
	assert.Equal(t, "gala", m.filter.SearchQuery)
	assert.Equal(t, []string{"event:e-gala"}, keysOf(m.resp.Items))

	d.PressKey('q')
	assert.False(t, d.Quitting, "q is typed into the search box")
	d.PressBackspace()

	d.PressEnter()
	assert.False(t, browseState(d).searching)
	assert.Contains(t, d.View(), `search: "gala"`)

	d.PressKey('/')
	d.PressEsc()
	m = browseState(d)
	assert.Empty(t, m.filter.SearchQuery)
	assert.Len(t, m.resp.Items, 3)
}

func TestBrowse_Quit(t *testing.T) {
	d := newBrowseDriver(t)
	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestBrowse_IgnoresStaleResults(t *testing.T) {
	d := newBrowseDriver(t)
	m := browseState(d)
	current := m.resp

	d.Send(viewLoadedMsg{seq: m.seq - 1, err: errors.New("old")})
	assert.Same(t, current, browseState(d).resp)
	assert.NoError(t, browseState(d).err)
}

func TestBrowse_ShowsErrors(t *testing.T) {
	d := newBrowseDriver(t)
	m := browseState(d)
	m.cursor.Anchor = time.Time{}

	d.PressKey('l')
	assert.ErrorIs(t, browseState(d).err, calendar.ErrInvalidAnchorDate)
	assert.Contains(t, d.View(), "Error:")
}

func keysOf(items []domain.ScheduleItem) []string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.Key()
	}
	return keys
}
