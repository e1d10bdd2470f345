package app

import (
	"time"

	"github.com/alexanderramin/chapterhub/internal/calendar"
	"github.com/alexanderramin/chapterhub/internal/domain"
)

type CalendarRequest struct {
	UserID string
	Mode   domain.ViewMode
	// Anchor is ignored in agenda mode.
	Anchor time.Time
	// A nil Categories map means every type is visible.
	Filter domain.FilterState
}

func NewCalendarRequest(userID string, mode domain.ViewMode, anchor time.Time) CalendarRequest {
	return CalendarRequest{
		UserID: userID,
		Mode:   mode,
		Anchor: anchor,
		Filter: domain.DefaultFilterState(),
	}
}

// CalendarResponse is one computed view. Exactly one of Hours, Days, Grid is
// set for day, week and month modes; agenda uses Items only.
type CalendarResponse struct {
	GeneratedAt time.Time
	Window      domain.ViewWindow
	// Items are the filtered items inside the window.
	Items []domain.ScheduleItem
	Hours []calendar.HourBucket
	Days  []calendar.DayBucket
	Grid  *calendar.MonthGrid
	// Links maps item keys (type:id) to detail routes.
	Links   map[string]string
	Dropped []calendar.Diagnostic
}

type ItemRequest struct {
	UserID string
	// Key is the composite type:id key of the item.
	Key string
}

type ItemDetail struct {
	Item      domain.ScheduleItem
	Link      string
	Span      string
	TimeRange string
}

type SeedRequest struct {
	Path string
}

type SeedResponse struct {
	Projects int
	Groups   int
	Shifts   int
	Events   int
	Tasks    int
}
