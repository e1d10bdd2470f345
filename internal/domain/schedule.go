package domain

import "time"

// ScheduleItem is the normalized, read-only view of a shift, event or task.
// IDs are only unique within their source collection; use Key for rendering.
type ScheduleItem struct {
	ID       string
	Name     string
	Type     ItemType
	Start    time.Time
	End      time.Time
	Location string

	// Display-only cross references.
	ProjectName string
	GroupName   string

	// Ticketing
	Price            *float64
	TicketsAvailable *int
}

// Key returns the composite render key "type:id".
func (s ScheduleItem) Key() string {
	return string(s.Type) + ":" + s.ID
}

// HasTickets reports whether the item should offer a "buy tickets" action.
func (s ScheduleItem) HasTickets() bool {
	return s.Price != nil && s.TicketsAvailable != nil && *s.TicketsAvailable > 0
}

// ViewWindow is the visible range for a view mode. It is derived on every
// navigation and never stored.
type ViewWindow struct {
	Mode  ViewMode
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies inside the window. Day windows are
// half-open; week, month and agenda windows include both bounds.
func (w ViewWindow) Contains(t time.Time) bool {
	if t.IsZero() || t.Before(w.Start) {
		return false
	}
	if w.Mode == ModeDay {
		return t.Before(w.End)
	}
	return !t.After(w.End)
}

// FilterState holds the category toggles and the free-text search query.
type FilterState struct {
	Categories  map[ItemType]bool
	SearchQuery string
}

// DefaultFilterState enables every category with an empty search.
func DefaultFilterState() FilterState {
	cats := make(map[ItemType]bool, len(AllItemTypes))
	for _, t := range AllItemTypes {
		cats[t] = true
	}
	return FilterState{Categories: cats}
}

// Toggle returns a copy of the state with category t flipped.
func (f FilterState) Toggle(t ItemType) FilterState {
	cats := make(map[ItemType]bool, len(f.Categories)+1)
	for k, v := range f.Categories {
		cats[k] = v
	}
	cats[t] = !cats[t]
	return FilterState{Categories: cats, SearchQuery: f.SearchQuery}
}

// WithSearch returns a copy of the state with the given query.
func (f FilterState) WithSearch(q string) FilterState {
	return FilterState{Categories: f.Categories, SearchQuery: q}
}
