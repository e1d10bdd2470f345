package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/chapterhub/internal/source"
)

// Timeframe formats start and end as RFC 3339.
func Timeframe(start, end time.Time) *source.TimeframeFixture {
	return &source.TimeframeFixture{
		Start: start.Format(time.RFC3339),
		End:   end.Format(time.RFC3339),
	}
}

// Shift options
type ShiftOption func(*source.ShiftFixture)

func WithShiftID(id string) ShiftOption {
	return func(s *source.ShiftFixture) {
		s.ID = id
	}
}

func WithShiftTime(start, end time.Time) ShiftOption {
	return func(s *source.ShiftFixture) {
		s.Timeframe = Timeframe(start, end)
	}
}

func WithShiftRule(rule string) ShiftOption {
	return func(s *source.ShiftFixture) {
		if s.Timeframe == nil {
			s.Timeframe = &source.TimeframeFixture{}
		}
		s.Timeframe.RRule = rule
	}
}

func WithShiftProject(id string) ShiftOption {
	return func(s *source.ShiftFixture) {
		s.ProjectID = id
	}
}

func WithShiftLocation(loc string) ShiftOption {
	return func(s *source.ShiftFixture) {
		s.Location = loc
	}
}

func WithAssignees(users ...string) ShiftOption {
	return func(s *source.ShiftFixture) {
		s.Assignees = users
	}
}

func WithoutTimeframe() ShiftOption {
	return func(s *source.ShiftFixture) {
		s.Timeframe = nil
	}
}

// NewTestShift returns a one-hour shift at 09:00 UTC on 2025-05-14 assigned
// to userID.
func NewTestShift(name, userID string, opts ...ShiftOption) source.ShiftFixture {
	start := time.Date(2025, 5, 14, 9, 0, 0, 0, time.UTC)
	s := source.ShiftFixture{
		ID:        uuid.New().String(),
		Name:      name,
		Assignees: []string{userID},
		Timeframe: Timeframe(start, start.Add(time.Hour)),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Event options
type EventOption func(*source.EventFixture)

func WithEventID(id string) EventOption {
	return func(e *source.EventFixture) {
		e.ID = id
	}
}

func WithEventType(kind string) EventOption {
	return func(e *source.EventFixture) {
		e.Type = kind
	}
}

func WithEventTime(start, end time.Time) EventOption {
	return func(e *source.EventFixture) {
		e.Timeframe = Timeframe(start, end)
	}
}

// WithEventDates replaces the timeframe with the fallback date fields.
func WithEventDates(start, end string) EventOption {
	return func(e *source.EventFixture) {
		e.Timeframe = nil
		e.StartDate = start
		e.EndDate = end
	}
}

func WithEventGroup(id string) EventOption {
	return func(e *source.EventFixture) {
		e.GroupID = id
	}
}

func WithEventProject(id string) EventOption {
	return func(e *source.EventFixture) {
		e.ProjectID = id
	}
}

func WithPrice(p float64) EventOption {
	return func(e *source.EventFixture) {
		e.Price = &p
	}
}

func WithTickets(n int) EventOption {
	return func(e *source.EventFixture) {
		e.TicketsAvailable = &n
	}
}

func WithParticipants(users ...string) EventOption {
	return func(e *source.EventFixture) {
		e.Participants = users
	}
}

// NewTestEvent returns a two-hour event at 18:00 UTC on 2025-05-14 with
// userID as the only participant.
func NewTestEvent(name, userID string, opts ...EventOption) source.EventFixture {
	start := time.Date(2025, 5, 14, 18, 0, 0, 0, time.UTC)
	e := source.EventFixture{
		ID:           uuid.New().String(),
		Name:         name,
		Type:         "event",
		Participants: []string{userID},
		Timeframe:    Timeframe(start, start.Add(2*time.Hour)),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Task options
type TaskOption func(*source.TaskFixture)

func WithTaskID(id string) TaskOption {
	return func(t *source.TaskFixture) {
		t.ID = id
	}
}

func WithTaskTime(start, end time.Time) TaskOption {
	return func(t *source.TaskFixture) {
		t.Start = start.Format(time.RFC3339)
		t.End = end.Format(time.RFC3339)
	}
}

func WithTaskRaw(start, end string) TaskOption {
	return func(t *source.TaskFixture) {
		t.Start = start
		t.End = end
	}
}

func WithTaskProject(id string) TaskOption {
	return func(t *source.TaskFixture) {
		t.ProjectID = id
	}
}

// NewTestTask returns a 30 minute task at 12:00 UTC on 2025-05-15.
func NewTestTask(name, userID string, opts ...TaskOption) source.TaskFixture {
	start := time.Date(2025, 5, 15, 12, 0, 0, 0, time.UTC)
	t := source.TaskFixture{
		ID:       uuid.New().String(),
		Name:     name,
		Assignee: userID,
		Start:    start.Format(time.RFC3339),
		End:      start.Add(30 * time.Minute).Format(time.RFC3339),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
