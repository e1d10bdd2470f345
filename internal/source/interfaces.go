package source

import (
	"context"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

type ShiftSource interface {
	// ShiftsForUser returns shifts the user is assigned to, each with its
	// full assignee list, in insertion order.
	ShiftsForUser(ctx context.Context, userID string) ([]domain.ShiftRecord, error)
}

type EventSource interface {
	// EventsWhereUserInvolved returns records the user participates in. The
	// collection may contain non-event kinds; callers filter on Kind.
	EventsWhereUserInvolved(ctx context.Context, userID string) ([]domain.EventRecord, error)
}

type TaskProvider interface {
	TasksForUser(ctx context.Context, userID string) ([]domain.TaskRecord, error)
}

type Directory interface {
	Names(ctx context.Context) (domain.NameIndex, error)
}

// DataSource supplies every collection the calendar aggregates.
type DataSource interface {
	ShiftSource
	EventSource
	TaskProvider
	Directory
}
