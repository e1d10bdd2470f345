package source

import (
	"context"
	"slices"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

// FixtureSource serves a parsed fixture directly, without a database.
type FixtureSource struct {
	fixture *Fixture
}

func NewFixtureSource(f *Fixture) *FixtureSource {
	if f == nil {
		f = &Fixture{}
	}
	return &FixtureSource{fixture: f}
}

var _ DataSource = (*FixtureSource)(nil)

func (s *FixtureSource) ShiftsForUser(_ context.Context, userID string) ([]domain.ShiftRecord, error) {
	var out []domain.ShiftRecord
	for _, sh := range s.fixture.Shifts {
		if slices.Contains(sh.Assignees, userID) {
			out = append(out, sh.Record())
		}
	}
	return out, nil
}

func (s *FixtureSource) EventsWhereUserInvolved(_ context.Context, userID string) ([]domain.EventRecord, error) {
	var out []domain.EventRecord
	for _, e := range s.fixture.Events {
		if slices.Contains(e.Participants, userID) {
			out = append(out, e.Record())
		}
	}
	return out, nil
}

func (s *FixtureSource) TasksForUser(_ context.Context, userID string) ([]domain.TaskRecord, error) {
	var out []domain.TaskRecord
	for _, t := range s.fixture.Tasks {
		if t.Assignee == userID {
			out = append(out, t.Record())
		}
	}
	return out, nil
}

func (s *FixtureSource) Names(context.Context) (domain.NameIndex, error) {
	return s.fixture.Names(), nil
}
