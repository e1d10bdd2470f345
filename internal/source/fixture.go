package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

// Fixture is the YAML form of the source collections, used to seed the store
// and as an in-memory DataSource. Dates are kept verbatim.
type Fixture struct {
	Projects []NamedFixture `yaml:"projects"`
	Groups   []NamedFixture `yaml:"groups"`
	Shifts   []ShiftFixture `yaml:"shifts"`
	Events   []EventFixture `yaml:"events"`
	Tasks    []TaskFixture  `yaml:"tasks"`
}

type NamedFixture struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type TimeframeFixture struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	RRule string `yaml:"rrule,omitempty"`
}

type ShiftFixture struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	ProjectID string            `yaml:"project_id,omitempty"`
	Location  string            `yaml:"location,omitempty"`
	Assignees []string          `yaml:"assignees"`
	Timeframe *TimeframeFixture `yaml:"timeframe,omitempty"`
}

type EventFixture struct {
	ID               string            `yaml:"id"`
	Name             string            `yaml:"name"`
	Type             string            `yaml:"type,omitempty"`
	GroupID          string            `yaml:"group_id,omitempty"`
	ProjectID        string            `yaml:"project_id,omitempty"`
	Location         string            `yaml:"location,omitempty"`
	Timeframe        *TimeframeFixture `yaml:"timeframe,omitempty"`
	StartDate        string            `yaml:"start_date,omitempty"`
	EndDate          string            `yaml:"end_date,omitempty"`
	Price            *float64          `yaml:"price,omitempty"`
	TicketsAvailable *int              `yaml:"tickets_available,omitempty"`
	Participants     []string          `yaml:"participants"`
}

type TaskFixture struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Assignee  string `yaml:"assignee"`
	ProjectID string `yaml:"project_id,omitempty"`
	Location  string `yaml:"location,omitempty"`
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
}

// LoadFixture reads and parses a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFixture(data)
}

func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

func (tf *TimeframeFixture) record() *domain.Timeframe {
	if tf == nil {
		return nil
	}
	return &domain.Timeframe{Start: tf.Start, End: tf.End, Rule: tf.RRule}
}

func (s ShiftFixture) Record() domain.ShiftRecord {
	return domain.ShiftRecord{
		ID:        s.ID,
		Name:      s.Name,
		ProjectID: s.ProjectID,
		Location:  s.Location,
		Assignees: s.Assignees,
		Timeframe: s.Timeframe.record(),
	}
}

// Record converts the fixture; a missing type means "event".
func (e EventFixture) Record() domain.EventRecord {
	return domain.EventRecord{
		ID:               e.ID,
		Name:             e.Name,
		Kind:             domain.CoalesceStr(e.Type, domain.RecordKindEvent),
		GroupID:          e.GroupID,
		ProjectID:        e.ProjectID,
		Location:         e.Location,
		Timeframe:        e.Timeframe.record(),
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		Price:            e.Price,
		TicketsAvailable: e.TicketsAvailable,
		Participants:     e.Participants,
	}
}

func (t TaskFixture) Record() domain.TaskRecord {
	return domain.TaskRecord{
		ID:        t.ID,
		Name:      t.Name,
		ProjectID: t.ProjectID,
		Location:  t.Location,
		Start:     t.Start,
		End:       t.End,
	}
}

// Names builds the project and group name index.
func (f *Fixture) Names() domain.NameIndex {
	idx := domain.NameIndex{
		Projects: make(map[string]string, len(f.Projects)),
		Groups:   make(map[string]string, len(f.Groups)),
	}
	for _, p := range f.Projects {
		idx.Projects[p.ID] = p.Name
	}
	for _, g := range f.Groups {
		idx.Groups[g.ID] = g.Name
	}
	return idx
}
