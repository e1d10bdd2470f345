package calendar

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

const defaultRecurrenceHorizon = 90 * 24 * time.Hour

// Records is everything the normalizer needs for one user, as loaded from the
// data source.
type Records struct {
	Shifts []domain.ShiftRecord
	Events []domain.EventRecord
	Tasks  []domain.TaskRecord
	Names  domain.NameIndex
}

// Diagnostic describes a record that was excluded during normalization.
type Diagnostic struct {
	Source   domain.ItemType
	RecordID string
	Err      error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s %q: %v", d.Source, d.RecordID, d.Err)
}

func (d Diagnostic) Unwrap() error { return d.Err }

// NormalizeResult holds the normalized items in insertion order (shifts,
// events, tasks) and a diagnostic per dropped record.
type NormalizeResult struct {
	Items   []domain.ScheduleItem
	Dropped []Diagnostic
}

// Normalizer converts raw source records into ScheduleItems.
type Normalizer struct {
	clock   Clock
	loc     *time.Location
	logger  *slog.Logger
	horizon time.Duration
}

type NormalizerOption func(*Normalizer)

// WithLogger sets the logger that receives a warning per dropped record.
func WithLogger(l *slog.Logger) NormalizerOption {
	return func(n *Normalizer) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithLocation sets the zone used for date strings without an offset.
func WithLocation(loc *time.Location) NormalizerOption {
	return func(n *Normalizer) {
		if loc != nil {
			n.loc = loc
		}
	}
}

// WithRecurrenceHorizon bounds recurring shift expansion to now±h.
func WithRecurrenceHorizon(h time.Duration) NormalizerOption {
	return func(n *Normalizer) {
		if h > 0 {
			n.horizon = h
		}
	}
}

func NewNormalizer(clock Clock, opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		clock:   clockOrSystem(clock),
		loc:     time.UTC,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		horizon: defaultRecurrenceHorizon,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize never fails: records that cannot produce valid instants are
// dropped and reported in NormalizeResult.Dropped.
func (n *Normalizer) Normalize(userID string, recs Records) NormalizeResult {
	var res NormalizeResult
	now := n.clock.Now()

	for _, s := range recs.Shifts {
		if !s.AssignedTo(userID) {
			continue
		}
		items, err := n.shiftItems(s, recs.Names, now)
		if err != nil {
			n.drop(&res, domain.ItemShift, s.ID, err)
			continue
		}
		res.Items = append(res.Items, items...)
	}

	for _, e := range recs.Events {
		if e.Kind != domain.RecordKindEvent {
			continue
		}
		item, err := n.eventItem(e, recs.Names)
		if err != nil {
			n.drop(&res, domain.ItemEvent, e.ID, err)
			continue
		}
		res.Items = append(res.Items, item)
	}

	for _, t := range recs.Tasks {
		start, end, err := parseRange(t.Start, t.End, n.loc)
		if err != nil {
			n.drop(&res, domain.ItemTask, t.ID, err)
			continue
		}
		res.Items = append(res.Items, domain.ScheduleItem{
			ID:          t.ID,
			Name:        t.Name,
			Type:        domain.ItemTask,
			Start:       start,
			End:         end,
			Location:    t.Location,
			ProjectName: recs.Names.ProjectName(t.ProjectID),
		})
	}

	return res
}

// shiftItems resolves a shift's timeframe. A shift without a timeframe is
// placed at the current instant.
func (n *Normalizer) shiftItems(s domain.ShiftRecord, names domain.NameIndex, now time.Time) ([]domain.ScheduleItem, error) {
	base := domain.ScheduleItem{
		ID:          s.ID,
		Name:        s.Name,
		Type:        domain.ItemShift,
		Location:    s.Location,
		ProjectName: names.ProjectName(s.ProjectID),
	}
	if s.Timeframe == nil {
		base.Start, base.End = now, now
		return []domain.ScheduleItem{base}, nil
	}

	start, end, err := parseRange(s.Timeframe.Start, s.Timeframe.End, n.loc)
	if err != nil {
		return nil, err
	}
	if s.Timeframe.Rule != "" {
		return n.expandRecurring(base, s.Timeframe.Rule, start, end, now)
	}
	base.Start, base.End = start, end
	return []domain.ScheduleItem{base}, nil
}

// eventItem prefers the nested timeframe and falls back to the flat dates.
// Unlike shifts, an event with no dates at all is dropped.
func (n *Normalizer) eventItem(e domain.EventRecord, names domain.NameIndex) (domain.ScheduleItem, error) {
	var startRaw, endRaw string
	switch {
	case e.Timeframe != nil:
		startRaw, endRaw = e.Timeframe.Start, e.Timeframe.End
	case e.StartDate != "" || e.EndDate != "":
		startRaw, endRaw = e.StartDate, e.EndDate
	default:
		return domain.ScheduleItem{}, fmt.Errorf("no timeframe or start/end dates: %w", ErrMalformedScheduleRecord)
	}

	start, end, err := parseRange(startRaw, endRaw, n.loc)
	if err != nil {
		return domain.ScheduleItem{}, err
	}
	return domain.ScheduleItem{
		ID:               e.ID,
		Name:             e.Name,
		Type:             domain.ItemEvent,
		Start:            start,
		End:              end,
		Location:         e.Location,
		ProjectName:      names.ProjectName(e.ProjectID),
		GroupName:        names.GroupName(e.GroupID),
		Price:            e.Price,
		TicketsAvailable: e.TicketsAvailable,
	}, nil
}

func (n *Normalizer) drop(res *NormalizeResult, source domain.ItemType, id string, err error) {
	d := Diagnostic{Source: source, RecordID: id, Err: err}
	res.Dropped = append(res.Dropped, d)
	n.logger.Warn("dropping schedule record",
		"source", string(source),
		"record_id", id,
		"error", err.Error(),
	)
}
