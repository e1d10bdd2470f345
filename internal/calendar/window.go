package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

// AgendaDays is the length of the rolling agenda window.
const AgendaDays = 7

// Windower computes view windows and partitions items into them.
type Windower struct {
	dates   DateOps
	clock   Clock
	sixWeek bool
}

type WindowerOption func(*Windower)

// WithSixWeekGrid pads every month grid to 42 cells so its height is constant.
func WithSixWeekGrid(on bool) WindowerOption {
	return func(w *Windower) {
		w.sixWeek = on
	}
}

func NewWindower(dates DateOps, clock Clock, opts ...WindowerOption) *Windower {
	if dates == nil {
		dates = NewDates(time.UTC)
	}
	w := &Windower{dates: dates, clock: clockOrSystem(clock)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Dates exposes the windower's date arithmetic.
func (w *Windower) Dates() DateOps { return w.dates }

// Now returns the windower's current instant.
func (w *Windower) Now() time.Time { return w.clock.Now() }

// ComputeWindow returns the visible range for mode around anchor. The agenda
// window ignores anchor and always covers [now, now+7 days].
func (w *Windower) ComputeWindow(mode domain.ViewMode, anchor time.Time) (domain.ViewWindow, error) {
	if mode == domain.ModeAgenda {
		now := w.clock.Now().In(w.dates.Location())
		return domain.ViewWindow{Mode: mode, Start: now, End: w.dates.AddDays(now, AgendaDays)}, nil
	}
	if !domain.ValidViewModes[string(mode)] {
		return domain.ViewWindow{}, fmt.Errorf("computing window for %q: %w", mode, ErrUnknownViewMode)
	}
	if anchor.IsZero() {
		return domain.ViewWindow{}, fmt.Errorf("computing %s window: %w", mode, ErrInvalidAnchorDate)
	}

	switch mode {
	case domain.ModeDay:
		start := w.dates.StartOfDay(anchor)
		return domain.ViewWindow{Mode: mode, Start: start, End: w.dates.AddDays(start, 1)}, nil
	case domain.ModeWeek:
		return domain.ViewWindow{Mode: mode, Start: w.dates.StartOfWeek(anchor), End: w.dates.EndOfWeek(anchor)}, nil
	default:
		return domain.ViewWindow{Mode: mode, Start: w.dates.StartOfMonth(anchor), End: w.dates.EndOfMonth(anchor)}, nil
	}
}

// Partition returns the items whose start falls inside window. Items with a
// zero start are skipped. Agenda results are sorted by start; other modes keep
// the input order.
func Partition(items []domain.ScheduleItem, window domain.ViewWindow) []domain.ScheduleItem {
	out := make([]domain.ScheduleItem, 0, len(items))
	for _, item := range items {
		if window.Contains(item.Start) {
			out = append(out, item)
		}
	}
	if window.Mode == domain.ModeAgenda {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Start.Before(out[j].Start)
		})
	}
	return out
}

// HourBucket groups day-view items by start hour.
type HourBucket struct {
	Hour  int
	Start time.Time
	Items []domain.ScheduleItem
}

// DayBucket groups items by calendar day.
type DayBucket struct {
	Date  time.Time
	Items []domain.ScheduleItem
}

// DayBuckets partitions items into 24 hourly slots for a day window.
func (w *Windower) DayBuckets(items []domain.ScheduleItem, window domain.ViewWindow) []HourBucket {
	loc := w.dates.Location()
	day := window.Start.In(loc)
	buckets := make([]HourBucket, 24)
	for h := range buckets {
		buckets[h] = HourBucket{Hour: h, Start: time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, loc)}
	}
	for _, item := range Partition(items, window) {
		h := item.Start.In(loc).Hour()
		if h < 0 || h > 23 {
			continue
		}
		buckets[h].Items = append(buckets[h].Items, item)
	}
	return buckets
}

// WeekBuckets partitions items into the seven days of a week window.
func (w *Windower) WeekBuckets(items []domain.ScheduleItem, window domain.ViewWindow) []DayBucket {
	days := w.dates.EachDay(window.Start, window.End)
	return w.bucketByDay(days, Partition(items, window))
}

// bucketByDay assigns each item to the day sharing its start date. Items
// matching no day are ignored.
func (w *Windower) bucketByDay(days []time.Time, items []domain.ScheduleItem) []DayBucket {
	loc := w.dates.Location()
	buckets := make([]DayBucket, len(days))
	index := make(map[string]int, len(days))
	for i, d := range days {
		buckets[i] = DayBucket{Date: d}
		index[dayKey(d, loc)] = i
	}
	for _, item := range items {
		if i, ok := index[dayKey(item.Start, loc)]; ok {
			buckets[i].Items = append(buckets[i].Items, item)
		}
	}
	return buckets
}

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}
