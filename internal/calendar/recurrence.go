package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

const (
	// maxOccurrencesPerShift caps expansion of a single recurring shift.
	maxOccurrencesPerShift = 500

	// maxSkippedOccurrences bounds the walk from a rule's first occurrence up
	// to the start of the horizon.
	maxSkippedOccurrences = 100_000
)

// expandRecurring turns a shift with an RRULE into one item per occurrence
// starting within now±horizon. Each occurrence keeps the base duration and gets
// the id "<shift id>@<YYYYMMDD>", or "<shift id>@<YYYYMMDDThhmmss>" for rules
// that repeat more than once a day.
func (n *Normalizer) expandRecurring(base domain.ScheduleItem, rule string, start, end, now time.Time) ([]domain.ScheduleItem, error) {
	r, err := rrule.StrToRRule(strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:"))
	if err != nil {
		return nil, fmt.Errorf("parsing recurrence rule %q: %v: %w", rule, err, ErrInvalidDateValue)
	}
	r.DTStart(start)

	idLayout := "20060102"
	switch r.OrigOptions.Freq {
	case rrule.HOURLY, rrule.MINUTELY, rrule.SECONDLY:
		idLayout = "20060102T150405"
	}

	from, until := now.Add(-n.horizon), now.Add(n.horizon)
	dur := end.Sub(start)
	skipped := 0

	var items []domain.ScheduleItem
	next := r.Iterator()
	for occ, ok := next(); ok; occ, ok = next() {
		if occ.After(until) {
			break
		}
		if occ.Before(from) {
			skipped++
			if skipped >= maxSkippedOccurrences {
				n.logger.Warn("abandoning recurring shift before horizon",
					"record_id", base.ID,
					"skipped", skipped,
				)
				break
			}
			continue
		}
		if len(items) == maxOccurrencesPerShift {
			n.logger.Warn("truncating recurring shift",
				"record_id", base.ID,
				"cap", maxOccurrencesPerShift,
			)
			break
		}
		item := base
		item.ID = base.ID + "@" + occ.In(n.loc).Format(idLayout)
		item.Start = occ
		item.End = occ.Add(dur)
		items = append(items, item)
	}
	return items, nil
}
