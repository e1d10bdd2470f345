package calendar

import (
	"fmt"
	"time"
)

// InvalidTimeLabel is shown in place of a time range that cannot be rendered.
const InvalidTimeLabel = "Invalid time"

// FormatSpan renders the duration between start and end as "1h 30m".
// A zero or negative span renders as "" and an invalid instant as InvalidTimeLabel.
func FormatSpan(start, end time.Time) string {
	if start.IsZero() || end.IsZero() {
		return InvalidTimeLabel
	}
	d := end.Sub(start)
	if d <= 0 {
		return ""
	}
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	mins := int(d % time.Hour / time.Minute)

	switch {
	case days > 0 && hours > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// FormatTimeRange renders "15:04 – 15:04" in loc, or InvalidTimeLabel.
func FormatTimeRange(start, end time.Time, loc *time.Location) string {
	if start.IsZero() || end.IsZero() {
		return InvalidTimeLabel
	}
	if loc == nil {
		loc = time.UTC
	}
	return start.In(loc).Format("15:04") + " – " + end.In(loc).Format("15:04")
}
