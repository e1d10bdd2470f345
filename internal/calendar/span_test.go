package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSpan(t *testing.T) {
	start := utc(2025, 5, 14, 9, 0)
	tests := []struct {
		name string
		end  time.Time
		want string
	}{
		{"minutes", start.Add(45 * time.Minute), "45m"},
		{"hours and minutes", start.Add(90 * time.Minute), "1h 30m"},
		{"whole hours", start.Add(2 * time.Hour), "2h"},
		{"days", start.Add(48 * time.Hour), "2d"},
		{"days and hours", start.Add(27 * time.Hour), "1d 3h"},
		{"zero span", start, ""},
		{"negative span", start.Add(-time.Hour), ""},
		{"invalid end", time.Time{}, InvalidTimeLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSpan(start, tt.end))
		})
	}
}

func TestFormatTimeRange(t *testing.T) {
	assert.Equal(t, "09:00 – 10:30", FormatTimeRange(utc(2025, 5, 14, 9, 0), utc(2025, 5, 14, 10, 30), nil))
	assert.Equal(t, InvalidTimeLabel, FormatTimeRange(time.Time{}, utc(2025, 5, 14, 10, 30), time.UTC))
}

func TestRoutes(t *testing.T) {
	var r LinkResolver = Routes{}
	assert.Equal(t, "/events/1", r.ResolveLink("event", "1"))
	assert.Equal(t, "/shifts/1", r.ResolveLink("shift", "1"))
	assert.Equal(t, "/tasks/a%2Fb", r.ResolveLink("task", "a/b"))
	assert.Empty(t, r.ResolveLink("poll", "1"))
}
