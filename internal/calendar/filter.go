package calendar

import (
	"strings"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

// Filter keeps items whose type is enabled in state and, when a query is set,
// whose name, project, group or location contains it case-insensitively.
// The input slice is not modified and order is preserved.
func Filter(items []domain.ScheduleItem, state domain.FilterState) []domain.ScheduleItem {
	query := strings.ToLower(strings.TrimSpace(state.SearchQuery))

	out := make([]domain.ScheduleItem, 0, len(items))
	for _, item := range items {
		if !state.Categories[item.Type] {
			continue
		}
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// matchesQuery expects query to be lowercased already. Empty fields never match.
func matchesQuery(item domain.ScheduleItem, query string) bool {
	for _, field := range []string{item.Name, item.ProjectName, item.GroupName, item.Location} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
