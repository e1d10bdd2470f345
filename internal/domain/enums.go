package domain

// ItemType tags a ScheduleItem with the collection it came from.
type ItemType string

const (
	ItemEvent ItemType = "event"
	ItemShift ItemType = "shift"
	ItemTask  ItemType = "task"
)

// AllItemTypes lists every item type in display order.
var AllItemTypes = []ItemType{ItemEvent, ItemShift, ItemTask}

// ValidItemTypes is the canonical set of accepted item type strings.
var ValidItemTypes = map[string]bool{
	"event": true, "shift": true, "task": true,
}

type ViewMode string

const (
	ModeDay    ViewMode = "day"
	ModeWeek   ViewMode = "week"
	ModeMonth  ViewMode = "month"
	ModeAgenda ViewMode = "agenda"
)

// ValidViewModes is the canonical set of accepted view mode strings.
var ValidViewModes = map[string]bool{
	"day": true, "week": true, "month": true, "agenda": true,
}

// RecordKindEvent is the only record type value accepted from the events collection.
// The collection also carries projects and groups that share its shape.
const RecordKindEvent = "event"

// UnknownRef is displayed for a project or group reference that does not resolve.
const UnknownRef = "Unknown"
