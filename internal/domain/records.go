package domain

// Raw source records. Dates are kept as the strings the source supplied so that
// invalid values reach the normalizer, which is the only place they are parsed.

// Timeframe is the nested start/end object used by shifts and newer events.
// Rule is an optional RRULE for recurring shifts.
type Timeframe struct {
	Start string
	End   string
	Rule  string
}

type ShiftRecord struct {
	ID        string
	Name      string
	ProjectID string
	Location  string
	Assignees []string
	Timeframe *Timeframe
}

// AssignedTo reports whether userID is in the shift's assignment list.
func (s ShiftRecord) AssignedTo(userID string) bool {
	for _, a := range s.Assignees {
		if a == userID {
			return true
		}
	}
	return false
}

// EventRecord mirrors the events collection, which also holds projects. Older
// records carry flat StartDate/EndDate instead of a Timeframe.
type EventRecord struct {
	ID        string
	Name      string
	Kind      string
	GroupID   string
	ProjectID string
	Location  string
	Timeframe *Timeframe
	StartDate string
	EndDate   string

	Price            *float64
	TicketsAvailable *int
	Participants     []string
}

type TaskRecord struct {
	ID        string
	Name      string
	ProjectID string
	Location  string
	Start     string
	End       string
}

// NameIndex resolves project and group ids to display names. References are not
// checked for integrity; a dangling id resolves to UnknownRef.
type NameIndex struct {
	Projects map[string]string
	Groups   map[string]string
}

// ProjectName returns the display name for id, "" when id is empty.
func (n NameIndex) ProjectName(id string) string {
	return resolveRef(n.Projects, id)
}

// GroupName returns the display name for id, "" when id is empty.
func (n NameIndex) GroupName(id string) string {
	return resolveRef(n.Groups, id)
}

func resolveRef(names map[string]string, id string) string {
	if id == "" {
		return ""
	}
	return CoalesceStr(names[id], UnknownRef)
}
