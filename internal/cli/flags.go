package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

// modeValue is a pflag.Value accepting day, week, month or agenda.
type modeValue domain.ViewMode

var _ pflag.Value = (*modeValue)(nil)

func (m *modeValue) String() string { return string(*m) }

func (m *modeValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidViewModes[s] {
		return fmt.Errorf("invalid mode %q (want day, week, month or agenda)", s)
	}
	*m = modeValue(s)
	return nil
}

func (m *modeValue) Type() string { return "mode" }

func (m modeValue) viewMode() domain.ViewMode { return domain.ViewMode(m) }

// typesValue is a pflag.Value holding a comma-separated set of item types.
// An unset value means every type.
type typesValue struct {
	set map[domain.ItemType]bool
}

var _ pflag.Value = (*typesValue)(nil)

func (v *typesValue) String() string {
	if v.set == nil {
		return ""
	}
	names := make([]string, 0, len(v.set))
	for t, on := range v.set {
		if on {
			names = append(names, string(t))
		}
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

func (v *typesValue) Set(s string) error {
	set := make(map[domain.ItemType]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		part = strings.TrimSuffix(part, "s")
		if !domain.ValidItemTypes[part] {
			return fmt.Errorf("invalid item type %q (want event, shift or task)", part)
		}
		set[domain.ItemType(part)] = true
	}
	v.set = set
	return nil
}

func (v *typesValue) Type() string { return "types" }

// filterState returns the categories as a full toggle map.
func (v *typesValue) filterState() domain.FilterState {
	state := domain.DefaultFilterState()
	if v.set == nil {
		return state
	}
	for _, t := range domain.AllItemTypes {
		state.Categories[t] = v.set[t]
	}
	return state
}
