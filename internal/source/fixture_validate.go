package source

import "fmt"

// ValidateFixture checks structural problems only: names, duplicate ids and
// assignees. Date values are deliberately not checked; invalid dates are
// the normalizer's concern. Empty ids are allowed and assigned on seeding.
func ValidateFixture(f *Fixture) []error {
	var errs []error

	errs = append(errs, validateNamed("projects", f.Projects)...)
	errs = append(errs, validateNamed("groups", f.Groups)...)

	seen := make(map[string]bool)
	for i, s := range f.Shifts {
		field := fmt.Sprintf("shifts[%d]", i)
		errs = append(errs, checkID(field, s.ID, seen)...)
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", field))
		}
		if len(s.Assignees) == 0 {
			errs = append(errs, fmt.Errorf("%s.assignees must list at least one user", field))
		}
	}

	seen = make(map[string]bool)
	for i, e := range f.Events {
		field := fmt.Sprintf("events[%d]", i)
		errs = append(errs, checkID(field, e.ID, seen)...)
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", field))
		}
		if e.TicketsAvailable != nil && *e.TicketsAvailable < 0 {
			errs = append(errs, fmt.Errorf("%s.tickets_available must not be negative", field))
		}
		if e.Price != nil && *e.Price < 0 {
			errs = append(errs, fmt.Errorf("%s.price must not be negative", field))
		}
	}

	seen = make(map[string]bool)
	for i, t := range f.Tasks {
		field := fmt.Sprintf("tasks[%d]", i)
		errs = append(errs, checkID(field, t.ID, seen)...)
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", field))
		}
		if t.Assignee == "" {
			errs = append(errs, fmt.Errorf("%s.assignee is required", field))
		}
	}

	return errs
}

func validateNamed(collection string, items []NamedFixture) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, n := range items {
		field := fmt.Sprintf("%s[%d]", collection, i)
		if n.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", field))
		}
		errs = append(errs, checkID(field, n.ID, seen)...)
		if n.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", field))
		}
	}
	return errs
}

func checkID(field, id string, seen map[string]bool) []error {
	if id == "" {
		return nil
	}
	if seen[id] {
		return []error{fmt.Errorf("%s.id %q is duplicated", field, id)}
	}
	seen[id] = true
	return nil
}
