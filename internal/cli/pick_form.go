package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/chapterhub/internal/cli/formatter"
	"github.com/alexanderramin/chapterhub/internal/domain"
)

// huhTheme matches the formatter palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// categoryForm asks which item types to show; selected is prefilled from the
// current state.
func categoryForm(selected *[]domain.ItemType) *huh.Form {
	options := make([]huh.Option[domain.ItemType], 0, len(domain.AllItemTypes))
	for _, t := range domain.AllItemTypes {
		options = append(options, huh.NewOption(string(t)+"s", t))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[domain.ItemType]().
				Title("Show which items?").
				Options(options...).
				Value(selected),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

// pickCategories runs categoryForm and returns a state with exactly the
// chosen types enabled.
func pickCategories(current domain.FilterState) (domain.FilterState, error) {
	var selected []domain.ItemType
	for _, t := range domain.AllItemTypes {
		if current.Categories[t] {
			selected = append(selected, t)
		}
	}
	if err := categoryForm(&selected).Run(); err != nil {
		return current, err
	}
	return selectionState(current, selected), nil
}

func selectionState(current domain.FilterState, selected []domain.ItemType) domain.FilterState {
	state := domain.DefaultFilterState().WithSearch(current.SearchQuery)
	for _, t := range domain.AllItemTypes {
		state.Categories[t] = false
	}
	for _, t := range selected {
		state.Categories[t] = true
	}
	return state
}
