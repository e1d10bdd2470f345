package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/chapterhub/internal/app"
	"github.com/alexanderramin/chapterhub/internal/calendar"
	"github.com/alexanderramin/chapterhub/internal/cli/formatter"
	"github.com/alexanderramin/chapterhub/internal/domain"
)

type browseKeys struct {
	Prev, Next, Today        key.Binding
	Day, Week, Month, Agenda key.Binding
	Search                   key.Binding
	Events, Shifts, Tasks    key.Binding
	Quit                     key.Binding
}

func defaultBrowseKeys() browseKeys {
	return browseKeys{
		Prev:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "prev")),
		Next:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "next")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Day:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
		Week:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week")),
		Month:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month")),
		Agenda: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "agenda")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Events: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "events")),
		Shifts: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "shifts")),
		Tasks:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "tasks")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeys) help() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Day, k.Week, k.Month, k.Agenda, k.Search, k.Events, k.Shifts, k.Tasks, k.Quit}
}

// viewLoadedMsg carries the result of one calendar recomputation. seq lets
// the model ignore results that a newer request has superseded.
type viewLoadedMsg struct {
	seq  int
	resp *app.CalendarResponse
	err  error
}

// browseModel is the interactive calendar. It owns the cursor and filter
// state; everything shown is recomputed from them on each change.
type browseModel struct {
	app    *App
	cursor *calendar.Cursor
	filter domain.FilterState
	keys   browseKeys

	search    textinput.Model
	searching bool

	seq  int
	resp *app.CalendarResponse
	err  error

	width, height int
}

func newBrowseModel(a *App, mode domain.ViewMode) *browseModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search name, project, group, location"
	ti.CharLimit = 80

	return &browseModel{
		app:    a,
		cursor: calendar.NewCursor(a.Windower, mode),
		filter: domain.DefaultFilterState(),
		keys:   defaultBrowseKeys(),
		search: ti,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load()
}

// load snapshots the cursor and filter into a request.
func (m *browseModel) load() tea.Cmd {
	m.seq++
	seq := m.seq
	req := app.NewCalendarRequest(m.app.UserID, m.cursor.Mode, m.cursor.Anchor)
	req.Filter = m.filter
	uc := m.app.Calendar
	return func() tea.Msg {
		resp, err := uc.View(context.Background(), req)
		return viewLoadedMsg{seq: seq, resp: resp, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case viewLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.resp, m.err = msg.resp, msg.err
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *browseModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		err = m.cursor.Prev()
	case key.Matches(msg, m.keys.Next):
		err = m.cursor.Next()
	case key.Matches(msg, m.keys.Today):
		m.cursor.Today()
	case key.Matches(msg, m.keys.Day):
		err = m.cursor.SetMode(domain.ModeDay)
	case key.Matches(msg, m.keys.Week):
		err = m.cursor.SetMode(domain.ModeWeek)
	case key.Matches(msg, m.keys.Month):
		err = m.cursor.SetMode(domain.ModeMonth)
	case key.Matches(msg, m.keys.Agenda):
		err = m.cursor.SetMode(domain.ModeAgenda)
	case key.Matches(msg, m.keys.Events):
		m.filter = m.filter.Toggle(domain.ItemEvent)
	case key.Matches(msg, m.keys.Shifts):
		m.filter = m.filter.Toggle(domain.ItemShift)
	case key.Matches(msg, m.keys.Tasks):
		m.filter = m.filter.Toggle(domain.ItemTask)
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.filter.SearchQuery)
		return m, m.search.Focus()
	default:
		return m, nil
	}
	if err != nil {
		m.err = err
		return m, nil
	}
	return m, m.load()
}

// updateSearch edits the query live. Enter keeps it, Esc clears it.
func (m *browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.filter = m.filter.WithSearch("")
		return m, m.load()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.filter.SearchQuery {
		m.filter = m.filter.WithSearch(q)
		return m, tea.Batch(cmd, m.load())
	}
	return m, cmd
}

func (m *browseModel) View() string {
	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.resp == nil:
		b.WriteString(formatter.Dim("Loading…"))
		b.WriteString("\n")
	default:
		b.WriteString(formatter.FormatCalendar(m.resp))
	}

	b.WriteString("\n")
	if m.searching {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(m.helpLine())
	}
	return b.String()
}

func (m *browseModel) statusLine() string {
	parts := []string{formatter.StyleHeader.Render(strings.ToUpper(string(m.cursor.Mode)))}
	for _, t := range domain.AllItemTypes {
		box := "[ ]"
		if m.filter.Categories[t] {
			box = "[x]"
		}
		parts = append(parts, formatter.TypeStyle(t).Render(box+" "+string(t)+"s"))
	}
	if q := m.filter.SearchQuery; q != "" {
		parts = append(parts, formatter.StyleYellow.Render(fmt.Sprintf("search: %q", q)))
	}
	return strings.Join(parts, "  ")
}

func (m *browseModel) helpLine() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, k := range m.keys.help() {
		h := k.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, "  ")
}

func newBrowseCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the calendar interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, a)
		},
	}
}

func runBrowse(cmd *cobra.Command, a *App) error {
	p := tea.NewProgram(
		newBrowseModel(a, domain.ModeWeek),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}
