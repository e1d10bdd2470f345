package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/chapterhub/internal/app"
	"github.com/alexanderramin/chapterhub/internal/calendar"
	"github.com/alexanderramin/chapterhub/internal/domain"
)

const cellWidth = 6

// FormatCalendar renders resp in the layout of its window mode.
func FormatCalendar(resp *app.CalendarResponse) string {
	switch resp.Window.Mode {
	case domain.ModeDay:
		return FormatDay(resp)
	case domain.ModeWeek:
		return FormatWeek(resp)
	case domain.ModeMonth:
		return FormatMonth(resp)
	default:
		return FormatAgenda(resp)
	}
}

// FormatDay lists the hours of the day that have items.
func FormatDay(resp *app.CalendarResponse) string {
	loc := resp.Window.Start.Location()
	var b strings.Builder
	b.WriteString(Header(resp.Window.Start.Format("Monday, January 2 2006")))
	b.WriteString("\n\n")

	empty := true
	for _, hour := range resp.Hours {
		if len(hour.Items) == 0 {
			continue
		}
		empty = false
		b.WriteString(StyleHeader.Render(fmt.Sprintf("%02d:00", hour.Hour)))
		b.WriteString("\n")
		for _, item := range hour.Items {
			b.WriteString("  " + itemLine(item, loc) + "\n")
		}
	}
	if empty {
		b.WriteString(Dim("Nothing scheduled.") + "\n")
	}

	b.WriteString(droppedFooter(resp.Dropped))
	return b.String()
}

// FormatWeek renders the seven days of the window, Sunday first.
func FormatWeek(resp *app.CalendarResponse) string {
	loc := resp.Window.Start.Location()
	var b strings.Builder
	title := fmt.Sprintf("Week of %s – %s",
		resp.Window.Start.Format("Jan 2"),
		resp.Window.End.Format("Jan 2, 2006"))
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	today := resp.GeneratedAt.In(loc).Format(time.DateOnly)
	for _, day := range resp.Days {
		label := day.Date.Format("Mon 02")
		if day.Date.Format(time.DateOnly) == today {
			b.WriteString(StyleToday.Render(label))
		} else {
			b.WriteString(Bold(label))
		}
		b.WriteString("\n")
		if len(day.Items) == 0 {
			b.WriteString("  " + Dim("—") + "\n")
			continue
		}
		for _, item := range day.Items {
			b.WriteString("  " + itemLine(item, loc) + "\n")
		}
	}

	b.WriteString(droppedFooter(resp.Dropped))
	return b.String()
}

// FormatMonth draws the month grid with item counts per cell, followed by the
// items of the month in date order. Padding days are dimmed.
func FormatMonth(resp *app.CalendarResponse) string {
	var b strings.Builder
	if resp.Grid == nil {
		return Dim("No month grid.") + "\n"
	}
	grid := resp.Grid
	loc := resp.Window.Start.Location()

	b.WriteString(Header(fmt.Sprintf("%s %d", grid.Month, grid.Year)))
	b.WriteString("\n\n")

	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-*s", cellWidth, wd)))
	}
	b.WriteString("\n")

	for _, week := range grid.Weeks() {
		for _, cell := range week {
			b.WriteString(gridCell(cell))
		}
		b.WriteString("\n")
	}

	if len(resp.Items) > 0 {
		b.WriteString("\n")
		for _, item := range resp.Items {
			date := item.Start.In(loc).Format("Jan 02")
			b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(date), itemLine(item, loc)))
		}
	}

	b.WriteString(droppedFooter(resp.Dropped))
	return b.String()
}

func gridCell(cell calendar.GridCell) string {
	text := fmt.Sprintf("%2d", cell.Date.Day())
	if n := len(cell.Items); n > 0 {
		text += fmt.Sprintf("·%d", n)
	}
	padded := text + strings.Repeat(" ", max(cellWidth-lipgloss.Width(text), 0))

	switch {
	case !cell.InMonth:
		return StyleDim.Render(padded)
	case cell.IsToday:
		return StyleToday.Render(text) + strings.Repeat(" ", max(cellWidth-lipgloss.Width(text), 0))
	default:
		return StyleFg.Render(padded)
	}
}

// FormatAgenda renders the upcoming items as a table.
func FormatAgenda(resp *app.CalendarResponse) string {
	loc := resp.Window.Start.Location()
	var b strings.Builder
	title := fmt.Sprintf("Agenda %s – %s",
		resp.Window.Start.Format("Jan 2"),
		resp.Window.End.Format("Jan 2, 2006"))
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	if len(resp.Items) == 0 {
		b.WriteString(Dim("Nothing in the next week.") + "\n")
		b.WriteString(droppedFooter(resp.Dropped))
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		rows = append(rows, []string{
			item.Start.In(loc).Format("Mon Jan 02"),
			calendar.FormatTimeRange(item.Start, item.End, loc),
			TypeBadge(item.Type),
			Truncate(item.Name, 40),
			Truncate(place(item), 30),
			Dim(item.Key()),
		})
	}
	b.WriteString(RenderTable([]string{"DATE", "TIME", "TYPE", "NAME", "WHERE", "KEY"}, rows))
	b.WriteString(droppedFooter(resp.Dropped))
	return b.String()
}

// FormatItemDetail renders one item with its route.
func FormatItemDetail(d *app.ItemDetail) string {
	item := d.Item
	when := d.TimeRange
	if !item.Start.IsZero() {
		when = item.Start.Format("Mon Jan 2 2006") + "  " + d.TimeRange
	}

	rows := [][2]string{
		{"Type", TypeBadge(item.Type)},
		{"When", when},
		{"Length", d.Span},
		{"Location", item.Location},
		{"Project", item.ProjectName},
		{"Group", item.GroupName},
	}
	if item.Price != nil {
		rows = append(rows, [2]string{"Price", fmt.Sprintf("%.2f", *item.Price)})
	}
	if item.TicketsAvailable != nil {
		tickets := pluralize(*item.TicketsAvailable, "ticket left", "tickets left")
		switch {
		case *item.TicketsAvailable <= 0:
			tickets = StyleRed.Render("sold out")
		case item.HasTickets():
			tickets += " " + StyleYellow.Render("(on sale)")
		}
		rows = append(rows, [2]string{"Tickets", tickets})
	}
	rows = append(rows, [2]string{"Link", d.Link})

	return RenderBox(item.Name, labelled(rows)) + "\n"
}

// FormatSeed summarises a seed run.
func FormatSeed(path string, resp *app.SeedResponse) string {
	parts := []string{
		pluralize(resp.Projects, "project", "projects"),
		pluralize(resp.Groups, "group", "groups"),
		pluralize(resp.Shifts, "shift", "shifts"),
		pluralize(resp.Events, "event", "events"),
		pluralize(resp.Tasks, "task", "tasks"),
	}
	return fmt.Sprintf("%s Seeded %s: %s\n", StyleGreen.Render("✔"), path, strings.Join(parts, ", "))
}

func itemLine(item domain.ScheduleItem, loc *time.Location) string {
	parts := []string{
		StyleDim.Render(calendar.FormatTimeRange(item.Start, item.End, loc)),
		TypeBadge(item.Type),
		StyleFg.Render(item.Name),
	}
	if span := calendar.FormatSpan(item.Start, item.End); span != "" {
		parts = append(parts, StyleDim.Render("("+span+")"))
	}
	if p := place(item); p != "" {
		parts = append(parts, StyleDim.Render("· "+p))
	}
	return strings.Join(parts, " ")
}

// place joins location, project and group, skipping empty parts.
func place(item domain.ScheduleItem) string {
	var parts []string
	for _, s := range []string{item.Location, item.ProjectName, item.GroupName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func droppedFooter(dropped []calendar.Diagnostic) string {
	if len(dropped) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StyleYellow.Render(fmt.Sprintf("Skipped %s:", pluralize(len(dropped), "record", "records"))))
	b.WriteString("\n")
	for _, d := range dropped {
		b.WriteString(Dim("  " + d.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
