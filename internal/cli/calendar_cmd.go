package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/chapterhub/internal/app"
	"github.com/alexanderramin/chapterhub/internal/cli/formatter"
)

type calendarOptions struct {
	mode   modeValue
	date   string
	search string
	types  typesValue
	pick   bool
}

func newCalendarCmd(app *App) *cobra.Command {
	opts := calendarOptions{mode: modeValue("week")}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a day, week, month or agenda view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCalendar(cmd, app, opts)
		},
	}

	cmd.Flags().Var(&opts.mode, "mode", "View mode: day, week, month or agenda")
	cmd.Flags().StringVar(&opts.date, "date", "", "Anchor date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.search, "search", "", "Only items whose name, project, group or location contains this text")
	cmd.Flags().Var(&opts.types, "types", "Comma-separated item types to show (event,shift,task)")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "Choose item types interactively")

	return cmd
}

func newAgendaCmd(app *App) *cobra.Command {
	opts := calendarOptions{mode: modeValue("agenda")}

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Print everything in the next seven days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCalendar(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.search, "search", "", "Only items whose name, project, group or location contains this text")
	cmd.Flags().Var(&opts.types, "types", "Comma-separated item types to show (event,shift,task)")

	return cmd
}

func printCalendar(cmd *cobra.Command, a *App, opts calendarOptions) error {
	anchor, err := a.anchor(opts.date)
	if err != nil {
		return err
	}

	filter := opts.types.filterState()
	if opts.pick {
		if !a.interactive() {
			return fmt.Errorf("--pick needs an interactive terminal")
		}
		if filter, err = pickCategories(filter); err != nil {
			return err
		}
	}

	req := app.NewCalendarRequest(a.UserID, opts.mode.viewMode(), anchor)
	req.Filter = filter.WithSearch(opts.search)

	resp, err := a.Calendar.View(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(resp))
	return nil
}

// anchor parses a YYYY-MM-DD date in the calendar's zone, or returns now.
func (a *App) anchor(date string) (time.Time, error) {
	if date == "" {
		return a.Windower.Now(), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, date, a.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
	}
	return t, nil
}
