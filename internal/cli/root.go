package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/chapterhub/internal/app"
	"github.com/alexanderramin/chapterhub/internal/calendar"
)

// App holds the use cases and settings shared by every command.
type App struct {
	Calendar app.CalendarUseCase
	Seed     app.SeedUseCase

	// Windower supplies the clock and date math for anchors and the
	// interactive cursor.
	Windower *calendar.Windower
	UserID   string

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) location() *time.Location {
	return a.Windower.Dates().Location()
}

// NewRootCmd creates the "chapterhub" command. Run without a subcommand it
// opens the browser on a terminal and prints the agenda otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "chapterhub",
		Short:         "Calendar of your chapter's shifts, events and tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runBrowse(cmd, app)
			}
			return printCalendar(cmd, app, calendarOptions{mode: modeValue("agenda")})
		},
	}

	root.PersistentFlags().StringVar(&app.UserID, "user", app.UserID, "User whose calendar to show")

	root.AddCommand(
		newCalendarCmd(app),
		newAgendaCmd(app),
		newShowCmd(app),
		newSeedCmd(app),
		newBrowseCmd(app),
	)

	return root
}
