package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/chapterhub/internal/app"
	"github.com/alexanderramin/chapterhub/internal/cli/formatter"
)

func newSeedCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Load projects, groups, shifts, events and tasks from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Seed == nil {
				return fmt.Errorf("seeding is not available")
			}
			resp, err := a.Seed.Seed(context.Background(), app.SeedRequest{Path: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSeed(args[0], resp))
			return nil
		},
	}
}
