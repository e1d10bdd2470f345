package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/chapterhub/internal/app"
	"github.com/alexanderramin/chapterhub/internal/cli/formatter"
)

func newShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "show <type:id>",
		Short:   "Show one item, e.g. \"event:e-gala\"",
		Args:    cobra.ExactArgs(1),
		Example: "  chapterhub show shift:s-desk@20250512",
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.Calendar.Item(context.Background(), app.ItemRequest{UserID: a.UserID, Key: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItemDetail(detail))
			return nil
		},
	}
}
