package cli

import (
	"fmt"

	"github.com/alexanderramin/haven/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Recent questions and where their answers came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.History.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(records))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of entries to show")
	return cmd
}
