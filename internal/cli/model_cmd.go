package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/haven/internal/cli/formatter"
	"github.com/alexanderramin/haven/internal/llm"
	"github.com/spf13/cobra"
)

func newModelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage the AI model used for advanced answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatModelList(app.Models.AvailableModels()))
			return nil
		},
	}

	cmd.AddCommand(
		newModelListCmd(app),
		newModelUseCmd(app),
		newModelKeyCmd(app),
		newModelTestCmd(app),
		newModelStatsCmd(app),
	)
	return cmd
}

func newModelListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List models with API key status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatModelList(app.Models.AvailableModels()))
			return nil
		},
	}
}

func newModelUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use [id]",
		Short: "Switch the active model",
		Long:  "Switch the active model. Remote models need an API key first (haven model key).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			switch {
			case len(args) == 1:
				id = args[0]
			case app.interactive():
				if err := wizardSelectModel(app.Models.AvailableModels(), &id).Run(); err != nil {
					return err
				}
			default:
				return errors.New("model id required")
			}

			if err := app.Models.SetCurrent(llm.ModelID(id)); err != nil {
				return warnOnConfigError(cmd.OutOrStdout(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已切换到 %s\n", formatter.Bold(app.Models.Current().Name))
			return nil
		},
	}
}

func newModelKeyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "key <id> <api-key>",
		Short: "Store the API key of a remote model",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Models.SetAPIKey(llm.ModelID(args[0]), args[1]); err != nil {
				return warnOnConfigError(cmd.OutOrStdout(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已保存 %s 的API密钥\n", formatter.Bold(args[0]))
			return nil
		},
	}
}

func newModelTestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "test [id]",
		Short: "Send a test request to a model (default: active)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := app.Models.Current().ID
			if len(args) == 1 {
				id = llm.ModelID(args[0])
			}
			if app.interactive() {
				stop := formatter.StartSpinner(stderr(), "正在测试连接...")
				defer stop()
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatConnection(app.Models.TestConnection(cmd.Context(), id)))
			return nil
		},
	}
}

func newModelStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Model usage counters for this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatUsage(app.Models.Stats()))
			return nil
		},
	}
}
