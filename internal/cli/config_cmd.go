package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/haven/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or reset the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	}
	cmd.AddCommand(newConfigShowCmd(app), newConfigResetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every setting (API keys masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	}
}

func showConfig(cmd *cobra.Command, app *App) error {
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatConfig(app.Settings.Path(), app.Settings.All()))
	return nil
}

func newConfigResetCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		Long:  "Restore default settings. Clears API keys and switches back to the normal scenario and the local model.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("reset clears all API keys; re-run with --force")
			}
			if err := app.Settings.Reset(); err != nil {
				return err
			}
			app.Session.Reload()
			fmt.Fprintln(cmd.OutOrStdout(), "已恢复默认配置。")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Confirm the reset")
	return cmd
}
