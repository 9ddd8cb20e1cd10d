package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/advisor"
	"github.com/alexanderramin/haven/internal/cli/formatter"
	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/scenario"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// situationFlags are shared by the commands that describe where the user is.
type situationFlags struct {
	location  string
	timeOfDay string
}

func (f *situationFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("situation", pflag.ContinueOnError)
	fs.StringVar(&f.location, "location", "", "Where you are, e.g. 城市, 野外, 地下, 高处")
	fs.StringVar(&f.timeOfDay, "time", "", "Time of day, e.g. 白天, 夜晚")
	return fs
}

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Inspect and switch the active survival scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScenarioList(app.Session.Scenario()))
			return nil
		},
	}

	cmd.AddCommand(
		newScenarioListCmd(app),
		newScenarioShowCmd(app),
		newScenarioSetCmd(app),
		newScenarioThreatsCmd(app),
		newScenarioRiskCmd(app),
		newScenarioTipsCmd(app),
		newScenarioKnowledgeCmd(app),
		newScenarioSearchCmd(app),
	)
	return cmd
}

func newScenarioListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScenarioList(app.Session.Scenario()))
			return nil
		},
	}
}

// scenarioArg resolves an optional scenario argument, defaulting to the
// active one.
func scenarioArg(app *App, args []string) (domain.Scenario, error) {
	if len(args) == 0 {
		return app.Session.Scenario(), nil
	}
	s, ok := domain.ParseScenario(args[0])
	if !ok {
		return "", fmt.Errorf("%w: %q", advisor.ErrUnknownScenario, args[0])
	}
	return s, nil
}

func newScenarioShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a scenario's details (default: active)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenarioArg(app, args)
			if err != nil {
				return warnOnConfigError(cmd.OutOrStdout(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScenarioInfo(app.Scenarios.Info(cmd.Context(), s)))
			return nil
		},
	}
}

func newScenarioSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set [id]",
		Short: "Switch the active scenario",
		Long:  "Switch the active scenario. Without an id an interactive picker is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			switch {
			case len(args) == 1:
				id = args[0]
			case app.interactive():
				if err := wizardSelectScenario(app.Session.Scenario(), &id).Run(); err != nil {
					return err
				}
			default:
				return errors.New("scenario id required: " + scenarioIDs())
			}

			if err := app.Session.SetScenario(id); err != nil {
				return warnOnConfigError(cmd.OutOrStdout(), err)
			}
			meta := app.Session.Info()
			fmt.Fprintf(cmd.OutOrStdout(), "已切换到 %s %s\n", meta.Icon, formatter.Bold(meta.Name))
			return nil
		},
	}
}

func scenarioIDs() string {
	ids := make([]string, 0, len(domain.Scenarios))
	for _, s := range domain.Scenarios {
		ids = append(ids, string(s))
	}
	return strings.Join(ids, ", ")
}

func newScenarioThreatsCmd(app *App) *cobra.Command {
	var sf situationFlags
	cmd := &cobra.Command{
		Use:   "threats",
		Short: "List threats of the active scenario adjusted for your situation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Session.Scenario()
			threats := app.Scenarios.Threats(cmd.Context(), s, sf.location, sf.timeOfDay)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatThreats(s, threats))
			return nil
		},
	}
	cmd.Flags().AddFlagSet(sf.flagSet())
	return cmd
}

func newScenarioRiskCmd(app *App) *cobra.Command {
	var (
		sf        situationFlags
		groupSize int
		resources []string
	)
	cmd := &cobra.Command{
		Use:     "risk",
		Short:   "Assess the risk of your situation in the active scenario",
		Example: `  haven scenario risk --location 城市 --time 夜晚 --group 3 --resources 水,食物`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Session.Scenario()
			r := scenario.AssessRisk(s, scenario.RiskFactors{
				Location:  sf.location,
				TimeOfDay: sf.timeOfDay,
				GroupSize: groupSize,
				Resources: resources,
			})
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRisk(s, r))
			return nil
		},
	}
	cmd.Flags().AddFlagSet(sf.flagSet())
	cmd.Flags().IntVar(&groupSize, "group", 1, "Number of people in your group")
	cmd.Flags().StringSliceVar(&resources, "resources", nil, "Resources you have, e.g. 水,食物,医疗")
	return cmd
}

func newScenarioTipsCmd(app *App) *cobra.Command {
	var situation string
	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Survival tips for the active scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Session.Scenario()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTips(s, app.Scenarios.SurvivalTips(cmd.Context(), s, situation)))
			return nil
		},
	}
	cmd.Flags().StringVar(&situation, "situation", "", "Your situation, e.g. \"受伤 缺水\"")
	return cmd
}

func newScenarioKnowledgeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "knowledge [category]",
		Short: "Scenario-specific knowledge of the active scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			s := app.Session.Scenario()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScenarioKnowledge(s, app.Scenarios.Knowledge(cmd.Context(), s, category)))
			return nil
		},
	}
}

func newScenarioSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search knowledge and threats of the active scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Session.Scenario()
			entries, threats := app.Scenarios.Search(cmd.Context(), s, args[0])
			out := cmd.OutOrStdout()
			if len(entries) == 0 && len(threats) == 0 {
				fmt.Fprintln(out, formatter.Dim("没有找到相关内容。"))
				return nil
			}
			if len(entries) > 0 {
				fmt.Fprintln(out, formatter.FormatScenarioKnowledge(s, entries))
			}
			if len(threats) > 0 {
				adjusted := make([]domain.AdjustedThreat, 0, len(threats))
				for _, t := range threats {
					adjusted = append(adjusted, domain.AdjustedThreat{ThreatRecord: t, AdjustedLevel: t.BaseDangerLevel})
				}
				fmt.Fprintln(out, formatter.FormatThreats(s, adjusted))
			}
			return nil
		},
	}
}
