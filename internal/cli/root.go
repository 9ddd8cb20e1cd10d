package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/haven/internal/advisor"
	"github.com/alexanderramin/haven/internal/cli/formatter"
	"github.com/alexanderramin/haven/internal/config"
	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/emergency"
	"github.com/alexanderramin/haven/internal/llm"
	"github.com/alexanderramin/haven/internal/repository"
	"github.com/alexanderramin/haven/internal/scenario"
	"github.com/alexanderramin/haven/internal/skills"
	"github.com/spf13/cobra"
)

// App holds everything the commands and the shell need.
type App struct {
	Settings  *config.Store
	Session   *advisor.Session
	Composer  *advisor.Composer
	Models    *llm.Manager
	Scenarios *scenario.Service
	Knowledge repository.KnowledgeRepo
	Skills    *skills.Guide
	Emergency *emergency.Service
	History   repository.HistoryRepo

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) userID() string {
	return a.Settings.GetString(config.KeyUserID)
}

// clampAnswer cuts model-generated text to ai.max_response_length runes.
// Rule-based answers are never cut.
func (a *App) clampAnswer(ans advisor.Answer) advisor.Answer {
	if ans.Source != domain.SourceRemote {
		return ans
	}
	if limit := a.Settings.GetInt(config.KeyMaxResponseLength); limit > 0 {
		ans.Text = formatter.Excerpt(ans.Text, limit)
	}
	return ans
}

// NewRootCmd creates the top-level "haven" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "haven",
		Short: "Survival scenario guide",
		Long: `haven answers survival questions under an active disaster scenario,
backed by a local knowledge base and optional remote AI models.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAskCmd(app),
		newShellCmd(app),
		newScenarioCmd(app),
		newModelCmd(app),
		newKnowledgeCmd(app),
		newSkillsCmd(app),
		newEmergencyCmd(app),
		newHistoryCmd(app),
		newConfigCmd(app),
	)

	return root
}

// warnOnConfigError prints configuration rejections as warnings and swallows
// them. Anything else is returned to cobra.
func warnOnConfigError(w io.Writer, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, advisor.ErrUnknownScenario),
		errors.Is(err, llm.ErrUnknownModel),
		errors.Is(err, llm.ErrMissingCredential):
		fmt.Fprintln(w, formatter.Warning(err.Error()))
		return nil
	default:
		return err
	}
}
