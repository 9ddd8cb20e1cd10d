package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/advisor"
	"github.com/alexanderramin/haven/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var callerContext string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a survival question under the active scenario",
		Long: `Ask a question in natural language. The answer comes from the active
scenario and model first, then from the local rules and knowledge base.`,
		Example: `  haven ask 如何寻找水源
  haven ask "被僵尸咬了怎么办" --context "手臂受伤，有绷带"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			fmt.Fprintln(cmd.OutOrStdout(), answerQuestion(cmd.Context(), app, question, callerContext))
			return nil
		},
	}

	cmd.Flags().StringVar(&callerContext, "context", "", "Extra situation details passed to the remote model")
	return cmd
}

// answerQuestion runs the composer and renders the result. A spinner runs on
// stderr while a remote model is working.
func answerQuestion(ctx context.Context, app *App, question, callerContext string) string {
	if ctx == nil {
		ctx = context.Background()
	}
	if app.interactive() && app.Models.Current().Remote() {
		stop := formatter.StartSpinner(stderr(), "正在思考...")
		defer stop()
	}
	ans := app.clampAnswer(app.Composer.Answer(ctx, app.Session, question, callerContext))
	return renderAnswer(app.Session, ans)
}

func renderAnswer(sess *advisor.Session, ans advisor.Answer) string {
	return formatter.FormatAnswer(sess.Info(), ans)
}
