package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/haven/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	errUnterminatedEscape = errors.New("unterminated escape sequence")
	errUnterminatedQuote  = errors.New("unterminated quoted string")
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive survival chat with command autocomplete",
		Long: `Start an interactive session. Type a question to get an answer under the
active scenario, or any haven command (scenario, model, skills, ...).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(app)
		},
	}
}

func runShell(app *App) error {
	_, err := tea.NewProgram(newShellModel(app, shellHistoryPath())).Run()
	return err
}

func stderr() io.Writer { return os.Stderr }

func shellError(err error) string {
	return formatter.StyleRed.Render("错误: " + err.Error())
}

// splitShellArgs tokenizes a line the way a POSIX shell would for quotes and
// backslash escapes. Nothing is expanded.
func splitShellArgs(input string) ([]string, error) {
	var (
		parts   []string
		cur     strings.Builder
		quote   rune
		escaped bool
		started bool
	)

	for _, r := range input {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case quote == '"':
			switch r {
			case '"':
				quote = 0
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped, started = true, true
		case r == '\'' || r == '"':
			quote, started = r, true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if started {
				parts = append(parts, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if escaped {
		return nil, errUnterminatedEscape
	}
	if quote != 0 {
		return nil, errUnterminatedQuote
	}
	if started {
		parts = append(parts, cur.String())
	}
	return parts, nil
}
