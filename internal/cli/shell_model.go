package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type shellMode int

const (
	modePrompt   shellMode = iota // Normal input.
	modeWizard                    // huh form is active.
	modeThinking                  // Waiting for an answer.
)

// answerMsg carries a rendered answer back from the composer.
type answerMsg struct{ output string }

// shellModel is the bubbletea Model for the interactive shell. Free text is
// a question; known command words go through the cobra tree.
type shellModel struct {
	input   textinput.Model
	spinner spinner.Model
	form    *huh.Form
	width   int

	app        *App
	mode       shellMode
	wizardDone func(m *shellModel) string

	historyPath string
	history     []string
	historyIdx  int

	lastOutput string
	quitting   bool
}

// newShellModel builds the shell. An empty historyPath keeps history in
// memory only.
func newShellModel(app *App, historyPath string) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Tab accepts a suggestion; Up/Down stay on history.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(formatter.StylePurple))

	hist := loadHistoryFromPath(historyPath)
	return shellModel{
		input:       ti,
		spinner:     sp,
		app:         app,
		historyPath: historyPath,
		history:     hist,
		historyIdx:  len(hist),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome(m.app.Session.Info(), m.app.Models.Current().Name)),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-lipgloss.Width(m.promptPrefix())-1, 10)
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case answerMsg:
		m.mode = modePrompt
		printCmd := m.print(msg.output)
		return m, printCmd

	case spinner.TickMsg:
		if m.mode != modeThinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeWizard:
			return m.updateWizard(msg)
		case modeThinking:
			return m, nil
		default:
			return m.updatePrompt(msg)
		}
	}

	// Non-key messages (init, focus changes) belong to the form while it is up.
	if m.mode == modeWizard && m.form != nil {
		return m.updateWizard(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("再见，注意安全。") + "\n"
	}
	switch m.mode {
	case modeWizard:
		if m.form != nil {
			return m.form.View()
		}
	case modeThinking:
		return m.spinner.View() + " " + formatter.Dim("正在思考...")
	}
	return m.promptPrefix() + m.input.View()
}

func (m *shellModel) promptPrefix() string {
	meta := m.app.Session.Info()
	return formatter.StylePurple.Render("haven") + " " +
		formatter.Dim("(") + meta.Icon + " " + formatter.StyleGreen.Render(meta.Name) + formatter.Dim(")") +
		" " + formatter.Dim("❯") + " "
}

// print records s as the latest output and prints it above the prompt.
func (m *shellModel) print(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	m.lastOutput = s
	return tea.Println(s)
}

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.addHistory(input)
		output, cmd := m.executeCommand(input)
		printCmd := m.print(output)
		return m, tea.Batch(printCmd, cmd)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

// ── wizard mode ──────────────────────────────────────────────────────────────

// startWizard shows form and calls done with the model once it completes.
// A nil form runs done immediately.
func (m *shellModel) startWizard(form *huh.Form, done func(m *shellModel) string) tea.Cmd {
	if form == nil {
		if done != nil {
			return m.print(done(m))
		}
		return nil
	}
	m.mode = modeWizard
	m.form = form
	m.wizardDone = done
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
	return m.form.Init()
}

func (m shellModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		printCmd := m.print(formatter.Dim("已取消。"))
		return m, printCmd
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.mode = modePrompt
		done := m.wizardDone
		m.form = nil
		m.wizardDone = nil
		if done != nil {
			printCmd := m.print(done(&m))
			return m, tea.Batch(cmd, printCmd)
		}
	}
	return m, cmd
}

func (m *shellModel) startScenarioWizard() tea.Cmd {
	picked := new(string)
	form := wizardSelectScenario(m.app.Session.Scenario(), picked)
	return m.startWizard(form, func(m *shellModel) string {
		return m.execCobraCapture([]string{"scenario", "set", *picked})
	})
}

func (m *shellModel) startModelWizard() tea.Cmd {
	picked := new(string)
	form := wizardSelectModel(m.app.Models.AvailableModels(), picked)
	return m.startWizard(form, func(m *shellModel) string {
		return m.execCobraCapture([]string{"model", "use", *picked})
	})
}

func (m *shellModel) startEmergencyWizard() tea.Cmd {
	picked := new(string)
	form := wizardSelectEmergency(picked)
	return m.startWizard(form, func(m *shellModel) string {
		return m.execCobraCapture([]string{"emergency", "procedure", *picked})
	})
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	appendHistoryToPath(m.historyPath, line)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
		return
	}
	m.historyIdx = len(m.history)
	m.input.SetValue("")
}

// ── suggestions ──────────────────────────────────────────────────────────────

// updateSuggestions completes command words, subcommands and catalogue
// arguments. Each suggestion is the full line so Tab can accept it.
func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	parts := strings.Fields(text)
	if len(parts) == 0 {
		m.input.SetSuggestions(nil)
		return
	}
	trailingSpace := strings.HasSuffix(text, " ")

	// Index of the word being typed and its prefix.
	word, prefix := len(parts)-1, parts[len(parts)-1]
	if trailingSpace {
		word, prefix = len(parts), ""
	}

	var pool []string
	switch word {
	case 0:
		pool = allCommandNames()
	case 1:
		pool = subcommandNames()[strings.ToLower(parts[0])]
	case 2:
		pool = argumentSuggestions(strings.ToLower(parts[0]), strings.ToLower(parts[1]))
	}

	head := strings.Join(parts[:word], " ")
	if head != "" {
		head += " "
	}
	matches := filterSuggestions(pool, prefix)
	full := make([]string, 0, len(matches))
	for _, s := range matches {
		full = append(full, head+s)
	}
	m.input.SetSuggestions(full)
}

// ── command dispatch ─────────────────────────────────────────────────────────

// executeCommand handles one submitted line. It returns text to print and an
// optional follow-up command.
func (m *shellModel) executeCommand(input string) (string, tea.Cmd) {
	parts, err := splitShellArgs(input)
	if err != nil {
		return shellError(err), nil
	}
	if len(parts) == 0 {
		return "", nil
	}
	name := strings.ToLower(parts[0])
	args := parts[1:]

	switch {
	case name == "help":
		return formatter.FormatShellHelp(), nil
	case name == "clear":
		return "\033[H\033[2J", nil
	case name == "exit" || name == "quit":
		m.quitting = true
		return "", tea.Quit
	case name == "shell":
		return formatter.StyleYellow.Render("已经在交互模式中。"), nil
	case name == "scenario" && (len(args) == 0 || (len(args) == 1 && args[0] == "set")):
		return "", m.startScenarioWizard()
	case name == "model" && (len(args) == 0 || (len(args) == 1 && args[0] == "use")):
		return "", m.startModelWizard()
	case name == "emergency" && len(args) == 0:
		return "", m.startEmergencyWizard()
	case isCobraCommand(name):
		return m.execCobraCapture(parts), nil
	default:
		return "", m.ask(input)
	}
}

// ask answers question off the update loop while the spinner runs.
func (m *shellModel) ask(question string) tea.Cmd {
	m.mode = modeThinking
	app := m.app
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			ans := app.Composer.Answer(context.Background(), app.Session, question, "")
			return answerMsg{output: renderAnswer(app.Session, app.clampAnswer(ans))}
		},
	)
}

// execCobraCapture runs args through a fresh command tree and returns what it
// wrote. Commands see a non-interactive App: pickers and spinners must not
// take over the terminal while the shell owns it.
func (m *shellModel) execCobraCapture(args []string) string {
	captured := *m.app
	captured.IsInteractive = nil

	var buf strings.Builder
	root := NewRootCmd(&captured)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		buf.WriteString(shellError(err))
		if strings.Contains(err.Error(), "unknown command") && len(args) > 1 {
			buf.WriteString(suggestSubcommands(root, args[0], args[1]))
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

// suggestSubcommands lists near matches for a mistyped subcommand of parent.
func suggestSubcommands(root *cobra.Command, parent, typed string) string {
	cmd, _, err := root.Find([]string{parent})
	if err != nil || cmd == root {
		return ""
	}
	matches := cmd.SuggestionsFor(typed)
	if len(matches) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n" + formatter.Dim("您是不是想输入:"))
	for _, s := range matches {
		fmt.Fprintf(&b, "\n  %s", formatter.StyleGreen.Render(parent+" "+s))
	}
	return b.String()
}
