package cli

import (
	"github.com/alexanderramin/haven/internal/cli/formatter"
	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/emergency"
	"github.com/alexanderramin/haven/internal/llm"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// havenHuhTheme returns a huh theme built on the formatter palette.
func havenHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func selectForm(title string, options []huh.Option[string], result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(result),
		),
	).WithTheme(havenHuhTheme()).WithShowHelp(false)
}

// wizardSelectScenario picks one of the six scenarios, starting on current.
func wizardSelectScenario(current domain.Scenario, result *string) *huh.Form {
	*result = string(current)
	options := make([]huh.Option[string], 0, len(domain.Scenarios))
	for _, s := range domain.Scenarios {
		meta := s.Meta()
		options = append(options, huh.NewOption(meta.Icon+" "+meta.Name+"  "+meta.Description, string(s)))
	}
	return selectForm("选择场景", options, result)
}

// wizardSelectModel picks a model. Remote models without a key are listed
// but switching to them reports the missing credential.
func wizardSelectModel(models []llm.ModelStatus, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(models))
	for _, m := range models {
		label := m.Name
		if !m.HasAPIKey {
			label += " (未设置API密钥)"
		}
		if m.Current {
			*result = string(m.ID)
		}
		options = append(options, huh.NewOption(label, string(m.ID)))
	}
	return selectForm("选择AI模型", options, result)
}

// wizardSelectEmergency picks an emergency type for the full procedure.
func wizardSelectEmergency(result *string) *huh.Form {
	types := emergency.Types()
	options := make([]huh.Option[string], 0, len(types))
	for _, t := range types {
		options = append(options, huh.NewOption(t, t))
	}
	return selectForm("紧急情况类型", options, result)
}
