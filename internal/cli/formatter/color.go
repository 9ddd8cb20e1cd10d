package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityStyle maps an assessment level to a color.
func SeverityStyle(level domain.SeverityLevel) lipgloss.Style {
	switch level {
	case domain.SeverityCritical:
		return StyleRed.Bold(true)
	case domain.SeverityHigh:
		return StyleRed
	case domain.SeverityMedium:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// SeverityIndicator renders a colored "● LEVEL" marker.
func SeverityIndicator(level domain.SeverityLevel) string {
	return SeverityStyle(level).Render("● " + string(level))
}

// DangerStyle colors a 1-5 danger or threat level.
func DangerStyle(level int) lipgloss.Style {
	switch {
	case level >= 5:
		return StyleRed.Bold(true)
	case level >= 4:
		return StyleRed
	case level >= 3:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// DangerMeter renders a five-slot meter such as "▰▰▰▱▱ 3".
func DangerMeter(level int) string {
	level = domain.Clamp(level, 0, 5)
	bar := strings.Repeat("▰", level) + strings.Repeat("▱", 5-level)
	return DangerStyle(level).Render(fmt.Sprintf("%s %d", bar, level))
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Warning renders a non-fatal problem the user should see.
func Warning(text string) string {
	return StyleYellow.Render("⚠ " + text)
}
