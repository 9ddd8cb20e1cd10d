package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// Stars renders a 1-5 difficulty as a row of stars.
func Stars(n int) string {
	return StyleYellow.Render(strings.Repeat("⭐", domain.Clamp(n, 0, 5)))
}

// Bullets renders items one per line with a dim bullet.
func Bullets(items []string) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(StyleDim.Render("  • ") + it + "\n")
	}
	return b.String()
}

// Numbered renders items as a 1-based list.
func Numbered(items []string) string {
	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "  %s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), it)
	}
	return b.String()
}

// Section renders a labelled block, or nothing when body is empty.
func Section(label, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return StyleBold.Render(label) + "\n" + body + "\n"
}

// Excerpt cuts s to n runes and appends an ellipsis when it was cut.
func Excerpt(s string, n int) string {
	cut := domain.Truncate(s, n)
	if cut != s {
		return cut + "…"
	}
	return s
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("2006-01-02 15:04")
	case diff < time.Minute:
		return "刚刚"
	case diff < time.Hour:
		return fmt.Sprintf("%d分钟前", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d小时前", int(diff.Hours()))
	default:
		return t.Format("2006-01-02 15:04")
	}
}
