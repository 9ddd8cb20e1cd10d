package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a 0-100 percentage as "[████░░░░]  45%". The bar is
// green above 66, yellow from 33 and red below.
func RenderProgress(percent, width int) string {
	percent = domain.Clamp(percent, 0, 100)
	if width < 2 {
		width = 2
	}
	filled := percent * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case percent < 33:
		style = StyleRed
	case percent < 66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), percent)
}
