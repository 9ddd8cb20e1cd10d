package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		pct     int
		width   int
		filled  int
		percent string
	}{
		{"empty", 0, 10, 0, "  0%"},
		{"half", 50, 10, 5, " 50%"},
		{"full", 100, 10, 10, "100%"},
		{"over 100 clamps", 150, 10, 10, "100%"},
		{"negative clamps", -5, 10, 0, "  0%"},
		{"tiny width clamps to 2", 50, 1, 1, " 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, max(tt.width, 2)-tt.filled, strings.Count(got, emptyBlock))
			assert.True(t, strings.HasSuffix(got, tt.percent), got)
		})
	}
}
