package charts

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a value run as a row of block characters scaled to
// the run's maximum, tinted with the given color.
func Sparkline(vals []float64, color lipgloss.Color) string {
	if len(vals) == 0 {
		return ""
	}
	maxVal := maxValue(vals)

	var b strings.Builder
	for _, v := range vals {
		idx := int(v / maxVal * float64(len(sparkRunes)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}
