package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Yashshokeen-11/ALP/internal/ui/theme"
)

// MasteryBar renders a horizontal score bar with a tick at the
// threshold, so the distance to "satisfied" is visible at a glance.
type MasteryBar struct {
	Score     float64
	Threshold float64
	Width     int
}

// NewMasteryBar creates a bar for one score against one threshold.
func NewMasteryBar(score, threshold float64, width int) MasteryBar {
	return MasteryBar{Score: score, Threshold: threshold, Width: width}
}

// View renders the bar followed by the numeric score.
func (b MasteryBar) View() string {
	barWidth := b.Width - 6 // room for " 100%"
	if barWidth < 8 {
		barWidth = 8
	}

	filled := int(float64(barWidth) * b.Score)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	tick := int(float64(barWidth) * b.Threshold)
	if tick >= barWidth {
		tick = barWidth - 1
	}

	fillStyle := theme.BarFilled
	if b.Score >= b.Threshold {
		fillStyle = theme.BarReached
	}

	var sb strings.Builder
	for i := 0; i < barWidth; i++ {
		cell := theme.BarEmpty
		if i < filled {
			cell = fillStyle
		}
		if i == tick {
			sb.WriteString(cell.Foreground(theme.Accent).Render("│"))
			continue
		}
		sb.WriteString(cell.Render(" "))
	}

	sb.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %3.0f%%", b.Score*100)))

	return sb.String()
}
