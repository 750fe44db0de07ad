package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/ui/theme"
)

// ProgressBar is a labelled mastery bar. Bars at or above MasteredAt are
// drawn in the success colour.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int

	// LabelWidth pads labels so stacked bars line up.
	LabelWidth int
	MasteredAt float64
}

const defaultMasteredAt = 0.8

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		label := p.Label
		if pad := p.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf("  %3d%%", int(p.Percent*100))
	}

	barWidth := max(p.Width-lipgloss.Width(b.String())-len(suffix), 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	threshold := p.MasteredAt
	if threshold == 0 {
		threshold = defaultMasteredAt
	}
	fill := theme.Secondary
	if p.Percent >= threshold {
		fill = theme.Success
	}
	b.WriteString(lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)))
	if suffix != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return b.String()
}
