package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/modes"
	"github.com/abhisek/phonix/internal/ui/theme"
)

var choiceKeys = []string{"1", "2", "3", "4", "5", "6"}

// Tiles renders the graphemes of a round as colored boxes.
func Tiles(tiles []modes.Tile) string {
	boxes := make([]string, 0, len(tiles))
	for _, t := range tiles {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Bold(true)

		label := t.Grapheme
		switch {
		case t.Blank:
			label = strings.Repeat("_", max(len(t.Grapheme), 1))
			style = style.Foreground(theme.TextDim).BorderForeground(theme.ArcadeYellow)
		case !t.Revealed:
			label = strings.Repeat("?", max(len(t.Grapheme), 1))
			style = style.Foreground(theme.TextDim).BorderForeground(theme.Border)
		default:
			style = style.Foreground(theme.PhonemeColor(t.Type)).BorderForeground(theme.PhonemeColor(t.Type))
		}
		if t.Highlight && !t.Blank {
			style = style.BorderForeground(theme.ArcadeYellow)
		}
		boxes = append(boxes, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
}

// Choices renders numbered answer buttons. Once answered, the correct
// answer is shown in green and a wrong pick in red.
func Choices(v modes.View) string {
	var lines []string
	for i, c := range v.Choices {
		key := fmt.Sprint(i + 1)
		if i < len(choiceKeys) {
			key = choiceKeys[i]
		}
		label := c.Label
		if c.Emoji != "" {
			label = c.Emoji + "  " + label
		}
		line := fmt.Sprintf("%s)  %s", key, label)

		answered := v.Phase == modes.PhaseAnswered
		switch {
		case answered && c.Label == v.Answer:
			lines = append(lines, theme.Correct.Render("✓ "+line))
		case answered && i == v.Selected:
			lines = append(lines, theme.Incorrect.Render("✗ "+line))
		case answered:
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+line))
		case i == v.Selected:
			lines = append(lines, theme.Selected.Render("▸ "+line))
		default:
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}

// Letters renders the tappable letters of a segment round with their
// index keys underneath.
func Letters(v modes.View) string {
	boxes := make([]string, 0, len(v.Letters))
	for i, l := range v.Letters {
		style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Bold(true)
		switch {
		case l.Used:
			style = style.Foreground(theme.Success).BorderForeground(theme.Success)
		case l.Selected:
			style = style.Foreground(theme.BgDark).Background(theme.ArcadeYellow).BorderForeground(theme.ArcadeYellow)
		case v.Shake:
			style = style.Foreground(theme.Error).BorderForeground(theme.Error)
		default:
			style = style.Foreground(theme.Text).BorderForeground(theme.Border)
		}
		box := style.Render(l.Text)
		key := lipgloss.PlaceHorizontal(lipgloss.Width(box), lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprint(i+1)))
		boxes = append(boxes, lipgloss.JoinVertical(lipgloss.Center, box, key))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	if v.Shake {
		row = " " + strings.ReplaceAll(row, "\n", "\n ")
	}
	return row
}
