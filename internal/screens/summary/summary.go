package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

// SummaryScreen shows how a play session went.
type SummaryScreen struct {
	summary game.Summary
}

var (
	_ screen.Screen          = (*SummaryScreen)(nil)
	_ screen.KeyHintProvider = (*SummaryScreen)(nil)
)

func New(summary game.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Title() string { return "Well Done" }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, router.Pop()
		}
	}
	return s, nil
}

// headline cheers louder for better sessions.
func headline(accuracy float64) string {
	switch {
	case accuracy >= 0.9:
		return "🌟 Superstar reading!"
	case accuracy >= 0.7:
		return "🎉 Great reading!"
	default:
		return "👍 Good practice!"
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), headline(sum.Accuracy)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), fmt.Sprintf("Played for %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Words: %d      Right: %d      Accuracy: %.0f%%",
		sum.Questions, sum.Correct, sum.Accuracy*100)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), stats))
	b.WriteString("\n")
	xp := fmt.Sprintf("+%d XP      Best run: %d", sum.XPEarned, sum.BestRun)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true), xp))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 50)))

	if len(sum.Words) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render("Words")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, w := range sum.Words {
			mark := theme.Correct.Render("✓")
			if w.Correct < w.Attempts {
				mark = theme.Incorrect.Render("✗")
			}
			line := fmt.Sprintf("%-12s %d/%d", strings.TrimSpace(w.Emoji+" "+w.Text), w.Correct, w.Attempts)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, mark+" "+theme.Body.Render(line)))
			b.WriteString("\n")
		}
	}

	if len(sum.Badges) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render("Badges earned")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, bd := range sum.Badges {
			line := fmt.Sprintf("%s %s — %s", bd.Emoji, bd.Name, bd.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
