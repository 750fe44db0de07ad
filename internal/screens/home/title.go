package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

const titleFull = ` █▀█ █ █ █▀█ █▄ █ █ ▀▄▀
 █▀▀ █▀█ █▄█ █ ▀█ █ █ █`

const titleCompact = "P · H · O · N · I · X"

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(art))
}

// stats is the player summary shown in the home stats bar.
type stats struct {
	level, xp        int
	hearts           int
	streak           int
	dailyDone, daily int
}

func (s stats) render(compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	goalStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	if s.dailyDone >= s.daily {
		goalStyle = goalStyle.Foreground(theme.Success)
	}

	hearts := layout.Hearts(s.hearts, curriculum.MaxHearts)
	if compact {
		return fmt.Sprintf("%s %s %s %s",
			levelStyle.Render(fmt.Sprintf("L%d", s.level)),
			hearts,
			streakStyle.Render(fmt.Sprintf("★%d", s.streak)),
			goalStyle.Render(fmt.Sprintf("🎯%d/%d", s.dailyDone, s.daily)))
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		levelStyle.Render(fmt.Sprintf("LEVEL %d · %d XP", s.level, s.xp)),
		hearts,
		streakStyle.Render(fmt.Sprintf("★ %d DAY", s.streak)),
		goalStyle.Render(fmt.Sprintf("🎯 %d/%d TODAY", s.dailyDone, s.daily)))
}
