package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/badges"
	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/gamification"
	"github.com/abhisek/phonix/internal/modes"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/theme"
)

func badgeNames(bs []badges.Badge) []string {
	var out []string
	for _, b := range bs {
		out = append(out, b.Emoji+" "+b.Name)
	}
	return out
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func (s *PlayScreen) View(width, height int) string {
	var body string
	switch {
	case s.errMsg != "":
		body = lipgloss.NewStyle().Foreground(theme.Error).Render("Oops: "+s.errMsg) +
			"\n\n" + theme.Hint.Render("Press any key to go back.")
	case s.confirmQuit:
		body = renderQuitConfirm()
	case s.story != nil:
		body = renderStory(*s.story)
	case s.resting:
		body = renderResting()
	case s.feedback != nil:
		body = renderFeedback(*s.feedback)
	default:
		body = s.renderRound()
	}

	if len(s.toast) > 0 {
		toast := lipgloss.NewStyle().
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render("New badge! " + strings.Join(s.toast, "  "))
		body += "\n\n" + toast
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, centerLines(width, body))
}

func centerLines(width int, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = centered(width, l)
	}
	return strings.Join(lines, "\n")
}

func (s *PlayScreen) renderRound() string {
	v := s.game.View()
	if v.Phase == modes.PhaseIdle {
		return theme.Hint.Render("Getting ready...")
	}

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(v.Prompt),
	}
	if v.Word.Emoji != "" && v.Mode != modes.KeyChoose {
		sections = append(sections, lipgloss.NewStyle().Bold(true).Render(v.Word.Emoji))
	}

	switch {
	case len(v.Letters) > 0:
		if len(v.Chunks) > 0 {
			sections = append(sections, theme.Correct.Render(strings.Join(v.Chunks, " · ")))
		}
		letters := v.Letters
		if s.cursor < len(letters) {
			letters = append([]modes.Letter(nil), letters...)
			letters[s.cursor].Text = "▸" + letters[s.cursor].Text
		}
		lv := v
		lv.Letters = letters
		sections = append(sections, components.Letters(lv))
		if v.Mistakes > 0 {
			sections = append(sections, theme.Hint.Render(fmt.Sprintf("Oops x%d", v.Mistakes)))
		}
	case len(v.Choices) > 0:
		if len(v.Tiles) > 0 {
			sections = append(sections, components.Tiles(v.Tiles))
		}
		cv := v
		if cv.Selected < 0 && v.Phase != modes.PhaseAnswered {
			cv.Selected = s.cursor
		}
		sections = append(sections, components.Choices(cv))
	default:
		sections = append(sections, components.Tiles(v.Tiles))
	}

	if v.Mode == modes.KeyListen {
		sections = append(sections, renderListenStatus(v, s.listening, s.game.Filter().Group))
	}
	if v.CanAssess {
		sections = append(sections, theme.Body.Render("Could you read it?  [Y] yes   [N] not yet"))
	}
	if s.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}

	return strings.Join(sections, "\n\n")
}

func renderListenStatus(v modes.View, listening bool, group string) string {
	if group == "" {
		group = "all sounds"
	}
	line := fmt.Sprintf("Speed %.1fx · Group: %s", v.Speed, group)
	switch {
	case listening:
		line += "\n" + lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render("🎤 Listening...")
	case v.Heard != nil:
		line += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("I heard %q (%d%%)", v.Heard.Heard, v.Heard.Score))
	}
	return theme.Hint.Render(line)
}

func renderFeedback(out game.Outcome) string {
	var b strings.Builder
	if out.Correct {
		b.WriteString(theme.Correct.Render("🎉 Great job!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Nice try!"))
	}
	b.WriteString("\n\n")
	word := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(out.Word.Text)
	b.WriteString(strings.TrimSpace(out.Word.Emoji + "  " + word))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(strings.Join(out.Word.Graphemes, " - ")))

	if r := out.Reward; r != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render(fmt.Sprintf("+%d XP", r.XPEarned)))
		for _, l := range r.Lines {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render(fmt.Sprintf("%s +%d", reasonText(l.Reason), l.XP)))
		}
		if r.LevelUp {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("⬆ Level %d!", r.NewLevel)))
		}
		if r.DailyComplete {
			b.WriteString("\n")
			b.WriteString(theme.Correct.Render("🎯 Daily goal done!"))
		}
	} else {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Heart).
			Render(fmt.Sprintf("♥ %d left", out.Hearts)))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press any key to continue"))
	return b.String()
}

func reasonText(r gamification.Reason) string {
	switch r {
	case gamification.ReasonFast:
		return "Speedy answer"
	case gamification.ReasonStandard:
		return "Correct"
	case gamification.ReasonNewWord:
		return "New word"
	case gamification.ReasonStreak5:
		return "5 in a row"
	case gamification.ReasonStreak10:
		return "10 in a row"
	case gamification.ReasonDailyGoal:
		return "Daily goal"
	default:
		return string(r)
	}
}

func renderStory(st game.Story) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("📖 Word story"))
	b.WriteString("\n\n")

	tiles := make([]modes.Tile, len(st.Sounds))
	for i, snd := range st.Sounds {
		tiles[i] = modes.Tile{Grapheme: snd.Grapheme, Type: snd.Type, Revealed: true}
	}
	b.WriteString(components.Tiles(tiles))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(st.Text()))
	if st.Group.Name != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Sound group: " + strings.TrimSpace(st.Group.Emoji+" "+st.Group.Name)))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press any key to go back"))
	return b.String()
}

func renderResting() string {
	return lipgloss.NewStyle().Foreground(theme.Heart).Bold(true).Render("💔 Out of hearts!") +
		"\n\n" + theme.Hint.Render("Take a breath. Your hearts are filling up...")
}

func renderQuitConfirm() string {
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Stop playing?") +
		"\n" + theme.Hint.Render("Your progress is saved.") +
		"\n\n" + theme.Correct.Render("[Y] Yes, stop") +
		"\n" + lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] Keep going")
}
