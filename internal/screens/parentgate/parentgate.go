// Package parentgate guards the grown-up actions behind a numeric PIN.
package parentgate

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/store"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

// PINLength is the number of digits in a parent PIN.
const PINLength = 4

type step int

const (
	stepChoose  step = iota // no PIN yet
	stepConfirm             // typing the new PIN again
	stepVerify
	stepUnlocked
	stepDone
)

// GateScreen asks for the parent PIN, setting one on first use, and then
// offers the progress reset actions.
type GateScreen struct {
	game    *game.Game
	step    step
	input   components.PINInput
	pending string
	message string
	actions components.ButtonRow
}

var (
	_ screen.Screen          = (*GateScreen)(nil)
	_ screen.KeyHintProvider = (*GateScreen)(nil)
)

func New(g *game.Game) *GateScreen {
	s := &GateScreen{game: g, input: components.NewPINInput(PINLength)}
	if g.Store().String(store.KeyParentPIN) == "" {
		s.step = stepChoose
	} else {
		s.step = stepVerify
	}
	s.actions = components.NewButtonRow(
		components.NewButton("Reset progress", true, func() tea.Cmd { return s.reset(false) }),
		components.NewButton("Reset + badges", false, func() tea.Cmd { return s.reset(true) }),
		components.NewButton("Cancel", false, func() tea.Cmd { return router.Pop() }),
	)
	return s
}

func (s *GateScreen) Init() tea.Cmd { return s.input.Init() }

func (s *GateScreen) Title() string { return "Grown-ups Only" }

func (s *GateScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepUnlocked:
		return []layout.KeyHint{{Key: "←→", Description: "Choose"}, {Key: "Enter", Description: "Confirm"}, {Key: "Esc", Description: "Back"}}
	case stepDone:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	default:
		return []layout.KeyHint{{Key: "0-9", Description: "PIN"}, {Key: "Enter", Description: "OK"}, {Key: "Esc", Description: "Back"}}
	}
}

func (s *GateScreen) reset(withBadges bool) tea.Cmd {
	s.game.ResetProgress(withBadges)
	s.step = stepDone
	s.message = "Progress has been reset."
	if withBadges {
		s.message = "Progress and badges have been reset."
	}
	return nil
}

func (s *GateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch s.step {
	case stepUnlocked:
		var cmd tea.Cmd
		s.actions, cmd = s.actions.Update(msg)
		return s, cmd
	case stepDone:
		if isKey {
			return s, router.Pop()
		}
		return s, nil
	}

	if isKey && kmsg.String() == "enter" {
		s.submit()
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *GateScreen) submit() {
	pin := s.input.Value()
	if !s.input.Complete() {
		s.message = "The PIN has 4 digits."
		s.input.Submit(false)
		return
	}

	switch s.step {
	case stepChoose:
		s.pending = pin
		s.step = stepConfirm
		s.message = ""
		s.input.Reset()
	case stepConfirm:
		if pin != s.pending {
			s.step = stepChoose
			s.pending = ""
			s.message = "Those PINs did not match. Try again."
			s.input.Reset()
			return
		}
		if err := s.game.Store().Set(store.KeyParentPIN, pin); err != nil {
			s.message = err.Error()
			return
		}
		s.unlock()
	case stepVerify:
		if pin != s.game.Store().String(store.KeyParentPIN) {
			s.message = "Wrong PIN."
			s.input.Reset()
			s.input.Submit(false)
			return
		}
		s.unlock()
	}
}

func (s *GateScreen) unlock() {
	s.step = stepUnlocked
	s.message = ""
	s.input.Reset()
}

func (s *GateScreen) View(width, height int) string {
	var lines []string
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	switch s.step {
	case stepChoose:
		lines = append(lines, title.Render("🔐 Choose a 4-digit parent PIN"), "", s.input.View())
	case stepConfirm:
		lines = append(lines, title.Render("🔐 Type the PIN again"), "", s.input.View())
	case stepVerify:
		lines = append(lines, title.Render("🔐 Enter the parent PIN"), "", s.input.View())
	case stepUnlocked:
		lines = append(lines,
			title.Render("Reset learning progress?"),
			theme.Hint.Render("XP, levels, streaks and word history will be cleared."),
			theme.Hint.Render("Settings go back to their defaults. The PIN is kept."),
			"",
			s.actions.View())
	case stepDone:
		lines = append(lines, theme.Correct.Render("✓ Done"))
	}
	if s.message != "" {
		style := lipgloss.NewStyle().Foreground(theme.Accent)
		if s.step == stepDone {
			style = theme.Body
		}
		lines = append(lines, "", style.Render(s.message))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(body, "\n"))
}
