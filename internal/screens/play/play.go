// Package play is the screen where a mode's rounds are played.
package play

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/phonix/internal/audio"
	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/modes"
	"github.com/abhisek/phonix/internal/progress"
	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/screens/summary"
	"github.com/abhisek/phonix/internal/ui/layout"
)

// PlayScreen runs one play session of a mode.
type PlayScreen struct {
	game        *game.Game
	mode        modes.Key
	filter      progress.Filter
	refillDelay time.Duration

	cursor      int
	feedback    *game.Outcome
	seenRound   string
	resting     bool
	listening   bool
	confirmQuit bool
	story       *game.Story
	toast       []string
	notice      string
	errMsg      string
}

var (
	_ screen.Screen          = (*PlayScreen)(nil)
	_ screen.KeyHintProvider = (*PlayScreen)(nil)
	_ screen.BackHandler     = (*PlayScreen)(nil)
)

// New creates a play screen for mode. The session starts in Init.
func New(g *game.Game, mode modes.Key, f progress.Filter, refillDelay time.Duration) *PlayScreen {
	return &PlayScreen{game: g, mode: mode, filter: f, refillDelay: refillDelay}
}

func (s *PlayScreen) Title() string {
	if info, ok := s.game.Registry().Info(s.mode); ok {
		return info.Name
	}
	return "Play"
}

func (s *PlayScreen) HandlesBack() bool { return true }

func (s *PlayScreen) Init() tea.Cmd {
	err := s.game.Start(context.Background(), s.mode, s.filter)
	s.toast = badgeNames(s.game.Summary().Badges)
	return s.afterNext(err)
}

// afterNext interprets the error of starting a round.
func (s *PlayScreen) afterNext(err error) tea.Cmd {
	s.cursor = 0
	s.notice = ""
	switch {
	case err == nil:
		return nil
	case errors.Is(err, game.ErrOutOfHearts):
		s.resting = true
		return s.scheduleRefill()
	default:
		s.errMsg = err.Error()
		return nil
	}
}

func (s *PlayScreen) scheduleRefill() tea.Cmd {
	return tea.Tick(s.refillDelay, func(t time.Time) tea.Msg { return refillMsg(t) })
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case refillMsg:
		s.game.RefillHearts()
		s.resting = false
		s.feedback = nil
		return s, s.afterNext(s.game.Next(context.Background()))

	case listenMsg:
		err := s.game.Handle(context.Background(), modes.Input{Kind: modes.InputSay})
		s.listening = false
		return s, s.afterInput(err)

	case feedbackDoneMsg:
		return s, s.continueAfterFeedback()

	case tea.KeyMsg:
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *PlayScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, s.end()
	}

	if s.confirmQuit {
		switch key {
		case "y":
			return s, s.end()
		case "n", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}
	if key == "esc" {
		if s.story != nil {
			s.story = nil
			return s, nil
		}
		s.confirmQuit = true
		return s, nil
	}

	if s.story != nil {
		s.story = nil
		return s, nil
	}
	if s.resting || s.listening {
		return s, nil
	}
	if s.feedback != nil {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	v := s.game.View()
	switch key {
	case "tab":
		s.toast = nil
		return s, s.afterNext(s.game.Skip(context.Background()))
	case "?":
		if st, earned, ok := s.game.OpenStory(); ok {
			s.story = &st
			s.toast = append(s.toast, badgeNames(earned)...)
		}
		return s, nil
	case "left", "up", "h", "k":
		s.cursor = max(s.cursor-1, 0)
		return s, nil
	case "right", "down", "l", "j":
		s.cursor = min(s.cursor+1, max(len(v.Choices), len(v.Letters))-1)
		return s, nil
	}

	if v.Mode == modes.KeyListen {
		switch key {
		case "s":
			if !s.game.CanListen() {
				s.notice = "Say it needs a microphone. Press y or n instead."
				return s, nil
			}
			s.listening = true
			return s, func() tea.Msg { return listenMsg{} }
		case "g":
			var keys []string
			for _, grp := range s.game.Bank().Groups() {
				keys = append(keys, grp.Key)
			}
			in := modes.Input{Kind: modes.InputChangeGroup, Group: nextGroup(keys, s.game.Filter().Group)}
			return s, s.afterInput(s.game.Handle(context.Background(), in))
		}
	}

	in, ok := inputFor(key, v, s.cursor)
	if !ok {
		return s, nil
	}
	return s, s.afterInput(s.game.Handle(context.Background(), in))
}

// afterInput shows feedback once the round has been scored.
func (s *PlayScreen) afterInput(err error) tea.Cmd {
	s.notice = ""
	switch {
	case errors.Is(err, modes.ErrInvalidInput) && s.mode == modes.KeyBlend:
		s.notice = "Not yet! Listen to every sound first."
	case errors.Is(err, modes.ErrInvalidInput):
		s.notice = "That key does nothing here."
	case errors.Is(err, audio.ErrUnsupported):
		s.notice = "Say it needs a microphone. Press y or n instead."
	case errors.Is(err, game.ErrOutOfHearts):
		s.resting = true
		return s.scheduleRefill()
	case err != nil:
		s.notice = err.Error()
	}

	if !s.game.Answered() {
		return nil
	}
	out, _ := s.game.LastOutcome()
	if out.RoundID == s.seenRound {
		return nil
	}
	s.seenRound = out.RoundID
	s.feedback = &out
	s.toast = badgeNames(out.NewBadges)
	return nil
}

func (s *PlayScreen) continueAfterFeedback() tea.Cmd {
	out := s.feedback
	s.feedback = nil
	s.toast = nil
	if out != nil && out.GameOver {
		s.resting = true
		return s.scheduleRefill()
	}
	return s.afterNext(s.game.Next(context.Background()))
}

// end stops the session and swaps this screen for its summary.
func (s *PlayScreen) end() tea.Cmd {
	s.game.Stop()
	sum := s.game.Summary()
	if sum.Questions == 0 {
		return router.Pop()
	}
	return router.Replace(summary.New(sum))
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{{Key: "Y", Description: "Stop playing"}, {Key: "N", Description: "Keep going"}}
	case s.story != nil, s.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case s.resting:
		return []layout.KeyHint{{Key: "Esc", Description: "Stop"}}
	}

	hints := roundHints(s.game.View())
	return append(hints,
		layout.KeyHint{Key: "?", Description: "Story"},
		layout.KeyHint{Key: "Tab", Description: "Skip"},
		layout.KeyHint{Key: "Esc", Description: "Stop"})
}

func roundHints(v modes.View) []layout.KeyHint {
	switch {
	case len(v.Letters) > 0:
		return []layout.KeyHint{{Key: "1-9", Description: "Tap"}, {Key: "Enter", Description: "Group"}}
	case len(v.Choices) > 0:
		return []layout.KeyHint{{Key: "1-4", Description: "Choose"}, {Key: "R", Description: "Hear again"}}
	case v.Mode == modes.KeyListen:
		return []layout.KeyHint{
			{Key: "R", Description: "Sounds"},
			{Key: "+/-", Description: "Speed"},
			{Key: "S", Description: "Say it"},
			{Key: "G", Description: "Group"},
			{Key: "Y/N", Description: "Got it?"},
		}
	case v.CanAssess:
		return []layout.KeyHint{{Key: "Y/N", Description: "Got it?"}, {Key: "R", Description: "Hear again"}}
	default:
		return []layout.KeyHint{{Key: "Space", Description: "Next sound"}}
	}
}
