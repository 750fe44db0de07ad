// Package app is the root Bubble Tea model: a screen stack framed by the
// status header and key hint footer.
package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/modes"
	"github.com/abhisek/phonix/internal/progress"
	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/screens/home"
	"github.com/abhisek/phonix/internal/screens/play"
	"github.com/abhisek/phonix/internal/screens/welcome"
	"github.com/abhisek/phonix/internal/store"
	"github.com/abhisek/phonix/internal/ui/layout"
)

// Options selects the first screen.
type Options struct {
	RefillDelay time.Duration

	// StartMode, when set, opens straight into a play session of that
	// mode over Group. The welcome animation is skipped.
	StartMode modes.Key
	Group     string

	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	game   *game.Game
	router *router.Router
	start  screen.Screen
	width  int
	height int
}

func newAppModel(g *game.Game, opts Options) AppModel {
	newHome := func() screen.Screen { return home.New(g, opts.RefillDelay) }

	m := AppModel{game: g}
	switch {
	case opts.StartMode != "":
		m.router = router.New(newHome())
		m.start = play.New(g, opts.StartMode, progress.Filter{
			Group:    opts.Group,
			MaxLevel: g.Store().Int(store.KeyDifficulty),
		}, opts.RefillDelay)
	case opts.SkipWelcome:
		m.router = router.New(newHome())
	default:
		m.router = router.New(welcome.New(newHome))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.start != nil {
		return m.router.Push(m.start)
	}
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.game.Stop()
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) status() layout.Status {
	snap := m.game.Store().Snapshot()
	return layout.Status{
		Level:     curriculum.LevelInfo(snap.XP).Level,
		XP:        snap.XP,
		Hearts:    snap.Hearts,
		MaxHearts: curriculum.MaxHearts,
		DayStreak: snap.Streak,
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.status(), m.width)

	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, g *game.Game, opts Options) error {
	if opts.StartMode != "" {
		if _, ok := g.Registry().Info(opts.StartMode); !ok {
			return fmt.Errorf("unknown mode %q", opts.StartMode)
		}
	}
	p := tea.NewProgram(newAppModel(g, opts), tea.WithContext(ctx))
	_, err := p.Run()
	g.Stop()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
