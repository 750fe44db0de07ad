package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/modes"
	"github.com/abhisek/phonix/internal/progress"
	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/screens/badgebook"
	"github.com/abhisek/phonix/internal/screens/dashboard"
	"github.com/abhisek/phonix/internal/screens/play"
	"github.com/abhisek/phonix/internal/screens/stagemap"
	"github.com/abhisek/phonix/internal/store"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

// HomeScreen is the main menu: one entry per game mode followed by the
// progress screens.
type HomeScreen struct {
	game        *game.Game
	refillDelay time.Duration

	menu      components.Menu
	stats     stats
	mascot    MascotVariant
	nextStage string
}

var (
	_ screen.Screen    = (*HomeScreen)(nil)
	_ screen.Refresher = (*HomeScreen)(nil)
)

// New creates the home screen. refillDelay is how long play waits before
// refilling hearts after a game over.
func New(g *game.Game, refillDelay time.Duration) *HomeScreen {
	h := &HomeScreen{game: g, refillDelay: refillDelay}

	var items []components.MenuItem
	for _, info := range g.Registry().Infos() {
		key := info.Key
		items = append(items, components.MenuItem{
			Label:  info.Emoji + "  " + strings.ToUpper(info.Name),
			Hint:   info.Description,
			Action: func() tea.Cmd { return h.startMode(key) },
		})
	}
	items = append(items,
		components.MenuItem{Label: "🗺   SOUND MAP", Hint: "Pick a sound group", Action: func() tea.Cmd {
			return router.Push(stagemap.New(g, h.refillDelay))
		}},
		components.MenuItem{Label: "📊  MY PROGRESS", Hint: "Stats for grown-ups", Action: func() tea.Cmd {
			return router.Push(dashboard.New(g))
		}},
		components.MenuItem{Label: "🏆  BADGES", Hint: "Your trophy shelf", Action: func() tea.Cmd {
			return router.Push(badgebook.New(g.Badges()))
		}},
		components.MenuItem{Label: "👋  EXIT", Action: func() tea.Cmd { return tea.Quit }},
	)
	h.menu = components.NewMenu(items)

	// Put the cursor on the last mode played.
	last := modes.Key(g.Store().String(store.KeyCurrentMode))
	for i, k := range g.Registry().Keys() {
		if k == last {
			h.menu.Selected = i
		}
	}

	h.load()
	return h
}

func (h *HomeScreen) startMode(key modes.Key) tea.Cmd {
	st := h.game.Store()
	f := progress.Filter{
		Group:    st.String(store.KeyCurrentGroup),
		MaxLevel: st.Int(store.KeyDifficulty),
	}
	return router.Push(play.New(h.game, key, f, h.refillDelay))
}

func (h *HomeScreen) load() {
	snap := h.game.Store().Snapshot()
	done, goal := h.game.Gamification().Daily()
	h.stats = stats{
		level:     snap.Level,
		xp:        snap.XP,
		hearts:    snap.Hearts,
		streak:    snap.Streak,
		dailyDone: done,
		daily:     goal,
	}

	h.mascot = MascotIdle
	switch {
	case snap.Hearts == 0:
		h.mascot = MascotSleepy
	case goal > 0 && done >= goal:
		h.mascot = MascotCelebrating
	}

	h.nextStage = ""
	if s, ok := h.game.RecommendedStage(); ok {
		h.nextStage = s.Name
	}
}

func (h *HomeScreen) Init() tea.Cmd { return nil }

// Refresh reloads the stats after returning from another screen.
func (h *HomeScreen) Refresh() tea.Cmd {
	h.load()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height+8)
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, RenderMascot(h.mascot)))
	}
	sections = append(sections, components.StatsBar(h.stats.render(compact), cw))
	if h.nextStage != "" {
		next := lipgloss.NewStyle().Foreground(theme.Secondary).Render("Next up: " + h.nextStage)
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, next))
	}
	sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, strings.TrimRight(h.menu.View(), "\n")))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string { return "Home" }

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
