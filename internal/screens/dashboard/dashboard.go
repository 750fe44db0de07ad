// Package dashboard shows the grown-up view of a child's progress.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/badges"
	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/modes"
	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/screens/parentgate"
	"github.com/abhisek/phonix/internal/store"
	"github.com/abhisek/phonix/internal/ui/components"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

const weakWordCount = 5

// DashboardScreen renders overall stats, group mastery, stage unlocks,
// recent answers and the words that need practice.
type DashboardScreen struct {
	game         *game.Game
	lines        []string
	width        int
	scrollOffset int
}

var (
	_ screen.Screen          = (*DashboardScreen)(nil)
	_ screen.KeyHintProvider = (*DashboardScreen)(nil)
	_ screen.Refresher       = (*DashboardScreen)(nil)
)

func New(g *game.Game) *DashboardScreen {
	return &DashboardScreen{game: g}
}

func (s *DashboardScreen) Init() tea.Cmd { return nil }

func (s *DashboardScreen) Title() string { return "My Progress" }

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "r", Description: "Reset (grown-ups)"},
		{Key: "Esc", Description: "Back"},
	}
}

// Refresh drops the rendered lines so a reset behind the parent gate shows.
func (s *DashboardScreen) Refresh() tea.Cmd {
	s.lines = nil
	s.scrollOffset = 0
	return nil
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		s.scrollOffset = max(s.scrollOffset-1, 0)
	case "down", "j":
		s.scrollOffset = min(s.scrollOffset+1, max(len(s.lines)-1, 0))
	case "pgdown":
		s.scrollOffset = min(s.scrollOffset+10, max(len(s.lines)-1, 0))
	case "pgup":
		s.scrollOffset = max(s.scrollOffset-10, 0)
	case "r":
		return s, router.Push(parentgate.New(s.game))
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.lines == nil || s.width != width {
		s.lines = s.render(width)
		s.width = width
	}
	end := min(s.scrollOffset+max(height, 1), len(s.lines))
	return strings.Join(s.lines[min(s.scrollOffset, end):end], "\n")
}

func section(title string) string {
	return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title)
}

func (s *DashboardScreen) render(width int) []string {
	g := s.game
	stats := g.Progress().OverallStats()
	done, goal := g.Gamification().Daily()
	level := curriculum.LevelInfo(stats.XP)
	inner := components.ContentWidth(width)

	var out []string
	add := func(lines ...string) {
		for _, l := range lines {
			out = append(out, lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Width(inner).Render(l)))
		}
	}

	add("",
		section("⭐ Overall"),
		fmt.Sprintf("Level %d %s    %d XP", level.Level, level.Title(), stats.XP),
		fmt.Sprintf("Day streak %d (best %d)    Today %d/%d",
			stats.Streak, g.Store().Int(store.KeyBestStreak), done, goal),
		fmt.Sprintf("Answers %d    Right %d    Accuracy %.0f%%",
			stats.TotalAttempts, stats.TotalCorrect, stats.Accuracy*100),
		fmt.Sprintf("Words tried %d    Words mastered %d    Badges %d of %d",
			stats.WordsAttempted, stats.WordsMastered, len(g.Badges().Earned()), len(badges.Catalog())),
		"")

	add(section("🔤 Sound groups"))
	for _, gs := range g.Progress().GroupStats() {
		bar := components.ProgressBar{
			Label:       gs.Group.Emoji + " " + gs.Group.Name,
			Percent:     stats.GroupMastery[gs.Group.Key],
			ShowPercent: true,
			Width:       inner,
			LabelWidth:  18,
			MasteredAt:  curriculum.MasteryThreshold,
		}
		add(bar.View())
	}
	add("")

	add(section("🗺 Stages"))
	for _, st := range g.Curriculum().Stages() {
		mark := "🔒"
		if g.Curriculum().IsUnlocked(st.ID, stats.GroupMastery) {
			mark = "🔓"
		}
		add(fmt.Sprintf("%s %-28s %3.0f%%", mark, st.Name,
			curriculum.StageMastery(st, stats.GroupMastery)*100))
	}
	add("")

	add(section("🐢 Needs practice"))
	weak := g.Progress().WeakWords(weakWordCount)
	if len(weak) == 0 {
		add(theme.Hint.Render("Nothing yet"))
	}
	for _, w := range weak {
		add(fmt.Sprintf("%-12s %d/%d  %.0f%%", w.Text, w.Correct, w.Attempts, w.Accuracy.Accuracy*100))
	}
	add("")

	add(section("🕑 Recent answers"))
	if len(stats.RecentHistory) == 0 {
		add(theme.Hint.Render("No answers yet. Time to play!"))
	}
	for _, h := range stats.RecentHistory {
		mark := theme.Correct.Render("✓")
		if !h.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		mode := h.Mode
		if info, ok := g.Registry().Info(modes.Key(h.Mode)); ok {
			mode = info.Name
		}
		add(fmt.Sprintf("%s %-12s %-16s %s", mark, g.Progress().Label(h.WordID), mode,
			theme.Hint.Render(h.Timestamp.Format("Jan 02 15:04"))))
	}
	return out
}
