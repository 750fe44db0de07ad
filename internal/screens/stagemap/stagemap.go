// Package stagemap shows the curriculum stages with their sound groups
// and lets the child pick a group to practise.
package stagemap

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
	"github.com/abhisek/phonix/internal/words"
)

type rowKind int

const (
	rowStage rowKind = iota
	rowGroup
)

type row struct {
	kind     rowKind
	stage    curriculum.Stage
	group    words.Group
	unlocked bool
	mastery  float64
	seen     bool
}

// StageMapScreen lists every stage and its groups.
type StageMapScreen struct {
	game         *game.Game
	refillDelay  time.Duration
	rows         []row
	cursor       int
	scrollOffset int
}

var (
	_ screen.Screen          = (*StageMapScreen)(nil)
	_ screen.KeyHintProvider = (*StageMapScreen)(nil)
	_ screen.Refresher       = (*StageMapScreen)(nil)
)

func New(g *game.Game, refillDelay time.Duration) *StageMapScreen {
	s := &StageMapScreen{game: g, refillDelay: refillDelay}
	s.load()

	// Start on the first group of the recommended stage.
	rec, hasRec := g.RecommendedStage()
	for i, r := range s.rows {
		if r.kind != rowGroup {
			continue
		}
		if !hasRec || r.stage.ID == rec.ID {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *StageMapScreen) load() {
	mastery := s.game.Store().GroupMastery()
	cur := s.game.Curriculum()

	s.rows = s.rows[:0]
	for _, st := range cur.Stages() {
		unlocked := cur.IsUnlocked(st.ID, mastery)
		s.rows = append(s.rows, row{kind: rowStage, stage: st, unlocked: unlocked, mastery: curriculum.StageMastery(st, mastery)})
		for _, key := range st.Groups {
			grp, ok := s.game.Bank().Group(key)
			if !ok {
				continue
			}
			m, seen := mastery[key]
			s.rows = append(s.rows, row{kind: rowGroup, stage: st, group: grp, unlocked: unlocked, mastery: m, seen: seen})
		}
	}
}

func (s *StageMapScreen) Init() tea.Cmd { return nil }

func (s *StageMapScreen) Refresh() tea.Cmd {
	s.load()
	return nil
}

func (s *StageMapScreen) Title() string { return "Sound Map" }

func (s *StageMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StageMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "enter":
			return s, s.selectGroup()
		case "q":
			return s, router.Pop()
		}
	}
	return s, nil
}

// moveCursor moves by delta, skipping stage headers.
func (s *StageMapScreen) moveCursor(delta int) {
	for next := s.cursor + delta; next >= 0 && next < len(s.rows); next += delta {
		if s.rows[next].kind == rowGroup {
			s.cursor = next
			return
		}
	}
}

func (s *StageMapScreen) selectGroup() tea.Cmd {
	if s.cursor >= len(s.rows) {
		return nil
	}
	r := s.rows[s.cursor]
	if r.kind != rowGroup || !r.unlocked {
		return nil
	}
	return router.Push(newGroupDetail(s.game, r.group, s.refillDelay))
}

func (s *StageMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	top := s.cursor
	if top > 0 && s.rows[top-1].kind == rowStage {
		top--
	}
	if top < s.scrollOffset {
		s.scrollOffset = top
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *StageMapScreen) View(width, height int) string {
	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		if r.kind == rowStage {
			lines = append(lines, renderStage(r, width))
		} else {
			lines = append(lines, renderGroup(r, i == s.cursor))
		}
	}
	return strings.Join(lines, "\n")
}

func renderStage(r row, width int) string {
	icon := "🔒"
	if r.unlocked {
		icon = "🔓"
	}
	name := fmt.Sprintf("%s %s", icon, strings.ToUpper(r.stage.Name))
	if r.unlocked {
		name += lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d%%", int(r.mastery*100)))
	}
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(0, 0, 0, 2).
		Render(name)
}

func renderGroup(r row, selected bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Text)
	status := "new"
	switch {
	case !r.unlocked:
		style = style.Foreground(theme.TextDim)
		status = "locked"
	case r.seen && r.mastery >= curriculum.MasteryThreshold:
		style = style.Foreground(theme.Success)
		status = fmt.Sprintf("%d%% ★", int(r.mastery*100))
	case r.seen:
		status = fmt.Sprintf("%d%%", int(r.mastery*100))
	}
	if selected {
		style = style.Foreground(theme.Primary).Bold(true)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}
	name := fmt.Sprintf("%-22s", strings.TrimSpace(r.group.Emoji+" "+r.group.Name))
	return fmt.Sprintf("    %s%s  %s", cursor, style.Render(name), style.Render(fmt.Sprintf("%8s", status)))
}
