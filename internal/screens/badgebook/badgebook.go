// Package badgebook is the trophy shelf: every badge, earned or not.
package badgebook

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/badges"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
)

// Tracker is the part of the badge tracker this screen reads.
type Tracker interface {
	Earned() []badges.Earned
}

// Filter selects which badges are listed.
type Filter int

const (
	FilterAll Filter = iota
	FilterEarned
	FilterLocked
)

func (f Filter) String() string {
	switch f {
	case FilterEarned:
		return "Earned"
	case FilterLocked:
		return "Still to win"
	default:
		return "All"
	}
}

type entry struct {
	badge  badges.Badge
	earned *badges.Earned
}

// BadgeBookScreen lists the badge catalog.
type BadgeBookScreen struct {
	entries      []entry
	filter       Filter
	scrollOffset int
}

var (
	_ screen.Screen          = (*BadgeBookScreen)(nil)
	_ screen.KeyHintProvider = (*BadgeBookScreen)(nil)
)

func New(t Tracker) *BadgeBookScreen {
	earned := map[string]badges.Earned{}
	for _, e := range t.Earned() {
		earned[e.ID] = e
	}
	s := &BadgeBookScreen{}
	for _, b := range badges.Catalog() {
		en := entry{badge: b}
		if e, ok := earned[b.ID]; ok {
			en.earned = &e
		}
		s.entries = append(s.entries, en)
	}
	return s
}

func (s *BadgeBookScreen) Init() tea.Cmd { return nil }
func (s *BadgeBookScreen) Title() string { return "Badges" }

func (s *BadgeBookScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Filter"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgeBookScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			s.filter = (s.filter + 1) % 3
			s.scrollOffset = 0
		case "shift+tab":
			s.filter = (s.filter + 2) % 3
			s.scrollOffset = 0
		case "up", "k":
			s.scrollOffset = max(s.scrollOffset-1, 0)
		case "down", "j":
			s.scrollOffset = min(s.scrollOffset+1, max(len(s.filtered())-1, 0))
		}
	}
	return s, nil
}

func (s *BadgeBookScreen) filtered() []entry {
	var out []entry
	for _, e := range s.entries {
		switch {
		case s.filter == FilterEarned && e.earned == nil:
		case s.filter == FilterLocked && e.earned != nil:
		default:
			out = append(out, e)
		}
	}
	return out
}

func (s *BadgeBookScreen) earnedCount() int {
	n := 0
	for _, e := range s.entries {
		if e.earned != nil {
			n++
		}
	}
	return n
}

func (s *BadgeBookScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("🏆 %d of %d badges", s.earnedCount(), len(s.entries))))
	b.WriteString("\n\n")

	var tabs []string
	for f := FilterAll; f <= FilterLocked; f++ {
		if f == s.filter {
			tabs = append(tabs, theme.ButtonActive.Render(f.String()))
		} else {
			tabs = append(tabs, theme.ButtonInactive.Render(f.String()))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, " ")))
	b.WriteString("\n\n")

	list := s.filtered()
	if len(list) == 0 {
		msg := "Keep playing to win badges!"
		if s.filter == FilterLocked {
			msg = "You have every badge!"
		}
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).Italic(true).Render(msg))
		return b.String()
	}

	rows := max(height-5, 1)
	end := min(s.scrollOffset+rows, len(list))
	for _, e := range list[s.scrollOffset:end] {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderEntry(e)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderEntry(e entry) string {
	if e.earned == nil {
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("🔒 %-14s %-34s", e.badge.Name, e.badge.Description))
	}
	return lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("%s %-14s %-34s %s", e.badge.Emoji, e.badge.Name, e.badge.Description,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(e.earned.At.Format("Jan 02"))))
}
