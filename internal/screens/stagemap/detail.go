package stagemap

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/modes"
	"github.com/abhisek/phonix/internal/progress"
	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/screens/play"
	"github.com/abhisek/phonix/internal/store"
	"github.com/abhisek/phonix/internal/ui/layout"
	"github.com/abhisek/phonix/internal/ui/theme"
	"github.com/abhisek/phonix/internal/words"
)

// GroupDetailScreen lists the words of one group and starts play on it.
type GroupDetailScreen struct {
	game        *game.Game
	group       words.Group
	refillDelay time.Duration
}

var (
	_ screen.Screen          = (*GroupDetailScreen)(nil)
	_ screen.KeyHintProvider = (*GroupDetailScreen)(nil)
)

func newGroupDetail(g *game.Game, group words.Group, refillDelay time.Duration) *GroupDetailScreen {
	return &GroupDetailScreen{game: g, group: group, refillDelay: refillDelay}
}

func (d *GroupDetailScreen) Init() tea.Cmd { return nil }
func (d *GroupDetailScreen) Title() string { return d.group.Name }

func (d *GroupDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play " + d.modeInfo().Name},
		{Key: "Esc", Description: "Back"},
	}
}

// modeInfo is the mode played from here: the last one the child chose.
func (d *GroupDetailScreen) modeInfo() modes.Info {
	reg := d.game.Registry()
	if info, ok := reg.Info(modes.Key(d.game.Store().String(store.KeyCurrentMode))); ok {
		return info
	}
	info, _ := reg.Info(modes.KeyBlend)
	return info
}

func (d *GroupDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		f := progress.Filter{Group: d.group.Key}
		return d, router.Replace(play.New(d.game, d.modeInfo().Key, f, d.refillDelay))
	}
	return d, nil
}

func (d *GroupDetailScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("  %s  %s", d.group.Emoji, d.group.Name)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("  " + d.group.Description))
	b.WriteString("\n\n")

	prog := d.game.Progress()
	for _, w := range d.game.Bank().GroupWords(d.group.Key) {
		acc := prog.WordAccuracy(w.ID)
		status := theme.Hint.Render("new")
		if acc.Attempts > 0 {
			status = lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("%d/%d  %3.0f%%", acc.Correct, acc.Attempts, acc.Accuracy*100))
		}
		word := fmt.Sprintf("%-14s", strings.TrimSpace(w.Emoji+" "+w.Text))
		sounds := theme.Hint.Render(fmt.Sprintf("%-14s", strings.Join(w.Graphemes, "-")))
		b.WriteString(fmt.Sprintf("    %s %s %s\n", theme.Body.Render(word), sounds, status))
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  Press Enter to play %s with these words.", d.modeInfo().Name)))
	return b.String()
}
