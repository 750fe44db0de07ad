package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/router"
	"github.com/abhisek/phonix/internal/screen"
	"github.com/abhisek/phonix/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	lettersEnd   = 600 * time.Millisecond
	bannerEnd    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// The letters of "phonix" drop in one by one before the banner.
var introLetters = []string{"p", "h", "o", "n", "i", "x"}

var sparkleFrames = []string{"★", "✦", "✧"}

type tickMsg time.Time

// WelcomeScreen is the splash shown on launch. Any key moves on to home.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.homeFactory())
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	shown := min(len(introLetters), int(w.elapsed*time.Duration(len(introLetters))/lettersEnd)+1)
	var tiles []string
	for i, l := range introLetters[:shown] {
		color := theme.Primary
		if i%2 == 1 {
			color = theme.Secondary
		}
		tiles = append(tiles, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Foreground(color).
			Bold(true).
			Padding(0, 1).
			Render(l))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, tiles...)
	if w.elapsed >= lettersEnd {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		row = lipgloss.JoinHorizontal(lipgloss.Center, s+"  ", row, "  "+s)
	}
	sections = append(sections, row)

	if w.elapsed >= bannerEnd {
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Let's read together!")
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to start")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
