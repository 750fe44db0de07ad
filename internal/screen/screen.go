package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/phonix/internal/ui/layout"
)

// Screen is one page of the game.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body, without header and footer.
	View(width, height int) string

	// Title names the screen in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher is implemented by screens that reload their data when they
// become active again after the screen above them is popped.
type Refresher interface {
	Refresh() tea.Cmd
}

// BackHandler is implemented by screens that receive Esc themselves
// instead of letting the app pop them.
type BackHandler interface {
	HandlesBack() bool
}
