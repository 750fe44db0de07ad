package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // daily goal done
	MascotSleepy                    // out of hearts
)

const mascotIdle = ` ,___,
 (O,O)
 /)_)
  ""  `

const mascotCelebrating = `\,___,/
 (^,^)
 /)_)
  ""  `

const mascotSleepy = ` ,___,
 (-,-) z
 /)_)
  ""  `

// RenderMascot returns the owl art for variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.ArcadeYellow
	case MascotSleepy:
		art, fg = mascotSleepy, theme.TextDim
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
