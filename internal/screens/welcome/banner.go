package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗  ██╗ ██████╗ ███╗   ██╗██╗██╗  ██╗
 ██╔══██╗██║  ██║██╔═══██╗████╗  ██║██║╚██╗██╔╝
 ██████╔╝███████║██║   ██║██╔██╗ ██║██║ ╚███╔╝
 ██╔═══╝ ██╔══██║██║   ██║██║╚██╗██║██║ ██╔██╗
 ██║     ██║  ██║╚██████╔╝██║ ╚████║██║██╔╝ ██╗
 ╚═╝     ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝╚═╝╚═╝  ╚═╝`

const bannerCompact = "P H O N I X"

// bannerMinWidth is the narrowest terminal that fits the block letters.
const bannerMinWidth = 50

// RenderBanner returns the PHONIX banner, or a spaced-out word on narrow
// terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
