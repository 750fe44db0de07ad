package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/phonix/internal/words"
)

// Color palette, bright and warm for young readers.
var (
	Primary      = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15") // Sunflower
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Sky
	Heart        = lipgloss.Color("#EF4444") // Red
)

// Sound colors tint grapheme tiles by phoneme type.
var (
	Consonant   = lipgloss.Color("#60A5FA")
	Vowel       = lipgloss.Color("#F87171")
	LongVowel   = lipgloss.Color("#FB923C")
	Digraph     = lipgloss.Color("#34D399")
	Blend       = lipgloss.Color("#A78BFA")
	SilentE     = lipgloss.Color("#64748B")
	RControlled = lipgloss.Color("#F472B6")
	Diphthong   = lipgloss.Color("#FBBF24")
)

// PhonemeColor returns the tile color for a phoneme type.
func PhonemeColor(t words.PhonemeType) color.Color {
	switch t {
	case words.Consonant:
		return Consonant
	case words.ShortVowel:
		return Vowel
	case words.LongVowel:
		return LongVowel
	case words.Digraph:
		return Digraph
	case words.Blend:
		return Blend
	case words.SilentE:
		return SilentE
	case words.RControlled:
		return RControlled
	case words.Diphthong:
		return Diphthong
	default:
		return Text
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
