package modes

import (
	"github.com/abhisek/phonix/internal/audio"
	"github.com/abhisek/phonix/internal/words"
)

// Tile is one grapheme of the displayed word.
type Tile struct {
	Grapheme  string
	Type      words.PhonemeType
	Revealed  bool
	Blank     bool
	Highlight bool
}

// Choice is one selectable answer.
type Choice struct {
	Label string
	Emoji string
}

// Letter is one tappable letter of a segment round.
type Letter struct {
	Text     string
	Selected bool
	Used     bool
}

// View is a presentation-neutral snapshot of a round.
type View struct {
	Mode   Key
	Phase  Phase
	Word   words.Word
	Prompt string

	Tiles   []Tile
	Choices []Choice
	Letters []Letter
	Chunks  []string

	// Selected is the chosen choice index, or -1.
	Selected int

	// Shake is set after a wrong segment grouping.
	Shake    bool
	Mistakes int
	Speed    float64
	Heard    *audio.Recognition

	// CanAssess is set once the self-report buttons should be offered.
	CanAssess bool

	// Answer and Correct are filled in once the round is answered.
	Answer  string
	Correct bool
}

func tiles(w words.Word) []Tile {
	out := make([]Tile, len(w.Graphemes))
	for i, g := range w.Graphemes {
		out[i] = Tile{Grapheme: g, Type: w.Types[i], Revealed: true}
	}
	return out
}
