package game

import (
	"strings"

	"github.com/abhisek/phonix/internal/audio"
	"github.com/abhisek/phonix/internal/badges"
	"github.com/abhisek/phonix/internal/words"
)

// Story is the sound-by-sound breakdown of a word shown on request.
type Story struct {
	Word   words.Word
	Group  words.Group
	Sounds []Sound
}

// Sound is one grapheme of a story.
type Sound struct {
	Grapheme string
	Type     words.PhonemeType
	AudioKey string
}

// Text renders the story as "sh + i + p = ship".
func (s Story) Text() string {
	parts := make([]string, len(s.Sounds))
	for i, snd := range s.Sounds {
		parts[i] = snd.Grapheme
	}
	return strings.Join(parts, " + ") + " = " + s.Word.Text
}

// OpenStory returns the story of the current round's word and returns any
// badge earned by opening it.
func (g *Game) OpenStory() (Story, []badges.Badge, bool) {
	w, ok := g.Word()
	if !ok {
		return Story{}, nil, false
	}
	st := Story{Word: w}
	st.Group, _ = g.bank.Group(w.Group)
	for i, gr := range w.Graphemes {
		st.Sounds = append(st.Sounds, Sound{Grapheme: gr, Type: w.Types[i], AudioKey: audio.Key(gr, w.Types[i])})
	}

	g.badges.MarkStoryOpened()
	fresh := g.checkBadges()
	g.earned = append(g.earned, fresh...)
	return st, fresh, true
}
