package modes

import (
	"context"

	"github.com/abhisek/phonix/internal/words"
)

// Position selects which grapheme a position mode asks about.
type Position int

const (
	PositionFirst Position = iota
	PositionLast
	PositionMiddle
)

// Index returns the grapheme index of p in w. The middle sound is the first
// vowel among the interior graphemes, or the arithmetic middle when there is
// none. Words of one or two graphemes are scanned in full.
func (p Position) Index(w words.Word) int {
	n := w.Len()
	switch p {
	case PositionFirst:
		return 0
	case PositionLast:
		return n - 1
	}

	start, end := 0, n
	if n > 2 {
		start, end = 1, n-1
	}
	for i := start; i < end; i++ {
		if w.Types[i].IsVowel() {
			return i
		}
	}
	return n / 2
}

type position struct {
	phonemeChoice
	key    Key
	pos    Position
	prompt string
}

func newPosition(key Key, pos Position, prompt string) func(deps) Mode {
	return func(d deps) Mode {
		m := &position{phonemeChoice: phonemeChoice{round: round{deps: d}}, key: key, pos: pos, prompt: prompt}
		m.reset()
		return m
	}
}

func (m *position) Key() Key { return m.key }

func (m *position) Setup(ctx context.Context, word words.Word, r Round) error {
	if err := m.begin(word, r); err != nil {
		return err
	}
	m.reset()
	m.target = m.pos.Index(word)
	m.options = m.distractors(word).options(m.rng)
	m.sayWord(ctx)
	m.await()
	return nil
}

// distractors takes the grapheme at the same position of other words.
func (m *position) distractors(word words.Word) *candidates {
	c := newCandidates(word.Graphemes[m.target])
	for _, w := range shuffle(m.bank.All(), m.rng) {
		if c.full() {
			break
		}
		if w.ID == word.ID || w.Len() == 0 {
			continue
		}
		c.add(w.Graphemes[m.pos.Index(w)])
	}
	return c
}

func (m *position) Handle(ctx context.Context, in Input) error {
	return m.handle(ctx, in)
}

func (m *position) View() View {
	return m.view(m.key, m.prompt, false)
}

func (m *position) Cleanup() {
	m.end()
	m.reset()
}
