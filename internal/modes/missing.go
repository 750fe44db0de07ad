package modes

import (
	"context"

	"github.com/abhisek/phonix/internal/words"
)

// missing blanks one grapheme and asks the child which sound fills it.
type missing struct {
	phonemeChoice
}

func newMissing(d deps) Mode {
	m := &missing{phonemeChoice{round: round{deps: d}}}
	m.reset()
	return m
}

func (m *missing) Key() Key { return KeyMissing }

func (m *missing) Setup(ctx context.Context, word words.Word, r Round) error {
	if err := m.begin(word, r); err != nil {
		return err
	}
	m.reset()
	m.target = m.rng.IntN(word.Len())
	m.options = m.distractors(word, m.target).options(m.rng)
	m.sayWord(ctx)
	m.await()
	return nil
}

// distractors collects graphemes with the same phoneme type as the blank.
// Other graphemes are only added when fewer than ChoiceCount-1 of the same
// type exist in the bank.
func (m *missing) distractors(word words.Word, blank int) *candidates {
	c := newCandidates(word.Graphemes[blank])
	kind := word.Types[blank]
	others := shuffle(m.bank.All(), m.rng)

	collect := func(sameType bool) {
		for _, w := range others {
			if w.ID == word.ID {
				continue
			}
			for i, g := range w.Graphemes {
				if (w.Types[i] == kind) == sameType {
					c.add(g)
				}
			}
		}
	}

	collect(true)
	if len(c.list) < ChoiceCount-1 {
		collect(false)
	}
	return c
}

func (m *missing) Handle(ctx context.Context, in Input) error {
	return m.handle(ctx, in)
}

func (m *missing) View() View {
	return m.view(KeyMissing, "Which sound is missing?", true)
}

func (m *missing) Cleanup() {
	m.end()
	m.reset()
}
