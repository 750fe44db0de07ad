package modes

import (
	"context"

	"github.com/abhisek/phonix/internal/words"
)

// blend reveals one sound at a time, plays the blended word, then asks the
// child whether they could blend it.
type blend struct {
	round
	revealed int
}

func newBlend(d deps) Mode { return &blend{round: round{deps: d}} }

func (m *blend) Key() Key { return KeyBlend }

func (m *blend) Setup(ctx context.Context, word words.Word, r Round) error {
	if err := m.begin(word, r); err != nil {
		return err
	}
	m.revealed = 0
	m.await()
	return nil
}

func (m *blend) Handle(ctx context.Context, in Input) error {
	ok, err := m.accepting()
	if !ok {
		return err
	}

	switch in.Kind {
	case InputReveal:
		if m.revealed >= m.word.Len() {
			return nil
		}
		m.sayPhoneme(ctx, m.revealed)
		m.revealed++
		if m.revealed == m.word.Len() {
			m.sayWord(ctx)
		}
	case InputReplay:
		if m.revealed < m.word.Len() {
			return ErrInvalidInput
		}
		m.sayWord(ctx)
	case InputAssess:
		if m.revealed < m.word.Len() {
			return ErrInvalidInput
		}
		m.answer(in.Yes)
	default:
		return ErrInvalidInput
	}
	return nil
}

func (m *blend) View() View {
	v := m.baseView(KeyBlend)
	if !m.active {
		return v
	}
	v.Prompt = "Tap to hear each sound, then blend them together!"
	v.Tiles = tiles(m.word)
	done := m.phase == PhaseAnswered
	for i := range v.Tiles {
		v.Tiles[i].Revealed = done || i < m.revealed
		v.Tiles[i].Highlight = !done && i == m.revealed-1
	}
	v.CanAssess = !done && m.revealed == m.word.Len()
	if m.revealed == m.word.Len() {
		v.Answer = m.word.Text
	}
	return v
}

func (m *blend) Cleanup() {
	m.end()
	m.revealed = 0
}
