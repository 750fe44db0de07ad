package modes

import (
	"context"

	"github.com/abhisek/phonix/internal/words"
)

// ChoiceCount is the number of answers offered by multiple-choice modes.
const ChoiceCount = 4

// choose plays a word and asks the child to pick it from four pictures.
type choose struct {
	round
	choices  []words.Word
	selected int
}

func newChoose(d deps) Mode { return &choose{round: round{deps: d}, selected: -1} }

func (m *choose) Key() Key { return KeyChoose }

func (m *choose) Setup(ctx context.Context, word words.Word, r Round) error {
	if err := m.begin(word, r); err != nil {
		return err
	}
	options := append(m.bank.Distractors(word, ChoiceCount-1, m.rng), word)
	m.choices = words.Shuffle(options, m.rng)
	m.selected = -1
	m.sayWord(ctx)
	m.await()
	return nil
}

func (m *choose) Handle(ctx context.Context, in Input) error {
	ok, err := m.accepting()
	if !ok {
		return err
	}

	switch in.Kind {
	case InputReplay:
		m.sayWord(ctx)
	case InputChoose:
		if in.Index < 0 || in.Index >= len(m.choices) {
			return ErrInvalidInput
		}
		m.selected = in.Index
		m.answer(m.choices[in.Index].ID == m.word.ID)
	default:
		return ErrInvalidInput
	}
	return nil
}

func (m *choose) View() View {
	v := m.baseView(KeyChoose)
	if !m.active {
		return v
	}
	v.Prompt = "Which word did you hear?"
	v.Selected = m.selected
	for _, w := range m.choices {
		v.Choices = append(v.Choices, Choice{Label: w.Text, Emoji: w.Emoji})
	}
	if m.phase == PhaseAnswered {
		v.Answer = m.word.Text
	}
	return v
}

func (m *choose) Cleanup() {
	m.end()
	m.choices = nil
	m.selected = -1
}
