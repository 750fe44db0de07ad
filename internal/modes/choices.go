package modes

import (
	"context"
	"math/rand/v2"
)

// MaxCandidates caps the distractor graphemes collected before the final
// three are drawn.
const MaxCandidates = 6

// candidates collects distinct graphemes in order, skipping correct, until
// MaxCandidates are found.
type candidates struct {
	correct string
	seen    map[string]bool
	list    []string
}

func newCandidates(correct string) *candidates {
	return &candidates{correct: correct, seen: map[string]bool{correct: true}}
}

func (c *candidates) add(g string) {
	if c.full() || g == "" || c.seen[g] {
		return
	}
	c.seen[g] = true
	c.list = append(c.list, g)
}

func (c *candidates) full() bool {
	return len(c.list) >= MaxCandidates
}

// options draws up to three candidates and mixes in the correct grapheme.
func (c *candidates) options(rng *rand.Rand) []string {
	picked := shuffle(c.list, rng)
	if len(picked) > ChoiceCount-1 {
		picked = picked[:ChoiceCount-1]
	}
	return shuffle(append(picked, c.correct), rng)
}

// phonemeChoice is the shared state of the rounds that ask the child to pick
// the grapheme at one position of the word.
type phonemeChoice struct {
	round
	target   int
	options  []string
	selected int
}

func (m *phonemeChoice) reset() {
	m.target = 0
	m.options = nil
	m.selected = -1
}

func (m *phonemeChoice) handle(ctx context.Context, in Input) error {
	ok, err := m.accepting()
	if !ok {
		return err
	}

	switch in.Kind {
	case InputReplay:
		m.sayWord(ctx)
	case InputChoose:
		if in.Index < 0 || in.Index >= len(m.options) {
			return ErrInvalidInput
		}
		m.selected = in.Index
		m.answer(m.options[in.Index] == m.word.Graphemes[m.target])
	default:
		return ErrInvalidInput
	}
	return nil
}

func (m *phonemeChoice) view(key Key, prompt string, blank bool) View {
	v := m.baseView(key)
	if !m.active {
		return v
	}
	v.Prompt = prompt
	v.Selected = m.selected
	v.Tiles = tiles(m.word)
	done := m.phase == PhaseAnswered
	if !done {
		v.Tiles[m.target].Revealed = !blank
		v.Tiles[m.target].Blank = blank
	}
	v.Tiles[m.target].Highlight = true
	for _, g := range m.options {
		v.Choices = append(v.Choices, Choice{Label: g})
	}
	if done {
		v.Answer = m.word.Graphemes[m.target]
	}
	return v
}
