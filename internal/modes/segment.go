package modes

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/phonix/internal/words"
)

// segment asks the child to split a word into its sounds by tapping the
// letters of each sound and grouping them, left to right.
type segment struct {
	round
	letters  []string
	selected []bool
	used     []bool
	chunks   []string

	// next is the index of the grapheme to be grouped next; pos is the
	// letter where it starts.
	next int
	pos  int

	shake    bool
	mistakes int
}

func newSegment(d deps) Mode { return &segment{round: round{deps: d}} }

func (m *segment) Key() Key { return KeySegment }

func (m *segment) Setup(ctx context.Context, word words.Word, r Round) error {
	if err := m.begin(word, r); err != nil {
		return err
	}
	m.letters = strings.Split(strings.Join(word.Graphemes, ""), "")
	m.selected = make([]bool, len(m.letters))
	m.used = make([]bool, len(m.letters))
	m.chunks = nil
	m.next, m.pos = 0, 0
	m.shake, m.mistakes = false, 0
	m.sayWord(ctx)
	m.await()
	return nil
}

func (m *segment) Handle(ctx context.Context, in Input) error {
	ok, err := m.accepting()
	if !ok {
		return err
	}

	switch in.Kind {
	case InputReplay:
		m.sayWord(ctx)
	case InputTap:
		if in.Index < 0 || in.Index >= len(m.letters) {
			return ErrInvalidInput
		}
		if m.used[in.Index] {
			return nil
		}
		m.shake = false
		m.selected[in.Index] = !m.selected[in.Index]
	case InputGroup:
		m.group(ctx)
	default:
		return ErrInvalidInput
	}
	return nil
}

// group checks the selection against the next grapheme. A mismatch shakes
// and clears the selection without ending the round.
func (m *segment) group(ctx context.Context) {
	want := m.word.Graphemes[m.next]
	n := utf8.RuneCountInString(want)

	match := m.pos+n <= len(m.letters)
	for i := range m.letters {
		inChunk := i >= m.pos && i < m.pos+n
		if m.selected[i] != inChunk {
			match = false
			break
		}
	}

	m.clearSelection()
	if !match {
		m.shake = true
		m.mistakes++
		return
	}

	for i := m.pos; i < m.pos+n; i++ {
		m.used[i] = true
	}
	m.chunks = append(m.chunks, want)
	m.sayPhoneme(ctx, m.next)
	m.next++
	m.pos += n

	if m.next == m.word.Len() {
		m.sayWord(ctx)
		m.answer(true)
	}
}

func (m *segment) clearSelection() {
	for i := range m.selected {
		m.selected[i] = false
	}
}

func (m *segment) View() View {
	v := m.baseView(KeySegment)
	if !m.active {
		return v
	}
	v.Prompt = "Tap the letters of each sound, then group them."
	for i, l := range m.letters {
		v.Letters = append(v.Letters, Letter{Text: l, Selected: m.selected[i], Used: m.used[i]})
	}
	v.Chunks = append([]string(nil), m.chunks...)
	v.Shake = m.shake
	v.Mistakes = m.mistakes
	if m.phase == PhaseAnswered {
		v.Answer = strings.Join(m.word.Graphemes, "-")
	}
	return v
}

func (m *segment) Cleanup() {
	m.end()
	m.letters, m.selected, m.used, m.chunks = nil, nil, nil, nil
	m.next, m.pos = 0, 0
	m.shake, m.mistakes = false, 0
}
