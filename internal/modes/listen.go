package modes

import (
	"context"
	"fmt"

	"github.com/abhisek/phonix/internal/audio"
	"github.com/abhisek/phonix/internal/words"
)

// Speeds offered by the listen mode.
var Speeds = []float64{0.6, 0.8, 1.0}

// listen is the free listen-and-blend mode. The child replays the word at
// any speed, may try reading it aloud, and finally self-assesses.
type listen struct {
	round
	speed float64
	heard *audio.Recognition
}

func newListen(d deps) Mode { return &listen{round: round{deps: d}} }

func (m *listen) Key() Key { return KeyListen }

func (m *listen) Setup(ctx context.Context, word words.Word, r Round) error {
	if err := m.begin(word, r); err != nil {
		return err
	}
	if m.speed == 0 {
		m.speed = 1
	}
	m.heard = nil
	m.sayWord(ctx)
	m.await()
	return nil
}

func (m *listen) Handle(ctx context.Context, in Input) error {
	ok, err := m.accepting()
	if !ok {
		return err
	}

	switch in.Kind {
	case InputReplay:
		for i := range m.word.Graphemes {
			m.sayPhoneme(ctx, i)
		}
		m.sayWord(ctx)
	case InputSpeed:
		if in.Speed <= 0 {
			return ErrInvalidInput
		}
		m.speed = in.Speed
		if p, ok := m.speaker.(audio.Pacer); ok {
			p.SetRate(in.Speed)
		}
	case InputChangeGroup:
		if in.Group == "" {
			return ErrInvalidInput
		}
		if m.onGroup != nil {
			m.onGroup(in.Group)
		}
	case InputSay:
		return m.say(ctx)
	case InputAssess:
		m.answer(in.Yes)
	default:
		return ErrInvalidInput
	}
	return nil
}

// say listens for the word. No recognition leaves the round open.
func (m *listen) say(ctx context.Context) error {
	if m.recognizer == nil || !m.recognizer.Available() {
		return audio.ErrUnsupported
	}
	target := m.word.Text
	rec, err := m.recognizer.Listen(ctx, target)
	if err != nil {
		return fmt.Errorf("listening for %q: %w", target, err)
	}
	// The round may have been cleaned up while listening.
	if !m.active || m.word.Text != target || m.phase != PhaseAwaiting {
		return nil
	}
	m.heard = rec
	if rec != nil && rec.Correct {
		m.answer(true)
	}
	return nil
}

func (m *listen) View() View {
	v := m.baseView(KeyListen)
	if !m.active {
		return v
	}
	v.Prompt = "Listen, then read the word. Could you blend it?"
	v.Tiles = tiles(m.word)
	v.Speed = m.speed
	v.Heard = m.heard
	v.CanAssess = m.phase == PhaseAwaiting
	v.Answer = m.word.Text
	return v
}

func (m *listen) Cleanup() {
	m.end()
	m.heard = nil
}
