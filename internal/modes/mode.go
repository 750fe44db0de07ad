// Package modes implements the mini-game round state machines. Every
// mode follows the same lifecycle: Setup binds a word and presents it,
// Handle feeds child input until the round is answered, the round's
// OnResult fires exactly once, and Cleanup discards the round.
package modes

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/phonix/internal/audio"
	"github.com/abhisek/phonix/internal/words"
)

var (
	// ErrDegenerateWord is returned by Setup for a word with no graphemes.
	ErrDegenerateWord = errors.New("word has no graphemes")

	// ErrNotActive is returned by Handle before Setup or after Cleanup.
	ErrNotActive = errors.New("mode has no active round")

	// ErrUnknownMode is returned by the registry for an unregistered key.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrInvalidInput is returned for input the mode cannot use.
	ErrInvalidInput = errors.New("invalid input for mode")
)

// Key identifies a mode.
type Key string

const (
	KeyBlend   Key = "blend"
	KeyListen  Key = "listen"
	KeyChoose  Key = "choose"
	KeySegment Key = "segment"
	KeyMissing Key = "missing"
	KeyFirst   Key = "first"
	KeyLast    Key = "last"
	KeyMiddle  Key = "middle"
)

// Phase is the round state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePresenting
	PhaseAwaiting
	PhaseAnswered
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePresenting:
		return "presenting"
	case PhaseAwaiting:
		return "awaiting"
	case PhaseAnswered:
		return "answered"
	default:
		return "unknown"
	}
}

// InputKind is the kind of child interaction.
type InputKind int

const (
	// InputReveal plays the next sound of a guided blend.
	InputReveal InputKind = iota
	// InputReplay plays the word again.
	InputReplay
	// InputChoose picks choice Index.
	InputChoose
	// InputTap toggles letter Index in a segment round.
	InputTap
	// InputGroup submits the tapped letters as one sound.
	InputGroup
	// InputAssess is the child's yes/no self-report.
	InputAssess
	// InputSpeed sets the playback rate to Speed.
	InputSpeed
	// InputChangeGroup asks to restart with word group Group.
	InputChangeGroup
	// InputSay listens for the child reading the word aloud.
	InputSay
)

// Input is one child interaction.
type Input struct {
	Kind  InputKind
	Index int
	Yes   bool
	Group string
	Speed float64
}

// Result is the terminal outcome of a round.
type Result struct {
	Correct      bool
	ResponseTime time.Duration
}

// Round carries the collaborators and callbacks for one Setup.
// OnGroupChange is only used by the listen mode.
type Round struct {
	Speaker       audio.Speaker
	Recognizer    audio.Recognizer
	OnResult      func(Result)
	OnGroupChange func(group string)
}

// Mode is one mini-game.
type Mode interface {
	Key() Key

	// Setup discards any previous round and starts a new one for word.
	Setup(ctx context.Context, word words.Word, r Round) error

	// Handle applies one input. Input after the round is answered is
	// ignored.
	Handle(ctx context.Context, in Input) error

	// View describes the round for rendering.
	View() View

	// CurrentWord returns the word of the active round.
	CurrentWord() (words.Word, bool)

	// Cleanup ends the round. It is safe to call at any time, any number
	// of times.
	Cleanup()
}
