// Package audio defines the speech capabilities the game consumes.
// Playback and recognition engines live outside the game core; the
// implementations here gate, bound and log those capabilities.
package audio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/phonix/internal/words"
)

// DefaultRecognitionTimeout bounds a single Listen call.
const DefaultRecognitionTimeout = 8 * time.Second

// ErrUnsupported is returned by recognizers that are not available.
var ErrUnsupported = errors.New("speech recognition not supported")

// Speaker plays words and single phonemes. Calls return when playback
// completes.
type Speaker interface {
	SpeakWord(ctx context.Context, text string) error
	SpeakPhoneme(ctx context.Context, grapheme string, kind words.PhonemeType) error
}

// Pacer is implemented by speakers whose playback rate can change.
type Pacer interface {
	SetRate(rate float64)
}

// Recognition is what a recognizer heard. Score is 0-100.
type Recognition struct {
	Heard   string
	Score   int
	Correct bool
}

// Recognizer listens for the child saying target. A nil Recognition with
// a nil error means nothing usable was heard.
type Recognizer interface {
	Available() bool
	Listen(ctx context.Context, target string) (*Recognition, error)
}

// Key maps a phoneme to its audio asset key.
func Key(grapheme string, kind words.PhonemeType) string {
	return fmt.Sprintf("phoneme-%s-%s", kind, grapheme)
}

type gate struct {
	next    Speaker
	enabled func() bool
}

// Gate skips playback while enabled reports false.
func Gate(next Speaker, enabled func() bool) Speaker {
	return &gate{next: next, enabled: enabled}
}

func (g *gate) SetRate(rate float64) {
	if p, ok := g.next.(Pacer); ok {
		p.SetRate(rate)
	}
}

func (g *gate) SpeakWord(ctx context.Context, text string) error {
	if !g.enabled() {
		return nil
	}
	return g.next.SpeakWord(ctx, text)
}

func (g *gate) SpeakPhoneme(ctx context.Context, grapheme string, kind words.PhonemeType) error {
	if !g.enabled() {
		return nil
	}
	return g.next.SpeakPhoneme(ctx, grapheme, kind)
}

type timeoutRecognizer struct {
	next    Recognizer
	timeout time.Duration
}

// WithTimeout bounds every Listen call. A call that runs past d resolves
// to no result rather than an error. d <= 0 uses DefaultRecognitionTimeout.
func WithTimeout(next Recognizer, d time.Duration) Recognizer {
	if d <= 0 {
		d = DefaultRecognitionTimeout
	}
	return &timeoutRecognizer{next: next, timeout: d}
}

func (t *timeoutRecognizer) Available() bool {
	return t.next.Available()
}

func (t *timeoutRecognizer) Listen(ctx context.Context, target string) (*Recognition, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	type result struct {
		rec *Recognition
		err error
	}
	done := make(chan result, 1)
	go func() {
		rec, err := t.next.Listen(ctx, target)
		done <- result{rec, err}
	}()

	select {
	case r := <-done:
		if errors.Is(r.err, context.DeadlineExceeded) {
			return nil, nil
		}
		return r.rec, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, nil
		}
		return nil, ctx.Err()
	}
}

// Unavailable is a recognizer for systems without speech recognition.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) Listen(context.Context, string) (*Recognition, error) {
	return nil, ErrUnsupported
}

// Utterance is one thing a Transcript was asked to say.
type Utterance struct {
	Text string
	Key  string
}

// Transcript is a Speaker with no sound device: it logs what it would
// say and keeps the most recent utterances for display.
type Transcript struct {
	mu     sync.Mutex
	logger *zap.Logger
	lines  []Utterance
	limit  int
	rate   float64
}

// NewTranscript returns a Transcript keeping up to limit utterances.
func NewTranscript(logger *zap.Logger, limit int) *Transcript {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit <= 0 {
		limit = 1
	}
	return &Transcript{logger: logger, limit: limit, rate: 1}
}

// SetRate records the playback rate.
func (t *Transcript) SetRate(rate float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rate = rate
	t.logger.Debug("speech rate", zap.Float64("rate", rate))
}

// Rate returns the current playback rate.
func (t *Transcript) Rate() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rate
}

func (t *Transcript) record(u Utterance) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, u)
	if len(t.lines) > t.limit {
		t.lines = t.lines[len(t.lines)-t.limit:]
	}
}

func (t *Transcript) SpeakWord(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.logger.Debug("speak word", zap.String("text", text))
	t.record(Utterance{Text: text, Key: "word-" + text})
	return nil
}

func (t *Transcript) SpeakPhoneme(ctx context.Context, grapheme string, kind words.PhonemeType) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := Key(grapheme, kind)
	t.logger.Debug("speak phoneme", zap.String("key", key))
	t.record(Utterance{Text: grapheme, Key: key})
	return nil
}

// Last returns the most recent utterance.
func (t *Transcript) Last() (Utterance, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.lines) == 0 {
		return Utterance{}, false
	}
	return t.lines[len(t.lines)-1], true
}

// Lines returns the retained utterances, oldest first.
func (t *Transcript) Lines() []Utterance {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Utterance(nil), t.lines...)
}
