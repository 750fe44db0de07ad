package modes

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/abhisek/phonix/internal/audio"
	"github.com/abhisek/phonix/internal/words"
)

// deps are the shared collaborators modes are built with.
type deps struct {
	bank *words.Bank
	rng  *rand.Rand
	now  func() time.Time
}

// round is the lifecycle state every mode embeds.
type round struct {
	deps

	active     bool
	word       words.Word
	phase      Phase
	result     *latch
	speaker    audio.Speaker
	recognizer audio.Recognizer
	onGroup    func(string)
	started    time.Time
	correct    bool
}

// begin resets the round for word. The caller finishes its own setup and
// then calls await.
func (r *round) begin(word words.Word, rd Round) error {
	r.end()
	if len(word.Graphemes) == 0 || len(word.Graphemes) != len(word.Types) {
		return ErrDegenerateWord
	}
	r.active = true
	r.word = word
	r.phase = PhasePresenting
	r.result = newLatch(rd.OnResult)
	r.speaker = rd.Speaker
	r.recognizer = rd.Recognizer
	r.onGroup = rd.OnGroupChange
	return nil
}

func (r *round) await() {
	r.phase = PhaseAwaiting
	r.started = r.now()
}

// accepting guards Handle. It returns ErrNotActive for an inactive mode
// and false for an answered round.
func (r *round) accepting() (bool, error) {
	if !r.active {
		return false, ErrNotActive
	}
	return r.phase == PhaseAwaiting, nil
}

// answer ends the round and delivers the result once.
func (r *round) answer(correct bool) {
	if r.phase == PhaseAnswered {
		return
	}
	r.phase = PhaseAnswered
	r.correct = correct
	r.result.fire(Result{Correct: correct, ResponseTime: r.now().Sub(r.started)})
}

func (r *round) end() {
	r.active = false
	r.word = words.Word{}
	r.phase = PhaseIdle
	r.result = nil
	r.speaker = nil
	r.recognizer = nil
	r.onGroup = nil
	r.correct = false
}

func (r *round) CurrentWord() (words.Word, bool) {
	if !r.active {
		return words.Word{}, false
	}
	return r.word, true
}

func (r *round) sayWord(ctx context.Context) {
	if r.speaker != nil {
		_ = r.speaker.SpeakWord(ctx, r.word.Text)
	}
}

func (r *round) sayPhoneme(ctx context.Context, i int) {
	if r.speaker != nil {
		_ = r.speaker.SpeakPhoneme(ctx, r.word.Graphemes[i], r.word.Types[i])
	}
}

func (r *round) baseView(key Key) View {
	v := View{Mode: key, Phase: r.phase, Selected: -1}
	if !r.active {
		return v
	}
	v.Word = r.word
	if r.phase == PhaseAnswered {
		v.Correct = r.correct
	}
	return v
}

func shuffle[T any](s []T, rng *rand.Rand) []T {
	return words.Shuffle(s, rng)
}
