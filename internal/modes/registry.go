package modes

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/phonix/internal/words"
)

// Info describes a mode for menus.
type Info struct {
	Key         Key
	Name        string
	Description string
	Emoji       string
}

type entry struct {
	info  Info
	build func(deps) Mode
}

var entries = []entry{
	{Info{KeyBlend, "Blend", "Hear each sound, then blend the word", "🧩"}, newBlend},
	{Info{KeyListen, "Listen & Blend", "Play the word at any speed and read it", "👂"}, newListen},
	{Info{KeyChoose, "Hear & Choose", "Pick the word you hear", "🎯"}, newChoose},
	{Info{KeySegment, "Segment It", "Split the word into its sounds", "✂️"}, newSegment},
	{Info{KeyMissing, "Missing Sound", "Find the sound that fills the gap", "🔍"}, newMissing},
	{Info{KeyFirst, "First Sound", "Which sound does the word start with?", "1️⃣"},
		newPosition(KeyFirst, PositionFirst, "Which sound comes first?")},
	{Info{KeyLast, "Last Sound", "Which sound does the word end with?", "🔚"},
		newPosition(KeyLast, PositionLast, "Which sound comes last?")},
	{Info{KeyMiddle, "Middle Sound", "Which sound is in the middle?", "🎵"},
		newPosition(KeyMiddle, PositionMiddle, "Which sound is in the middle?")},
}

// Registry builds modes by key.
type Registry struct {
	deps deps
}

// NewRegistry returns a registry whose modes draw from bank. A nil rng or
// now uses a randomly seeded source and time.Now.
func NewRegistry(bank *words.Bank, rng *rand.Rand, now func() time.Time) *Registry {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &Registry{deps: deps{bank: bank, rng: rng, now: now}}
}

// Keys returns every registered key in menu order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, len(entries))
	for i, e := range entries {
		keys[i] = e.info.Key
	}
	return keys
}

// Infos returns the metadata of every mode in menu order.
func (r *Registry) Infos() []Info {
	infos := make([]Info, len(entries))
	for i, e := range entries {
		infos[i] = e.info
	}
	return infos
}

// Info returns the metadata for key.
func (r *Registry) Info(key Key) (Info, bool) {
	for _, e := range entries {
		if e.info.Key == key {
			return e.info, true
		}
	}
	return Info{}, false
}

// New constructs a fresh mode.
func (r *Registry) New(key Key) (Mode, error) {
	for _, e := range entries {
		if e.info.Key == key {
			return e.build(r.deps), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, key)
}

// ParseKey validates s as a mode key.
func ParseKey(s string) (Key, error) {
	for _, e := range entries {
		if string(e.info.Key) == s {
			return e.info.Key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
