package words

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// ErrUnknownWord is returned when a word id is not in the bank.
var ErrUnknownWord = errors.New("unknown word")

// MaxLevel is the highest difficulty level a word can carry.
const MaxLevel = 3

// Bank is an immutable, indexed word dataset.
type Bank struct {
	words   []Word
	groups  []Group
	byID    map[string]int
	byGroup map[string][]int
}

// Default returns the built-in word bank.
func Default() *Bank {
	b, err := NewBank(builtinWords, builtinGroups)
	if err != nil {
		panic(fmt.Sprintf("built-in word bank is invalid: %v", err))
	}
	return b
}

// NewBank validates words and groups and builds the lookup indices.
func NewBank(words []Word, groups []Group) (*Bank, error) {
	if err := validate(words, groups); err != nil {
		return nil, err
	}

	b := &Bank{
		words:   make([]Word, len(words)),
		groups:  slices.Clone(groups),
		byID:    make(map[string]int, len(words)),
		byGroup: make(map[string][]int),
	}
	for i, w := range words {
		w.Graphemes = slices.Clone(w.Graphemes)
		w.Types = slices.Clone(w.Types)
		b.words[i] = w
		b.byID[w.ID] = i
		b.byGroup[w.Group] = append(b.byGroup[w.Group], i)
	}
	return b, nil
}

// validate checks the structural invariants of a word set.
// Returns a combined error describing all problems found.
func validate(words []Word, groups []Group) error {
	var errs []string

	groupSet := make(map[string]bool, len(groups))
	for _, g := range groups {
		if g.Key == "" {
			errs = append(errs, "group with empty key")
			continue
		}
		if groupSet[g.Key] {
			errs = append(errs, fmt.Sprintf("duplicate group key: %q", g.Key))
		}
		groupSet[g.Key] = true
	}

	if len(words) == 0 {
		errs = append(errs, "word bank is empty")
	}

	ids := make(map[string]bool, len(words))
	for _, w := range words {
		if w.ID == "" {
			errs = append(errs, fmt.Sprintf("word %q has an empty id", w.Text))
			continue
		}
		if ids[w.ID] {
			errs = append(errs, fmt.Sprintf("duplicate word id: %q", w.ID))
		}
		ids[w.ID] = true

		if len(w.Graphemes) == 0 {
			errs = append(errs, fmt.Sprintf("word %q has no graphemes", w.ID))
		}
		if len(w.Graphemes) != len(w.Types) {
			errs = append(errs, fmt.Sprintf("word %q has %d graphemes but %d types", w.ID, len(w.Graphemes), len(w.Types)))
		}
		if strings.Join(w.Graphemes, "") != w.Text {
			errs = append(errs, fmt.Sprintf("word %q graphemes %v do not spell %q", w.ID, w.Graphemes, w.Text))
		}
		for _, t := range w.Types {
			if !t.Valid() {
				errs = append(errs, fmt.Sprintf("word %q has unknown phoneme type %q", w.ID, t))
			}
		}
		if w.Level < 1 || w.Level > MaxLevel {
			errs = append(errs, fmt.Sprintf("word %q level must be in [1, %d], got %d", w.ID, MaxLevel, w.Level))
		}
		if !groupSet[w.Group] {
			errs = append(errs, fmt.Sprintf("word %q references unknown group %q", w.ID, w.Group))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("word bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Len returns the number of words in the bank.
func (b *Bank) Len() int {
	return len(b.words)
}

// Get returns the word with the given id.
func (b *Bank) Get(id string) (Word, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Word{}, false
	}
	return b.words[i], true
}

// Lookup returns the word with the given id, or an error wrapping ErrUnknownWord.
func (b *Bank) Lookup(id string) (Word, error) {
	w, ok := b.Get(id)
	if !ok {
		return Word{}, fmt.Errorf("%w: %q", ErrUnknownWord, id)
	}
	return w, nil
}

// All returns every word in dataset order.
func (b *Bank) All() []Word {
	return slices.Clone(b.words)
}

// Groups returns group metadata in teaching order.
func (b *Bank) Groups() []Group {
	return slices.Clone(b.groups)
}

// Group returns the metadata for a group key.
func (b *Bank) Group(key string) (Group, bool) {
	for _, g := range b.groups {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}

// GroupWords returns every word in a group regardless of level.
func (b *Bank) GroupWords(group string) []Word {
	idx := b.byGroup[group]
	result := make([]Word, 0, len(idx))
	for _, i := range idx {
		result = append(result, b.words[i])
	}
	return result
}

// ByGroup returns words whose group is in groups and whose level is at most maxLevel.
func (b *Bank) ByGroup(groups []string, maxLevel int) []Word {
	var result []Word
	for _, w := range b.words {
		if w.Level <= maxLevel && slices.Contains(groups, w.Group) {
			result = append(result, w)
		}
	}
	return result
}

// ByLevel returns words whose level is at most maxLevel.
func (b *Bank) ByLevel(maxLevel int) []Word {
	var result []Word
	for _, w := range b.words {
		if w.Level <= maxLevel {
			result = append(result, w)
		}
	}
	return result
}

// Distractors samples count distinct words other than word. Words from the
// same group are preferred; when the group has fewer than count other words
// the same-level pool is used instead.
func (b *Bank) Distractors(word Word, count int, rng *rand.Rand) []Word {
	if count <= 0 {
		return nil
	}

	var pool []Word
	for _, w := range b.GroupWords(word.Group) {
		if w.ID != word.ID {
			pool = append(pool, w)
		}
	}

	if len(pool) < count {
		pool = pool[:0]
		for _, w := range b.words {
			if w.ID != word.ID && w.Level == word.Level {
				pool = append(pool, w)
			}
		}
	}

	pool = Shuffle(pool, rng)
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// Shuffle returns a uniformly random permutation of a copy of s.
// A nil rng uses the package-level source.
func Shuffle[T any](s []T, rng *rand.Rand) []T {
	out := slices.Clone(s)
	for i := len(out) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		out[i], out[j] = out[j], out[i]
	}
	return out
}
