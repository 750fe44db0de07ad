package modes

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/phonix/internal/audio"
	"github.com/abhisek/phonix/internal/words"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testRegistry(t *testing.T) (*Registry, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)}
	return NewRegistry(words.Default(), rand.New(rand.NewPCG(1, 2)), c.now), c
}

func mustWord(t *testing.T, id string) words.Word {
	t.Helper()
	w, ok := words.Default().Get(id)
	require.True(t, ok, "word %q", id)
	return w
}

type recorder struct {
	results []Result
	groups  []string
}

func (r *recorder) round(sp audio.Speaker) Round {
	return Round{
		Speaker:       sp,
		OnResult:      func(res Result) { r.results = append(r.results, res) },
		OnGroupChange: func(g string) { r.groups = append(r.groups, g) },
	}
}

func choiceIndex(v View, label string) int {
	for i, c := range v.Choices {
		if c.Label == label {
			return i
		}
	}
	return -1
}

func targetIndex(v View) int {
	for i, tile := range v.Tiles {
		if tile.Highlight {
			return i
		}
	}
	return -1
}

// solve drives an active round to a correct answer.
func solve(t *testing.T, m Mode, w words.Word) {
	t.Helper()
	ctx := context.Background()
	switch m.Key() {
	case KeyBlend:
		for range w.Graphemes {
			require.NoError(t, m.Handle(ctx, Input{Kind: InputReveal}))
		}
		require.NoError(t, m.Handle(ctx, Input{Kind: InputAssess, Yes: true}))
	case KeyListen:
		require.NoError(t, m.Handle(ctx, Input{Kind: InputAssess, Yes: true}))
	case KeyChoose:
		i := choiceIndex(m.View(), w.Text)
		require.GreaterOrEqual(t, i, 0)
		require.NoError(t, m.Handle(ctx, Input{Kind: InputChoose, Index: i}))
	case KeySegment:
		pos := 0
		for _, g := range w.Graphemes {
			for range g {
				require.NoError(t, m.Handle(ctx, Input{Kind: InputTap, Index: pos}))
				pos++
			}
			require.NoError(t, m.Handle(ctx, Input{Kind: InputGroup}))
		}
	default:
		v := m.View()
		target := targetIndex(v)
		require.GreaterOrEqual(t, target, 0)
		i := choiceIndex(v, w.Graphemes[target])
		require.GreaterOrEqual(t, i, 0)
		require.NoError(t, m.Handle(ctx, Input{Kind: InputChoose, Index: i}))
	}
}

func TestRegistry(t *testing.T) {
	reg, _ := testRegistry(t)

	keys := reg.Keys()
	assert.Equal(t, []Key{KeyBlend, KeyListen, KeyChoose, KeySegment, KeyMissing, KeyFirst, KeyLast, KeyMiddle}, keys)
	assert.Len(t, reg.Infos(), len(keys))

	for _, k := range keys {
		m, err := reg.New(k)
		require.NoError(t, err)
		assert.Equal(t, k, m.Key())

		info, ok := reg.Info(k)
		require.True(t, ok)
		assert.NotEmpty(t, info.Name)
	}

	_, err := reg.New("karaoke")
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = ParseKey("karaoke")
	assert.ErrorIs(t, err, ErrUnknownMode)
	k, err := ParseKey("segment")
	require.NoError(t, err)
	assert.Equal(t, KeySegment, k)
}

func TestModes_SingleResult(t *testing.T) {
	reg, c := testRegistry(t)
	ctx := context.Background()

	for _, key := range reg.Keys() {
		t.Run(string(key), func(t *testing.T) {
			m, err := reg.New(key)
			require.NoError(t, err)
			w := mustWord(t, "ship")
			rec := &recorder{}

			require.NoError(t, m.Setup(ctx, w, rec.round(nil)))
			assert.Equal(t, PhaseAwaiting, m.View().Phase)
			c.advance(2 * time.Second)
			solve(t, m, w)

			// Rapid second answer of every kind is ignored.
			for _, in := range []Input{
				{Kind: InputAssess, Yes: false},
				{Kind: InputChoose, Index: 0},
				{Kind: InputGroup},
				{Kind: InputReveal},
			} {
				assert.NoError(t, m.Handle(ctx, in))
			}

			require.Len(t, rec.results, 1)
			assert.True(t, rec.results[0].Correct)
			assert.Equal(t, 2*time.Second, rec.results[0].ResponseTime)

			v := m.View()
			assert.Equal(t, PhaseAnswered, v.Phase)
			assert.True(t, v.Correct)
			assert.NotEmpty(t, v.Answer)
		})
	}
}

func TestModes_Lifecycle(t *testing.T) {
	reg, _ := testRegistry(t)
	ctx := context.Background()

	for _, key := range reg.Keys() {
		t.Run(string(key), func(t *testing.T) {
			m, err := reg.New(key)
			require.NoError(t, err)

			m.Cleanup()
			_, ok := m.CurrentWord()
			assert.False(t, ok)
			assert.ErrorIs(t, m.Handle(ctx, Input{Kind: InputReplay}), ErrNotActive)

			rec := &recorder{}
			err = m.Setup(ctx, words.Word{ID: "empty"}, rec.round(nil))
			assert.ErrorIs(t, err, ErrDegenerateWord)
			_, ok = m.CurrentWord()
			assert.False(t, ok)

			first := &recorder{}
			require.NoError(t, m.Setup(ctx, mustWord(t, "cat"), first.round(nil)))
			second := &recorder{}
			dog := mustWord(t, "dog")
			require.NoError(t, m.Setup(ctx, dog, second.round(nil)))

			got, ok := m.CurrentWord()
			require.True(t, ok)
			assert.Equal(t, "dog", got.ID)

			solve(t, m, dog)
			assert.Empty(t, first.results)
			assert.Len(t, second.results, 1)

			m.Cleanup()
			m.Cleanup()
			_, ok = m.CurrentWord()
			assert.False(t, ok)
			assert.Equal(t, PhaseIdle, m.View().Phase)
			assert.ErrorIs(t, m.Handle(ctx, Input{Kind: InputReplay}), ErrNotActive)
		})
	}
}

func TestModes_SkipHasNoResult(t *testing.T) {
	reg, _ := testRegistry(t)
	ctx := context.Background()

	for _, key := range reg.Keys() {
		m, err := reg.New(key)
		require.NoError(t, err)
		rec := &recorder{}
		require.NoError(t, m.Setup(ctx, mustWord(t, "cat"), rec.round(nil)))
		m.Cleanup()
		assert.Empty(t, rec.results, key)
	}
}

func TestBlend(t *testing.T) {
	reg, _ := testRegistry(t)
	ctx := context.Background()
	m, err := reg.New(KeyBlend)
	require.NoError(t, err)

	tr := audio.NewTranscript(nil, 10)
	rec := &recorder{}
	w := mustWord(t, "cat")
	require.NoError(t, m.Setup(ctx, w, rec.round(tr)))

	assert.ErrorIs(t, m.Handle(ctx, Input{Kind: InputAssess, Yes: true}), ErrInvalidInput)
	assert.ErrorIs(t, m.Handle(ctx, Input{Kind: InputChoose}), ErrInvalidInput)

	v := m.View()
	for _, tile := range v.Tiles {
		assert.False(t, tile.Revealed)
	}
	assert.False(t, v.CanAssess)

	require.NoError(t, m.Handle(ctx, Input{Kind: InputReveal}))
	v = m.View()
	assert.True(t, v.Tiles[0].Revealed)
	assert.True(t, v.Tiles[0].Highlight)
	assert.False(t, v.Tiles[1].Revealed)

	require.NoError(t, m.Handle(ctx, Input{Kind: InputReveal}))
	require.NoError(t, m.Handle(ctx, Input{Kind: InputReveal}))
	assert.True(t, m.View().CanAssess)

	var texts []string
	for _, u := range tr.Lines() {
		texts = append(texts, u.Text)
	}
	assert.Equal(t, []string{"c", "a", "t", "cat"}, texts)

	require.NoError(t, m.Handle(ctx, Input{Kind: InputAssess, Yes: false}))
	require.Len(t, rec.results, 1)
	assert.False(t, rec.results[0].Correct)
}

type stubRecognizer struct {
	available bool
	rec       *audio.Recognition
	targets   []string
}

func (s *stubRecognizer) Available() bool { return s.available }

func (s *stubRecognizer) Listen(_ context.Context, target string) (*audio.Recognition, error) {
	s.targets = append(s.targets, target)
	return s.rec, nil
}

func TestListen(t *testing.T) {
	reg, _ := testRegistry(t)
	ctx := context.Background()
	m, err := reg.New(KeyListen)
	require.NoError(t, err)

	tr := audio.NewTranscript(nil, 20)
	sr := &stubRecognizer{available: true}
	rec := &recorder{}
	rd := rec.round(tr)
	rd.Recognizer = sr
	w := mustWord(t, "cat")
	require.NoError(t, m.Setup(ctx, w, rd))

	require.NoError(t, m.Handle(ctx, Input{Kind: InputSpeed, Speed: 0.6}))
	assert.Equal(t, 0.6, tr.Rate())
	assert.Equal(t, 0.6, m.View().Speed)
	assert.ErrorIs(t, m.Handle(ctx, Input{Kind: InputSpeed}), ErrInvalidInput)

	before := len(tr.Lines())
	require.NoError(t, m.Handle(ctx, Input{Kind: InputReplay}))
	assert.Len(t, tr.Lines(), before+4)
	last, _ := tr.Last()
	assert.Equal(t, "cat", last.Text)

	require.NoError(t, m.Handle(ctx, Input{Kind: InputChangeGroup, Group: "digraphs"}))
	assert.Equal(t, []string{"digraphs"}, rec.groups)
	assert.ErrorIs(t, m.Handle(ctx, Input{Kind: InputChangeGroup}), ErrInvalidInput)

	// No recognition is an abandoned attempt, not a wrong answer.
	require.NoError(t, m.Handle(ctx, Input{Kind: InputSay}))
	assert.Equal(t, []string{"cat"}, sr.targets)
	assert.Empty(t, rec.results)
	assert.Equal(t, PhaseAwaiting, m.View().Phase)

	sr.rec = &audio.Recognition{Heard: "cap", Score: 40}
	require.NoError(t, m.Handle(ctx, Input{Kind: InputSay}))
	assert.Empty(t, rec.results)
	assert.Equal(t, "cap", m.View().Heard.Heard)

	sr.rec = &audio.Recognition{Heard: "cat", Score: 95, Correct: true}
	require.NoError(t, m.Handle(ctx, Input{Kind: InputSay}))
	require.Len(t, rec.results, 1)
	assert.True(t, rec.results[0].Correct)
}

func TestListen_RecognizerUnavailable(t *testing.T) {
	reg, _ := testRegistry(t)
	ctx := context.Background()
	m, err := reg.New(KeyListen)
	require.NoError(t, err)

	rec := &recorder{}
	rd := rec.round(nil)
	rd.Recognizer = audio.Unavailable{}
	require.NoError(t, m.Setup(ctx, mustWord(t, "cat"), rd))
	assert.ErrorIs(t, m.Handle(ctx, Input{Kind: InputSay}), audio.ErrUnsupported)
	assert.Empty(t, rec.results)
}

func TestChoose(t *testing.T) {
	reg, _ := testRegistry(t)
	ctx := context.Background()
	m, err := reg.New(KeyChoose)
	require.NoError(t, err)

	rec := &recorder{}
	w := mustWord(t, "cat")
	require.NoError(t, m.Setup(ctx, w, rec.round(nil)))

	v := m.View()
	require.Len(t, v.Choices, ChoiceCount)
	seen := map[string]bool{}
	for _, c := range v.Choices {
		assert.False(t, seen[c.Label], "duplicate choice %q", c.Label)
		seen[c.Label] = true
	}
	assert.True(t, seen["cat"])
	assert.Equal(t, -1, v.Selected)

	assert.ErrorIs(t, m.Handle(ctx, Input{Kind: InputChoose, Index: 4}), ErrInvalidInput)

	wrong := (choiceIndex(v, "cat") + 1) % ChoiceCount
	require.NoError(t, m.Handle(ctx, Input{Kind: InputChoose, Index: wrong}))
	require.Len(t, rec.results, 1)
	assert.False(t, rec.results[0].Correct)
	assert.Equal(t, wrong, m.View().Selected)
	assert.Equal(t, "cat", m.View().Answer)
}

func TestSegment(t *testing.T) {
	reg, _ := testRegistry(t)
	ctx := context.Background()
	m, err := reg.New(KeySegment)
	require.NoError(t, err)

	rec := &recorder{}
	require.NoError(t, m.Setup(ctx, mustWord(t, "ship"), rec.round(nil)))
	tap := func(i int) { require.NoError(t, m.Handle(ctx, Input{Kind: InputTap, Index: i})) }
	group := func() { require.NoError(t, m.Handle(ctx, Input{Kind: InputGroup})) }

	require.Len(t, m.View().Letters, 4)

	// "s" alone is not the first sound of "ship".
	tap(0)
	assert.True(t, m.View().Letters[0].Selected)
	group()
	v := m.View()
	assert.True(t, v.Shake)
	assert.Equal(t, 1, v.Mistakes)
	assert.False(t, v.Letters[0].Selected)
	assert.Equal(t, PhaseAwaiting, v.Phase)

	// Letters out of order do not match either.
	tap(1)
	tap(2)
	group()
	assert.Equal(t, 2, m.View().Mistakes)

	// Tapping twice deselects.
	tap(0)
	tap(0)
	assert.False(t, m.View().Letters[0].Selected)

	tap(0)
	tap(1)
	group()
	v = m.View()
	assert.False(t, v.Shake)
	assert.Equal(t, []string{"sh"}, v.Chunks)
	assert.True(t, v.Letters[0].Used)

	// Used letters cannot be selected again.
	tap(0)
	assert.False(t, m.View().Letters[0].Selected)

	tap(2)
	group()
	assert.Empty(t, rec.results)
	tap(3)
	group()

	require.Len(t, rec.results, 1)
	assert.True(t, rec.results[0].Correct)
	assert.Equal(t, "sh-i-p", m.View().Answer)
	assert.ErrorIs(t, m.Handle(ctx, Input{Kind: InputAssess}), ErrInvalidInput)
}

func TestMissing(t *testing.T) {
	reg, _ := testRegistry(t)
	ctx := context.Background()
	bank := words.Default()

	for _, id := range []string{"cat", "ship", "crab"} {
		m, err := reg.New(KeyMissing)
		require.NoError(t, err)
		w := mustWord(t, id)
		rec := &recorder{}
		require.NoError(t, m.Setup(ctx, w, rec.round(nil)))

		v := m.View()
		target := targetIndex(v)
		require.GreaterOrEqual(t, target, 0)
		assert.True(t, v.Tiles[target].Blank)
		assert.False(t, v.Tiles[target].Revealed)

		require.Len(t, v.Choices, ChoiceCount)
		seen := map[string]bool{}
		for _, c := range v.Choices {
			assert.False(t, seen[c.Label])
			seen[c.Label] = true
		}
		correct := w.Graphemes[target]
		assert.True(t, seen[correct])

		// With a full bank every distractor shares the blank's phoneme type.
		kind := w.Types[target]
		types := map[string]bool{}
		for _, other := range bank.All() {
			for i, g := range other.Graphemes {
				if other.Types[i] == kind {
					types[g] = true
				}
			}
		}
		for label := range seen {
			assert.True(t, types[label], "%s: %q is not a %s", id, label, kind)
		}

		wrong := (choiceIndex(v, correct) + 1) % ChoiceCount
		require.NoError(t, m.Handle(ctx, Input{Kind: InputChoose, Index: wrong}))
		require.Len(t, rec.results, 1)
		assert.False(t, rec.results[0].Correct)
		assert.False(t, m.View().Tiles[target].Blank)
	}
}

func TestMissing_DistractorsKeepType(t *testing.T) {
	bank := words.Default()
	for _, id := range []string{"ship", "crab", "cat"} {
		w := mustWord(t, id)
		for seed := uint64(0); seed < 50; seed++ {
			m := newMissing(deps{bank: bank, rng: rand.New(rand.NewPCG(seed, seed+1)), now: time.Now}).(*missing)
			for blank, kind := range w.Types {
				opts := m.distractors(w, blank).options(m.rng)
				require.Len(t, opts, ChoiceCount)
				for _, g := range opts {
					if g == w.Graphemes[blank] {
						continue
					}
					assert.True(t, graphemeHasType(bank, g, kind), "%s seed %d: %q is not a %s", id, seed, g, kind)
				}
			}
		}
	}
}

func graphemeHasType(bank *words.Bank, g string, kind words.PhonemeType) bool {
	for _, w := range bank.All() {
		for i, other := range w.Graphemes {
			if other == g && w.Types[i] == kind {
				return true
			}
		}
	}
	return false
}

func TestPositionIndex(t *testing.T) {
	word := func(types ...words.PhonemeType) words.Word {
		w := words.Word{ID: "w"}
		for range types {
			w.Graphemes = append(w.Graphemes, "x")
		}
		w.Types = types
		return w
	}
	c, v := words.Consonant, words.ShortVowel

	tests := []struct {
		name string
		pos  Position
		word words.Word
		want int
	}{
		{"first", PositionFirst, word(c, v, c), 0},
		{"last", PositionLast, word(c, v, c), 2},
		{"single", PositionLast, word(v), 0},
		{"middle vowel", PositionMiddle, word(c, v, c), 1},
		{"first interior vowel", PositionMiddle, word(c, c, v, v, c), 2},
		{"edge vowels skipped", PositionMiddle, word(v, c, c, v), 2},
		{"no vowel", PositionMiddle, word(c, c, c, c), 2},
		{"two graphemes scanned fully", PositionMiddle, word(v, c), 0},
		{"two graphemes no vowel", PositionMiddle, word(c, c), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.Index(tt.word); got != tt.want {
				t.Errorf("Index() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPositionModes(t *testing.T) {
	reg, _ := testRegistry(t)
	ctx := context.Background()
	bank := words.Default()

	tests := []struct {
		key  Key
		pos  Position
		want string
	}{
		{KeyFirst, PositionFirst, "sh"},
		{KeyLast, PositionLast, "p"},
		{KeyMiddle, PositionMiddle, "i"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			m, err := reg.New(tt.key)
			require.NoError(t, err)
			rec := &recorder{}
			require.NoError(t, m.Setup(ctx, mustWord(t, "ship"), rec.round(nil)))

			v := m.View()
			target := targetIndex(v)
			require.GreaterOrEqual(t, target, 0)
			assert.Equal(t, tt.want, v.Tiles[target].Grapheme)
			assert.True(t, v.Tiles[target].Revealed)

			atPosition := map[string]bool{}
			for _, w := range bank.All() {
				atPosition[w.Graphemes[tt.pos.Index(w)]] = true
			}

			require.Len(t, v.Choices, ChoiceCount)
			seen := map[string]bool{}
			for _, c := range v.Choices {
				assert.False(t, seen[c.Label])
				seen[c.Label] = true
				assert.True(t, atPosition[c.Label], "%q never appears at this position", c.Label)
			}
			assert.True(t, seen[tt.want])

			require.NoError(t, m.Handle(ctx, Input{Kind: InputChoose, Index: choiceIndex(v, tt.want)}))
			require.Len(t, rec.results, 1)
			assert.True(t, rec.results[0].Correct)
			assert.Equal(t, tt.want, m.View().Answer)
		})
	}
}

func TestCandidates(t *testing.T) {
	c := newCandidates("a")
	for _, g := range []string{"a", "e", "e", "", "i", "o", "u", "ai", "oa", "ee"} {
		c.add(g)
	}
	assert.Equal(t, []string{"e", "i", "o", "u", "ai", "oa"}, c.list)
	assert.True(t, c.full())

	opts := c.options(rand.New(rand.NewPCG(3, 4)))
	assert.Len(t, opts, ChoiceCount)
	assert.Contains(t, opts, "a")

	few := newCandidates("a")
	few.add("e")
	assert.ElementsMatch(t, []string{"a", "e"}, few.options(nil))
}
