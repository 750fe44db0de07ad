package progress

import (
	"github.com/abhisek/phonix/internal/words"
)

// Filter narrows the candidate words. A zero MaxLevel allows every level;
// an empty Group allows every group.
type Filter struct {
	Group    string
	MaxLevel int
}

// Tier names the source of a candidate pool.
type Tier int

const (
	// TierFiltered means the pool came from the level and group filters.
	TierFiltered Tier = iota
	// TierFallbackSubset means the filters matched nothing and the first
	// FallbackSubsetSize words of the bank were used.
	TierFallbackSubset
)

func (t Tier) String() string {
	switch t {
	case TierFiltered:
		return "filtered"
	case TierFallbackSubset:
		return "fallback-subset"
	default:
		return "unknown"
	}
}

func (e *Engine) candidates(f Filter) ([]words.Word, Tier) {
	maxLevel := f.MaxLevel
	if maxLevel <= 0 {
		maxLevel = words.MaxLevel
	}

	var pool []words.Word
	if f.Group != "" {
		pool = e.bank.ByGroup([]string{f.Group}, maxLevel)
	} else {
		pool = e.bank.ByLevel(maxLevel)
	}
	if len(pool) > 0 {
		return pool, TierFiltered
	}

	all := e.bank.All()
	if len(all) > FallbackSubsetSize {
		all = all[:FallbackSubsetSize]
	}
	return all, TierFallbackSubset
}

// AdaptivePool draws up to count distinct words, each draw weighted by
// the word's selection weight among the words not yet drawn.
func (e *Engine) AdaptivePool(count int, f Filter) []words.Word {
	pool, _ := e.AdaptivePoolTier(count, f)
	return pool
}

// AdaptivePoolTier is AdaptivePool that also reports which tier supplied
// the candidates.
func (e *Engine) AdaptivePoolTier(count int, f Filter) ([]words.Word, Tier) {
	candidates, tier := e.candidates(f)
	stats := e.store.WordStats()

	weights := make([]float64, len(candidates))
	for i, w := range candidates {
		stat, ok := stats[w.ID]
		weights[i] = Weight(stat, ok)
	}
	return weightedSample(candidates, weights, count, e.rng.Float64), tier
}

// weightedSample draws without replacement: each pick is proportional to
// the remaining weight, and the picked item leaves the pool.
func weightedSample[T any](items []T, weights []float64, count int, random func() float64) []T {
	items = append([]T(nil), items...)
	weights = append([]float64(nil), weights...)

	var total float64
	for _, w := range weights {
		total += w
	}

	out := make([]T, 0, min(count, len(items)))
	for len(out) < count && len(items) > 0 {
		r := random() * total
		pick := len(items) - 1
		for i, w := range weights {
			if r < w {
				pick = i
				break
			}
			r -= w
		}

		out = append(out, items[pick])
		total -= weights[pick]
		last := len(items) - 1
		items[pick], weights[pick] = items[last], weights[last]
		items, weights = items[:last], weights[:last]
	}
	return out
}
