package progress

import (
	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/store"
)

// Selection weights.
const (
	WeightUnseen     = 3.0
	WeightStruggling = 5.0
	WeightShaky      = 3.0
	WeightMastered   = 0.5
	WeightDefault    = 1.0
)

// Weight returns the selection weight for a word given its statistic.
// ok is false when the word has never been attempted.
func Weight(stat store.WordStat, ok bool) float64 {
	if !ok || stat.Attempts == 0 {
		return WeightUnseen
	}
	acc := stat.Accuracy()
	switch {
	case acc < 0.5:
		return WeightStruggling
	case acc < 0.7:
		return WeightShaky
	case acc > 0.9 && stat.Attempts >= curriculum.MinAttemptsForMastery:
		return WeightMastered
	default:
		return WeightDefault
	}
}

// IsMastered reports whether a word statistic meets the mastery bar.
func IsMastered(stat store.WordStat) bool {
	return stat.Attempts >= curriculum.MinAttemptsForMastery && stat.Accuracy() >= curriculum.MasteryThreshold
}
