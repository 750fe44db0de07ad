package progress

import "github.com/abhisek/phonix/internal/words"

// Selection names the tier NextWord picked its word from.
type Selection int

const (
	// SelectFresh is a pool word not among the recent history.
	SelectFresh Selection = iota
	// SelectRepeat is the pool head, used when every pool word was played recently.
	SelectRepeat
	// SelectDefault is DefaultWordID, used when the pool is empty.
	SelectDefault
)

// NextWord returns the word to present next.
func (e *Engine) NextWord(f Filter) words.Word {
	w, _ := e.NextWordSelection(f)
	return w
}

// NextWordSelection is NextWord that also reports the selection tier.
func (e *Engine) NextWordSelection(f Filter) (words.Word, Selection) {
	pool := e.AdaptivePool(PoolSize, f)

	recent := make(map[string]bool, RecentWindow)
	for _, h := range e.store.History(RecentWindow) {
		recent[h.WordID] = true
	}

	for _, w := range pool {
		if !recent[w.ID] {
			return w, SelectFresh
		}
	}
	if len(pool) > 0 {
		return pool[0], SelectRepeat
	}

	if w, ok := e.bank.Get(DefaultWordID); ok {
		return w, SelectDefault
	}
	e.logger.Warn("default word missing from bank")
	return e.bank.All()[0], SelectDefault
}
