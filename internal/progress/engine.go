// Package progress chooses the next word to practise and keeps the
// per-word and per-group statistics that choice depends on.
package progress

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/phonix/internal/store"
	"github.com/abhisek/phonix/internal/words"
)

const (
	// PoolSize is the candidate pool drawn for each NextWord call.
	PoolSize = 20

	// RecentWindow is how many recent history entries NextWord avoids.
	RecentWindow = 5

	// FallbackSubsetSize is the size of the fixed subset used when the
	// filters match nothing.
	FallbackSubsetSize = 20

	// RecentHistorySize is the history length reported by OverallStats.
	RecentHistorySize = 50

	// DefaultWordID is returned when every other selection tier is empty.
	DefaultWordID = "cat"
)

// Options configures an Engine. Zero values select production defaults.
type Options struct {
	Rand   *rand.Rand
	Now    func() time.Time
	Logger *zap.Logger
}

// Engine is the adaptive progress engine. It holds no state of its own;
// everything lives in the store.
type Engine struct {
	store  *store.Store
	bank   *words.Bank
	rng    *rand.Rand
	now    func() time.Time
	logger *zap.Logger
}

// New creates an Engine over st and bank.
func New(st *store.Store, bank *words.Bank, opts Options) *Engine {
	e := &Engine{
		store:  st,
		bank:   bank,
		rng:    opts.Rand,
		now:    opts.Now,
		logger: opts.Logger,
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// Bank returns the word bank the engine selects from.
func (e *Engine) Bank() *words.Bank {
	return e.bank
}

// Label returns the display text for a word id. Ids that are no longer
// in the bank are shown as-is.
func (e *Engine) Label(id string) string {
	if w, ok := e.bank.Get(id); ok {
		return w.Text
	}
	return id
}
