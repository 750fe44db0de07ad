// Package gamification runs the XP, level, heart, streak and daily goal
// economy on top of the session store.
package gamification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/store"
)

// dateLayout is the local calendar date stored as the last play date.
const dateLayout = "2006-01-02"

// Options configures an Engine. Zero values select production defaults.
type Options struct {
	Now     func() time.Time
	Logger  *zap.Logger
	Rewards *curriculum.Rewards
}

// Engine tracks the persisted economy in the store and the ephemeral
// per-session counters in memory.
type Engine struct {
	store   *store.Store
	rewards curriculum.Rewards
	now     func() time.Time
	logger  *zap.Logger

	mu      sync.Mutex
	session session
}

type session struct {
	id       string
	started  time.Time
	run      int // consecutive correct answers
	bestRun  int
	correct  int
	wrong    int
	xpEarned int
}

// New creates an Engine. Call Init before the first answer.
func New(st *store.Store, opts Options) *Engine {
	e := &Engine{
		store:   st,
		rewards: curriculum.XPRewards,
		now:     opts.Now,
		logger:  opts.Logger,
	}
	if opts.Rewards != nil {
		e.rewards = *opts.Rewards
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	e.session = e.newSession()
	return e
}

func (e *Engine) newSession() session {
	return session{id: uuid.NewString(), started: e.now()}
}

func (e *Engine) dates() (today, yesterday string) {
	now := e.now()
	return now.Format(dateLayout), now.AddDate(0, 0, -1).Format(dateLayout)
}

// Init runs the daily maintenance and starts a fresh session. It is
// idempotent and must run at startup and after a progress reset.
func (e *Engine) Init() {
	e.mu.Lock()
	e.session = e.newSession()
	e.mu.Unlock()

	today, yesterday := e.dates()
	last := e.store.String(store.KeyLastPlayDate)

	patch := map[store.Key]any{
		store.KeyLevel: curriculum.LevelInfo(e.store.Int(store.KeyXP)).Level,
	}
	if last != "" && last != today {
		patch[store.KeyDailyDone] = 0
		if last != yesterday {
			patch[store.KeyStreak] = 0
			e.logger.Info("day streak broken", zap.String("last_play", last), zap.Int("streak", e.store.Int(store.KeyStreak)))
		}
	}
	if err := e.store.Patch(patch); err != nil {
		e.logger.Error("gamification init", zap.Error(err))
	}
}

// SessionID identifies the current session.
func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.id
}

// Run returns the current count of consecutive correct answers.
func (e *Engine) Run() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.run
}

// ResetSession clears the in-memory session counters.
func (e *Engine) ResetSession() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = e.newSession()
}

// SessionStats summarises the current session.
type SessionStats struct {
	ID       string
	Started  time.Time
	Correct  int
	Wrong    int
	Total    int
	Accuracy float64
	XPEarned int
	BestRun  int
}

// SessionStats returns the in-memory session counters.
func (e *Engine) SessionStats() SessionStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.session
	stats := SessionStats{
		ID:       s.id,
		Started:  s.started,
		Correct:  s.correct,
		Wrong:    s.wrong,
		Total:    s.correct + s.wrong,
		XPEarned: s.xpEarned,
		BestRun:  s.bestRun,
	}
	if stats.Total > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Total)
	}
	return stats
}
