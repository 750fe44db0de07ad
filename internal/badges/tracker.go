package badges

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/phonix/internal/store"
)

// State is the persisted badge blob, kept apart from the session state
// so progress and badges can be reset independently.
type State struct {
	Earned              map[string]time.Time `json:"earned"`
	TotalCorrect        int                  `json:"totalCorrect"`
	ModesPlayed         map[string]bool      `json:"modesPlayed"`
	StoriesOpened       bool                 `json:"storiesOpened"`
	DailyGoalsCompleted int                  `json:"dailyGoalsCompleted"`
}

func emptyState() State {
	return State{
		Earned:      map[string]time.Time{},
		ModesPlayed: map[string]bool{},
	}
}

// Earned pairs a badge with the time it was awarded.
type Earned struct {
	Badge
	At time.Time
}

// Tracker records badge progress and awards badges.
type Tracker struct {
	mu       sync.Mutex
	state    State
	backend  store.Backend
	allModes []string
	now      func() time.Time
	logger   *zap.Logger
}

// NewTracker loads the badge namespace from backend. A missing or corrupt
// blob starts empty. allModes lists the modes needed for the explorer badge.
func NewTracker(ctx context.Context, backend store.Backend, allModes []string, now func() time.Time, logger *zap.Logger) *Tracker {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Tracker{
		state:    emptyState(),
		backend:  backend,
		allModes: append([]string(nil), allModes...),
		now:      now,
		logger:   logger,
	}

	data, err := backend.Load(ctx, store.NamespaceBadges)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		logger.Warn("load badges failed", zap.Error(err))
	default:
		var s State
		if err := json.Unmarshal(data, &s); err != nil {
			logger.Warn("badge state is corrupt, starting empty", zap.Error(err))
			break
		}
		if s.Earned == nil {
			s.Earned = map[string]time.Time{}
		}
		if s.ModesPlayed == nil {
			s.ModesPlayed = map[string]bool{}
		}
		t.state = s
	}
	return t
}

// persistLocked writes the badge blob. t.mu must be held.
func (t *Tracker) persistLocked() {
	data, err := json.Marshal(t.state)
	if err != nil {
		t.logger.Warn("marshal badges failed", zap.Error(err))
		return
	}
	if err := t.backend.Save(context.Background(), store.NamespaceBadges, data); err != nil {
		t.logger.Warn("persist badges failed", zap.Error(err))
	}
}

func (t *Tracker) update(fn func(*State)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.state)
	t.persistLocked()
}

// RecordCorrect counts a correct answer.
func (t *Tracker) RecordCorrect() {
	t.update(func(s *State) { s.TotalCorrect++ })
}

// RecordMode marks a mode as played.
func (t *Tracker) RecordMode(mode string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.ModesPlayed[mode] {
		return
	}
	t.state.ModesPlayed[mode] = true
	t.persistLocked()
}

// RecordDailyGoal counts a completed daily goal.
func (t *Tracker) RecordDailyGoal() {
	t.update(func(s *State) { s.DailyGoalsCompleted++ })
}

// MarkStoryOpened records that a word story was opened.
func (t *Tracker) MarkStoryOpened() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.StoriesOpened {
		return
	}
	t.state.StoriesOpened = true
	t.persistLocked()
}

// Check awards every badge whose rule now holds and returns only the
// newly earned ones.
func (t *Tracker) Check(p Progress) []Badge {
	t.mu.Lock()
	defer t.mu.Unlock()

	var fresh []Badge
	for _, d := range catalog {
		if _, ok := t.state.Earned[d.ID]; ok {
			continue
		}
		if d.earned(&t.state, p, t.allModes) {
			t.state.Earned[d.ID] = t.now()
			fresh = append(fresh, d.Badge)
		}
	}
	if len(fresh) > 0 {
		t.persistLocked()
		for _, b := range fresh {
			t.logger.Info("badge earned", zap.String("badge", b.ID))
		}
	}
	return fresh
}

// Earned returns the earned badges in catalog order.
func (t *Tracker) Earned() []Earned {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []Earned
	for _, d := range catalog {
		if at, ok := t.state.Earned[d.ID]; ok {
			out = append(out, Earned{Badge: d.Badge, At: at})
		}
	}
	return out
}

// State returns a copy of the persisted badge state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.state
	s.Earned = maps.Clone(t.state.Earned)
	s.ModesPlayed = maps.Clone(t.state.ModesPlayed)
	return s
}

// Reset clears every badge and counter.
func (t *Tracker) Reset() {
	t.update(func(s *State) { *s = emptyState() })
}
