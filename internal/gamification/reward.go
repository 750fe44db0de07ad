package gamification

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/store"
)

// Reason names one component of an XP reward.
type Reason string

const (
	ReasonFast      Reason = "fast"
	ReasonStandard  Reason = "standard"
	ReasonNewWord   Reason = "new-word"
	ReasonStreak5   Reason = "streak-5"
	ReasonStreak10  Reason = "streak-10"
	ReasonDailyGoal Reason = "daily-goal"
)

// Line is one entry of a reward breakdown.
type Line struct {
	Reason Reason
	XP     int
}

// Reward is the outcome of a correct answer.
type Reward struct {
	XPEarned      int
	Lines         []Line
	LevelUp       bool
	NewLevel      int
	DailyComplete bool
	DayStreak     int
}

// Has reports whether the reward includes reason.
func (r Reward) Has(reason Reason) bool {
	for _, l := range r.Lines {
		if l.Reason == reason {
			return true
		}
	}
	return false
}

// RecordCorrect scores a correct answer and persists the new XP, level,
// daily progress and day streak before returning the breakdown.
func (e *Engine) RecordCorrect(responseTime time.Duration, isNewWord bool) Reward {
	e.mu.Lock()
	e.session.run++
	e.session.correct++
	if e.session.run > e.session.bestRun {
		e.session.bestRun = e.session.run
	}
	run := e.session.run
	e.mu.Unlock()

	var r Reward
	add := func(reason Reason, xp int) {
		r.Lines = append(r.Lines, Line{Reason: reason, XP: xp})
		r.XPEarned += xp
	}

	if responseTime < curriculum.FastResponse {
		add(ReasonFast, e.rewards.Fast)
	} else {
		add(ReasonStandard, e.rewards.Standard)
	}
	if isNewWord {
		add(ReasonNewWord, e.rewards.NewWord)
	}
	// Equality, not a threshold: each milestone pays once per session.
	switch run {
	case 5:
		add(ReasonStreak5, e.rewards.Streak5)
	case 10:
		add(ReasonStreak10, e.rewards.Streak10)
	}

	snap := e.store.Snapshot()
	today, yesterday := e.dates()

	dailyDone := snap.DailyDone
	if snap.LastPlayDate != "" && snap.LastPlayDate != today {
		dailyDone = 0
	}
	dailyDone++
	if dailyDone == snap.DailyGoal {
		add(ReasonDailyGoal, e.rewards.DailyGoal)
		r.DailyComplete = true
	}

	xp := snap.XP + r.XPEarned
	r.NewLevel = curriculum.LevelInfo(xp).Level
	r.LevelUp = r.NewLevel > snap.Level

	patch := map[store.Key]any{
		store.KeyXP:        xp,
		store.KeyLevel:     r.NewLevel,
		store.KeyDailyDone: dailyDone,
	}

	r.DayStreak = snap.Streak
	if snap.LastPlayDate != today {
		switch snap.LastPlayDate {
		case yesterday:
			r.DayStreak = snap.Streak + 1
		default:
			r.DayStreak = 1
		}
		patch[store.KeyStreak] = r.DayStreak
		patch[store.KeyLastPlayDate] = today
		if r.DayStreak > snap.BestStreak {
			patch[store.KeyBestStreak] = r.DayStreak
		}
	}

	if err := e.store.Patch(patch); err != nil {
		e.logger.Error("record correct", zap.Error(err))
	}

	e.mu.Lock()
	e.session.xpEarned += r.XPEarned
	e.mu.Unlock()

	e.logger.Debug("correct answer scored",
		zap.Int("xp", r.XPEarned),
		zap.Int("run", run),
		zap.Bool("level_up", r.LevelUp),
		zap.Bool("daily_complete", r.DailyComplete))
	return r
}

// HeartResult is the outcome of a wrong answer.
type HeartResult struct {
	HeartsLeft int
	GameOver   bool
}

// RecordWrong breaks the run of correct answers and takes a heart.
func (e *Engine) RecordWrong() HeartResult {
	e.mu.Lock()
	e.session.run = 0
	e.session.wrong++
	e.mu.Unlock()

	hearts := max(e.store.Int(store.KeyHearts)-1, 0)
	if err := e.store.Set(store.KeyHearts, hearts); err != nil {
		e.logger.Error("record wrong", zap.Error(err))
	}
	return HeartResult{HeartsLeft: hearts, GameOver: hearts == 0}
}

// RefillHearts restores a full set of hearts.
func (e *Engine) RefillHearts() {
	if err := e.store.Set(store.KeyHearts, curriculum.MaxHearts); err != nil {
		e.logger.Error("refill hearts", zap.Error(err))
	}
}

// Daily returns today's progress toward the daily goal.
func (e *Engine) Daily() (done, goal int) {
	today, _ := e.dates()
	snap := e.store.Snapshot()
	if snap.LastPlayDate != "" && snap.LastPlayDate != today {
		return 0, snap.DailyGoal
	}
	return snap.DailyDone, snap.DailyGoal
}
