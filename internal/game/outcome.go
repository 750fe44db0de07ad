package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/phonix/internal/badges"
	"github.com/abhisek/phonix/internal/gamification"
	"github.com/abhisek/phonix/internal/modes"
	"github.com/abhisek/phonix/internal/store"
	"github.com/abhisek/phonix/internal/words"
)

// Outcome is the scored result of one round.
type Outcome struct {
	RoundID      string
	Word         words.Word
	Mode         modes.Key
	Correct      bool
	ResponseTime time.Duration

	// Reward is set for correct answers.
	Reward *gamification.Reward

	Hearts    int
	GameOver  bool
	NewBadges []badges.Badge
}

// onResult scores a finished round. Results from a round that has since
// been replaced are dropped.
func (g *Game) onResult(roundID string, r modes.Result) {
	if roundID != g.roundID {
		g.logger.Warn("stale round result", zap.String("round_id", roundID))
		return
	}
	w, ok := g.mode.CurrentWord()
	if !ok {
		return
	}

	isNew := g.progress.IsNewWord(w.ID)
	g.progress.RecordAttempt(w.ID, r.Correct, string(g.modeKey))

	out := Outcome{
		RoundID:      roundID,
		Word:         w,
		Mode:         g.modeKey,
		Correct:      r.Correct,
		ResponseTime: r.ResponseTime,
	}
	if r.Correct {
		reward := g.gamify.RecordCorrect(r.ResponseTime, isNew)
		out.Reward = &reward
		g.badges.RecordCorrect()
		if reward.DailyComplete {
			g.badges.RecordDailyGoal()
		}
	} else {
		hr := g.gamify.RecordWrong()
		out.GameOver = hr.GameOver
	}
	out.Hearts = g.store.Int(store.KeyHearts)
	out.NewBadges = g.checkBadges()
	g.earned = append(g.earned, out.NewBadges...)
	g.outcomes = append(g.outcomes, out)

	fields := []zap.Field{
		zap.String("round_id", roundID),
		zap.String("word", w.ID),
		zap.String("mode", string(g.modeKey)),
		zap.Bool("correct", r.Correct),
		zap.Duration("response_time", r.ResponseTime),
		zap.Int("hearts", out.Hearts),
	}
	if out.Reward != nil {
		fields = append(fields, zap.Int("xp", out.Reward.XPEarned), zap.Bool("level_up", out.Reward.LevelUp))
	}
	g.logger.Info("round scored", fields...)
}

func (g *Game) checkBadges() []badges.Badge {
	return g.badges.Check(badges.Progress{
		DayStreak:     g.store.Int(store.KeyStreak),
		Level:         g.store.Int(store.KeyLevel),
		MasteredWords: g.progress.OverallStats().WordsMastered,
	})
}

// LastOutcome returns the most recent scored round of the session.
func (g *Game) LastOutcome() (Outcome, bool) {
	if len(g.outcomes) == 0 {
		return Outcome{}, false
	}
	return g.outcomes[len(g.outcomes)-1], true
}

// Outcomes returns every scored round of the session, oldest first.
func (g *Game) Outcomes() []Outcome {
	return append([]Outcome(nil), g.outcomes...)
}

// Answered reports whether the current round has been scored.
func (g *Game) Answered() bool {
	last, ok := g.LastOutcome()
	return ok && g.roundID != "" && last.RoundID == g.roundID
}
