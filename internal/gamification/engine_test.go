package gamification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/store"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestEngine(t *testing.T) (*Engine, *store.Store, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2026, 5, 10, 9, 0, 0, 0, time.Local)}
	st := store.Open(context.Background(), store.NewMemoryBackend(), store.DefaultState(), nil)
	e := New(st, Options{Now: c.now})
	e.Init()
	return e, st, c
}

const slow = 5 * time.Second

func TestRecordCorrect_FastVersusStandard(t *testing.T) {
	e, st, _ := newTestEngine(t)

	r := e.RecordCorrect(time.Second, false)
	assert.Equal(t, curriculum.XPRewards.Fast, r.XPEarned)
	assert.True(t, r.Has(ReasonFast))

	r = e.RecordCorrect(slow, false)
	assert.Equal(t, curriculum.XPRewards.Standard, r.XPEarned)
	assert.True(t, r.Has(ReasonStandard))

	r = e.RecordCorrect(curriculum.FastResponse, false)
	assert.True(t, r.Has(ReasonStandard), "exactly 3s is not fast")

	assert.Equal(t, curriculum.XPRewards.Fast+2*curriculum.XPRewards.Standard, st.Int(store.KeyXP))
}

func TestRecordCorrect_NewWordBonus(t *testing.T) {
	e, _, _ := newTestEngine(t)
	r := e.RecordCorrect(slow, true)
	assert.Equal(t, curriculum.XPRewards.Standard+curriculum.XPRewards.NewWord, r.XPEarned)
	assert.True(t, r.Has(ReasonNewWord))
}

func TestRecordCorrect_StreakBonusFiresOnce(t *testing.T) {
	e, st, _ := newTestEngine(t)

	streak5, streak10 := 0, 0
	for i := 1; i <= 12; i++ {
		r := e.RecordCorrect(slow, false)
		if r.Has(ReasonStreak5) {
			streak5++
			assert.Equal(t, 5, i)
		}
		if r.Has(ReasonStreak10) {
			streak10++
			assert.Equal(t, 10, i)
		}
	}
	assert.Equal(t, 1, streak5)
	assert.Equal(t, 1, streak10)

	// 12 standard answers, both milestones, and the daily goal at the 10th.
	want := 12*curriculum.XPRewards.Standard + curriculum.XPRewards.Streak5 +
		curriculum.XPRewards.Streak10 + curriculum.XPRewards.DailyGoal
	assert.Equal(t, want, st.Int(store.KeyXP))
}

func TestRecordWrong_ResetsRun(t *testing.T) {
	e, _, _ := newTestEngine(t)
	for i := 0; i < 4; i++ {
		e.RecordCorrect(slow, false)
	}
	e.RecordWrong()
	assert.Equal(t, 0, e.Run())

	for i := 0; i < 4; i++ {
		r := e.RecordCorrect(slow, false)
		assert.False(t, r.Has(ReasonStreak5))
	}
	r := e.RecordCorrect(slow, false)
	assert.True(t, r.Has(ReasonStreak5))
}

func TestHeartsDepletion(t *testing.T) {
	e, st, _ := newTestEngine(t)

	var res HeartResult
	for i := 0; i < 5; i++ {
		res = e.RecordWrong()
		if i < 4 {
			assert.False(t, res.GameOver)
			assert.Equal(t, 4-i, res.HeartsLeft)
		}
	}
	assert.Equal(t, HeartResult{HeartsLeft: 0, GameOver: true}, res)

	res = e.RecordWrong()
	assert.Equal(t, 0, res.HeartsLeft, "hearts never go negative")

	e.RefillHearts()
	assert.Equal(t, curriculum.MaxHearts, st.Int(store.KeyHearts))
}

func TestDailyGoal_BonusOnce(t *testing.T) {
	e, st, c := newTestEngine(t)
	require.NoError(t, st.Patch(map[store.Key]any{
		store.KeyDailyGoal:    10,
		store.KeyDailyDone:    9,
		store.KeyLastPlayDate: c.t.Format(dateLayout),
	}))

	r := e.RecordCorrect(slow, false)
	assert.True(t, r.DailyComplete)
	assert.Equal(t, curriculum.XPRewards.Standard+curriculum.XPRewards.DailyGoal, r.XPEarned)

	r = e.RecordCorrect(slow, false)
	assert.False(t, r.DailyComplete)
	assert.False(t, r.Has(ReasonDailyGoal))
	assert.Equal(t, 11, st.Int(store.KeyDailyDone))
}

func TestLevelUp(t *testing.T) {
	e, st, _ := newTestEngine(t)
	require.NoError(t, st.Set(store.KeyXP, 45))

	r := e.RecordCorrect(time.Second, false)
	assert.True(t, r.LevelUp)
	assert.Equal(t, 2, r.NewLevel)
	assert.Equal(t, 2, st.Int(store.KeyLevel))

	r = e.RecordCorrect(time.Second, false)
	assert.False(t, r.LevelUp)
}

func TestDayStreak(t *testing.T) {
	e, st, c := newTestEngine(t)

	r := e.RecordCorrect(slow, false)
	assert.Equal(t, 1, r.DayStreak)
	e.RecordCorrect(slow, false)
	assert.Equal(t, 1, st.Int(store.KeyStreak), "only the first correct answer of the day counts")

	c.t = c.t.AddDate(0, 0, 1)
	e.Init()
	r = e.RecordCorrect(slow, false)
	assert.Equal(t, 2, r.DayStreak)
	assert.Equal(t, 2, st.Int(store.KeyBestStreak))
	assert.Equal(t, 1, st.Int(store.KeyDailyDone), "daily counter resets on a new day")

	// Skip two days: the streak breaks at Init.
	c.t = c.t.AddDate(0, 0, 3)
	e.Init()
	assert.Equal(t, 0, st.Int(store.KeyStreak))
	assert.Equal(t, 0, st.Int(store.KeyDailyDone))
	r = e.RecordCorrect(slow, false)
	assert.Equal(t, 1, r.DayStreak)
	assert.Equal(t, 2, st.Int(store.KeyBestStreak))
}

func TestDayRolloverWithoutInit(t *testing.T) {
	e, st, c := newTestEngine(t)
	for i := 0; i < 3; i++ {
		e.RecordCorrect(slow, false)
	}

	c.t = c.t.AddDate(0, 0, 1)
	done, _ := e.Daily()
	assert.Equal(t, 0, done)

	e.RecordCorrect(slow, false)
	assert.Equal(t, 1, st.Int(store.KeyDailyDone))
	assert.Equal(t, 2, st.Int(store.KeyStreak))
}

func TestInit_Idempotent(t *testing.T) {
	e, st, c := newTestEngine(t)
	require.NoError(t, st.Patch(map[store.Key]any{
		store.KeyStreak:       4,
		store.KeyDailyDone:    3,
		store.KeyLastPlayDate: c.t.AddDate(0, 0, -1).Format(dateLayout),
	}))

	e.Init()
	e.Init()
	assert.Equal(t, 4, st.Int(store.KeyStreak), "yesterday keeps the streak alive")
	assert.Equal(t, 0, st.Int(store.KeyDailyDone))
}

func TestSessionStats(t *testing.T) {
	e, _, _ := newTestEngine(t)
	id := e.SessionID()

	e.RecordCorrect(time.Second, false)
	e.RecordCorrect(time.Second, false)
	e.RecordWrong()

	s := e.SessionStats()
	assert.Equal(t, 2, s.Correct)
	assert.Equal(t, 1, s.Wrong)
	assert.Equal(t, 3, s.Total)
	assert.InDelta(t, 2.0/3.0, s.Accuracy, 1e-12)
	assert.Equal(t, 2*curriculum.XPRewards.Fast, s.XPEarned)
	assert.Equal(t, 2, s.BestRun)

	e.ResetSession()
	s = e.SessionStats()
	assert.Equal(t, 0, s.Total)
	assert.NotEqual(t, id, s.ID)
	assert.Equal(t, 0, e.Run())
}

func TestCustomRewards(t *testing.T) {
	st := store.Open(context.Background(), store.NewMemoryBackend(), store.DefaultState(), nil)
	rewards := curriculum.Rewards{Fast: 2, Standard: 1}
	e := New(st, Options{Rewards: &rewards})
	e.Init()

	r := e.RecordCorrect(time.Millisecond, false)
	assert.Equal(t, 2, r.XPEarned)
}
