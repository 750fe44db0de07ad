package curriculum

import "time"

const (
	// MasteryThreshold is the accuracy at which a word, group or stage counts as mastered.
	MasteryThreshold = 0.80

	// MinAttemptsForMastery is the number of attempts before a word can be mastered.
	MinAttemptsForMastery = 6

	// MaxHearts is the number of hearts a player starts with.
	MaxHearts = 5

	// DefaultDailyGoal is the number of correct answers per day.
	DefaultDailyGoal = 10

	// FastResponse is the response time under which an answer earns the fast reward.
	FastResponse = 3 * time.Second
)

// Rewards is the XP reward table.
type Rewards struct {
	Fast      int
	Standard  int
	NewWord   int
	Streak5   int
	Streak10  int
	DailyGoal int
}

// XPRewards is the default reward table.
var XPRewards = Rewards{
	Fast:      15,
	Standard:  10,
	NewWord:   5,
	Streak5:   20,
	Streak10:  50,
	DailyGoal: 30,
}
