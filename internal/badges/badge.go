// Package badges defines the achievement catalog and tracks which badges
// a player has earned.
package badges

// Badge is one achievement.
type Badge struct {
	ID          string
	Name        string
	Description string
	Emoji       string
}

// Progress is the player state badge rules are evaluated against.
type Progress struct {
	DayStreak     int
	Level         int
	MasteredWords int
}

// rule decides whether a badge is earned.
type rule func(s *State, p Progress, allModes []string) bool

type definition struct {
	Badge
	earned rule
}

func atLeast(n int, get func(*State, Progress) int) rule {
	return func(s *State, p Progress, _ []string) bool { return get(s, p) >= n }
}

func totalCorrect(s *State, _ Progress) int { return s.TotalCorrect }
func dayStreak(_ *State, p Progress) int    { return p.DayStreak }
func level(_ *State, p Progress) int        { return p.Level }
func dailyGoals(s *State, _ Progress) int   { return s.DailyGoalsCompleted }
func mastered(_ *State, p Progress) int     { return p.MasteredWords }

var catalog = []definition{
	{Badge{"first-word", "First Word", "Get your first answer right", "🌱"}, atLeast(1, totalCorrect)},
	{Badge{"ten-correct", "Ten Right", "Get 10 answers right", "⭐"}, atLeast(10, totalCorrect)},
	{Badge{"fifty-correct", "Fifty Right", "Get 50 answers right", "🌟"}, atLeast(50, totalCorrect)},
	{Badge{"hundred-correct", "Hundred Club", "Get 100 answers right", "💯"}, atLeast(100, totalCorrect)},
	{Badge{"streak-3", "Three Days", "Play 3 days in a row", "🔥"}, atLeast(3, dayStreak)},
	{Badge{"streak-7", "Week Warrior", "Play 7 days in a row", "🏅"}, atLeast(7, dayStreak)},
	{Badge{"level-5", "Level 5", "Reach level 5", "🚀"}, atLeast(5, level)},
	{Badge{"level-10", "Level 10", "Reach level 10", "👑"}, atLeast(10, level)},
	{Badge{"all-modes", "Explorer", "Try every game", "🧭"}, playedAll},
	{Badge{"daily-goal", "Goal Getter", "Finish a daily goal", "🎯"}, atLeast(1, dailyGoals)},
	{Badge{"daily-goal-5", "Goal Crusher", "Finish 5 daily goals", "🏆"}, atLeast(5, dailyGoals)},
	{Badge{"word-master", "Word Master", "Master 10 words", "📚"}, atLeast(10, mastered)},
	{Badge{"story-time", "Story Time", "Open a word story", "📖"}, func(s *State, _ Progress, _ []string) bool { return s.StoriesOpened }},
}

func playedAll(s *State, _ Progress, allModes []string) bool {
	if len(allModes) == 0 {
		return false
	}
	for _, m := range allModes {
		if !s.ModesPlayed[m] {
			return false
		}
	}
	return true
}

// Catalog returns every badge in display order.
func Catalog() []Badge {
	out := make([]Badge, len(catalog))
	for i, d := range catalog {
		out[i] = d.Badge
	}
	return out
}

// Lookup returns the badge with the given id.
func Lookup(id string) (Badge, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d.Badge, true
		}
	}
	return Badge{}, false
}
