package curriculum

// LevelThresholds holds the minimum XP for each level; index 0 is level 1.
var LevelThresholds = []int{0, 50, 120, 220, 350, 520, 740, 1000, 1320, 1700}

// LevelTitles are shown next to the level number.
var LevelTitles = []string{
	"Sound Seeker",
	"Letter Friend",
	"Blend Buddy",
	"Word Builder",
	"Sound Sleuth",
	"Phonics Pal",
	"Reading Ranger",
	"Word Wizard",
	"Story Star",
	"Phonics Champion",
}

// MaxLevel is the highest reachable level.
func MaxLevel() int {
	return len(LevelThresholds)
}

// Level describes where an XP total sits on the level ladder. Progress is
// the fraction of the way to NextLevelXP, 1 at the max level.
type Level struct {
	Level       int
	Progress    float64
	NextLevelXP int
}

// Title returns the display title for the level.
func (l Level) Title() string {
	if l.Level < 1 || l.Level > len(LevelTitles) {
		return ""
	}
	return LevelTitles[l.Level-1]
}

// IsMax reports whether the level is the highest one.
func (l Level) IsMax() bool {
	return l.Level >= MaxLevel()
}

// LevelInfo maps an XP total to its level and progress toward the next one.
func LevelInfo(xp int) Level {
	idx := 0
	for i, threshold := range LevelThresholds {
		if xp >= threshold {
			idx = i
		}
	}

	if idx == len(LevelThresholds)-1 {
		return Level{
			Level:       idx + 1,
			Progress:    1.0,
			NextLevelXP: LevelThresholds[idx],
		}
	}

	lo, hi := LevelThresholds[idx], LevelThresholds[idx+1]
	progress := float64(xp-lo) / float64(hi-lo)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return Level{
		Level:       idx + 1,
		Progress:    progress,
		NextLevelXP: hi,
	}
}
