package progress

import (
	"cmp"
	"slices"

	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/store"
	"github.com/abhisek/phonix/internal/words"
)

// Accuracy is the attempt summary of one word.
type Accuracy struct {
	Attempts int
	Correct  int
	Accuracy float64
}

// Stats is the aggregate progress snapshot shown on the dashboard.
type Stats struct {
	TotalAttempts  int
	TotalCorrect   int
	Accuracy       float64
	WordsAttempted int
	WordsMastered  int
	GroupMastery   map[string]float64
	RecentHistory  []store.HistoryEntry
	XP             int
	Level          int
	Streak         int
}

// GroupStat summarises one word group.
type GroupStat struct {
	Group     words.Group
	Words     int
	Attempted int
	Mastered  int
	Attempts  int
	Correct   int
	Accuracy  float64
}

// WordReport pairs a word id with its display text and accuracy.
type WordReport struct {
	WordID string
	Text   string
	Accuracy
}

// groupAccuracy sums attempts and correct answers over every word of a
// group. ok is false when nothing in the group has been attempted.
func groupAccuracy(group []words.Word, stats map[string]store.WordStat) (float64, bool) {
	var attempts, correct int
	for _, w := range group {
		ws := stats[w.ID]
		attempts += ws.Attempts
		correct += ws.Correct
	}
	if attempts == 0 {
		return 0, false
	}
	return float64(correct) / float64(attempts), true
}

// IsNewWord reports whether the word has never been attempted.
func (e *Engine) IsNewWord(wordID string) bool {
	ws, ok := e.store.WordStat(wordID)
	return !ok || ws.Attempts == 0
}

// WordAccuracy returns the attempt summary of one word.
func (e *Engine) WordAccuracy(wordID string) Accuracy {
	ws, _ := e.store.WordStat(wordID)
	return Accuracy{Attempts: ws.Attempts, Correct: ws.Correct, Accuracy: ws.Accuracy()}
}

// OverallStats aggregates every word statistic with the current XP,
// level and day streak.
func (e *Engine) OverallStats() Stats {
	snap := e.store.Snapshot()

	s := Stats{
		GroupMastery:  snap.GroupMastery,
		RecentHistory: snap.History,
		XP:            snap.XP,
		Level:         curriculum.LevelInfo(snap.XP).Level,
		Streak:        snap.Streak,
	}
	if len(s.RecentHistory) > RecentHistorySize {
		s.RecentHistory = s.RecentHistory[:RecentHistorySize]
	}

	for _, ws := range snap.WordStats {
		if ws.Attempts == 0 {
			continue
		}
		s.TotalAttempts += ws.Attempts
		s.TotalCorrect += ws.Correct
		s.WordsAttempted++
		if IsMastered(ws) {
			s.WordsMastered++
		}
	}
	if s.TotalAttempts > 0 {
		s.Accuracy = float64(s.TotalCorrect) / float64(s.TotalAttempts)
	}
	return s
}

// WeakWords returns up to n attempted words with the lowest accuracy.
// Words need at least two attempts to qualify.
func (e *Engine) WeakWords(n int) []WordReport {
	var out []WordReport
	for id, ws := range e.store.WordStats() {
		if ws.Attempts < 2 {
			continue
		}
		out = append(out, WordReport{
			WordID:   id,
			Text:     e.Label(id),
			Accuracy: Accuracy{Attempts: ws.Attempts, Correct: ws.Correct, Accuracy: ws.Accuracy()},
		})
	}
	slices.SortFunc(out, func(a, b WordReport) int {
		return cmp.Or(
			cmp.Compare(a.Accuracy.Accuracy, b.Accuracy.Accuracy),
			cmp.Compare(b.Attempts, a.Attempts),
			cmp.Compare(a.WordID, b.WordID),
		)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// GroupStats returns per-group totals in bank group order.
func (e *Engine) GroupStats() []GroupStat {
	stats := e.store.WordStats()

	var out []GroupStat
	for _, g := range e.bank.Groups() {
		gs := GroupStat{Group: g}
		for _, w := range e.bank.GroupWords(g.Key) {
			gs.Words++
			ws, ok := stats[w.ID]
			if !ok || ws.Attempts == 0 {
				continue
			}
			gs.Attempted++
			gs.Attempts += ws.Attempts
			gs.Correct += ws.Correct
			if IsMastered(ws) {
				gs.Mastered++
			}
		}
		if gs.Attempts > 0 {
			gs.Accuracy = float64(gs.Correct) / float64(gs.Attempts)
		}
		out = append(out, gs)
	}
	return out
}
