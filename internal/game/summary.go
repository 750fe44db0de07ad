package game

import (
	"time"

	"github.com/abhisek/phonix/internal/badges"
	"github.com/abhisek/phonix/internal/modes"
)

// WordResult is the per-word tally shown on the summary screen.
type WordResult struct {
	WordID   string
	Text     string
	Emoji    string
	Attempts int
	Correct  int
}

// Summary holds the data displayed at the end of a session.
type Summary struct {
	SessionID string
	Mode      modes.Key
	Duration  time.Duration
	Questions int
	Correct   int
	Accuracy  float64
	XPEarned  int
	BestRun   int
	Badges    []badges.Badge
	Words     []WordResult
}

// Summary builds the summary of the current or last session.
func (g *Game) Summary() Summary {
	stats := g.gamify.SessionStats()

	var results []WordResult
	index := map[string]int{}
	for _, o := range g.outcomes {
		i, ok := index[o.Word.ID]
		if !ok {
			i = len(results)
			index[o.Word.ID] = i
			results = append(results, WordResult{WordID: o.Word.ID, Text: o.Word.Text, Emoji: o.Word.Emoji})
		}
		results[i].Attempts++
		if o.Correct {
			results[i].Correct++
		}
	}

	return Summary{
		SessionID: stats.ID,
		Mode:      g.modeKey,
		Duration:  g.now().Sub(g.started),
		Questions: stats.Total,
		Correct:   stats.Correct,
		Accuracy:  stats.Accuracy,
		XPEarned:  stats.XPEarned,
		BestRun:   stats.BestRun,
		Badges:    append([]badges.Badge(nil), g.earned...),
		Words:     results,
	}
}
