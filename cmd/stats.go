package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/phonix/internal/curriculum"
	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		weak, _ := cmd.Flags().GetInt("weak")
		printStats(cmd.OutOrStdout(), e.game, weak)
		return nil
	},
}

func printStats(w io.Writer, g *game.Game, weak int) {
	stats := g.Progress().OverallStats()
	level := curriculum.LevelInfo(stats.XP)
	done, goal := g.Gamification().Daily()

	fmt.Fprintf(w, "Level %d (%s), %d XP\n", level.Level, level.Title(), stats.XP)
	fmt.Fprintf(w, "Day streak %d, best %d, today %d/%d\n",
		stats.Streak, g.Store().Int(store.KeyBestStreak), done, goal)
	fmt.Fprintf(w, "Answers %d, right %d, accuracy %.0f%%\n",
		stats.TotalAttempts, stats.TotalCorrect, stats.Accuracy*100)
	fmt.Fprintf(w, "Words tried %d, mastered %d, badges %d\n\n",
		stats.WordsAttempted, stats.WordsMastered, len(g.Badges().Earned()))

	fmt.Fprintf(w, "%-16s  %5s  %8s  %8s  %7s\n", "Group", "Words", "Tried", "Mastered", "Mastery")
	fmt.Fprintln(w, strings.Repeat("─", 52))
	for _, gs := range g.Progress().GroupStats() {
		fmt.Fprintf(w, "%-16s  %5d  %8d  %8d  %6.0f%%\n",
			gs.Group.Key, gs.Words, gs.Attempted, gs.Mastered, stats.GroupMastery[gs.Group.Key]*100)
	}

	if weak <= 0 {
		return
	}
	reports := g.Progress().WeakWords(weak)
	if len(reports) == 0 {
		return
	}
	fmt.Fprintln(w, "\nNeeds practice:")
	for _, r := range reports {
		fmt.Fprintf(w, "  %-12s %d/%d  %.0f%%\n", r.Text, r.Correct, r.Attempts, r.Accuracy.Accuracy*100)
	}
}

func init() {
	statsCmd.Flags().Int("weak", 5, "Number of weak words to list (0 to hide)")
}
