package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/phonix/internal/curriculum"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Show the curriculum stages and which are unlocked",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		cur := e.game.Curriculum()
		mastery := e.store.GroupMastery()
		next, _ := e.game.RecommendedStage()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s  %-28s  %-8s  %7s  %s\n", "ID", "Name", "Status", "Mastery", "Groups")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, st := range cur.Stages() {
			status := "locked"
			if cur.IsUnlocked(st.ID, mastery) {
				status = "open"
			}
			if st.ID == next.ID {
				status = "next"
			}
			fmt.Fprintf(out, "%-8s  %-28s  %-8s  %6.0f%%  %s\n",
				st.ID, st.Name, status, curriculum.StageMastery(st, mastery)*100, strings.Join(st.Groups, ", "))
		}
		return nil
	},
}
