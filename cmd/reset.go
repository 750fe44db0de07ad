package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	Long:  "Clear XP, levels, streaks and word history. Settings return to their configured defaults; only the parent PIN is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		withBadges, _ := cmd.Flags().GetBool("badges")
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			what := "progress"
			if withBadges {
				what = "progress and badges"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset all %s? [y/N] ", what)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing changed.")
				return nil
			}
		}

		e, err := openEnv(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		e.game.ResetProgress(withBadges)
		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("badges", false, "Also clear earned badges")
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
