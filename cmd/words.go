package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/phonix/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the word bank (optionally filtered by group or level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		bank := words.Default()
		if cfg.WordsFile != "" {
			if bank, err = words.LoadFile(cfg.WordsFile); err != nil {
				return err
			}
		}

		group, _ := cmd.Flags().GetString("group")
		level, _ := cmd.Flags().GetInt("level")

		var list []words.Word
		switch {
		case group != "":
			if _, ok := bank.Group(group); !ok {
				return fmt.Errorf("no sound group %q", group)
			}
			list = bank.GroupWords(group)
			if level != 0 {
				list = bank.ByGroup([]string{group}, level)
			}
		case level != 0:
			list = bank.ByLevel(level)
		default:
			list = bank.All()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-10s  %-16s  %5s  %-8s  %s\n", "Word", "Group", "Level", "Pattern", "Sounds")
		fmt.Fprintln(out, strings.Repeat("─", 64))
		for _, w := range list {
			fmt.Fprintf(out, "%-10s  %-16s  %5d  %-8s  %s\n",
				w.Text, w.Group, w.Level, w.Pattern, strings.Join(w.Graphemes, "-"))
		}
		fmt.Fprintf(out, "\n%d words\n", len(list))
		return nil
	},
}

func init() {
	wordsCmd.Flags().String("group", "", "Only words from this sound group (e.g. digraphs)")
	wordsCmd.Flags().Int("level", 0, "Only words up to this level (1-3)")
}
