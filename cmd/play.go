package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/phonix/internal/modes"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a game",
	Long: "Start a play session without the welcome screen.\n\nModes: " +
		strings.Join(modeNames(), ", "),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		group, _ := cmd.Flags().GetString("group")
		if !isMode(mode) {
			return fmt.Errorf("unknown mode %q (want one of %s)", mode, strings.Join(modeNames(), ", "))
		}
		return runApp(cmd, appStart{mode: modes.Key(mode), group: group})
	},
}

func modeNames() []string {
	var out []string
	for _, info := range modes.NewRegistry(nil, nil, nil).Infos() {
		out = append(out, string(info.Key))
	}
	return out
}

func isMode(name string) bool {
	return slices.Contains(modeNames(), name)
}

func init() {
	playCmd.Flags().String("mode", string(modes.KeyBlend), "Game mode to play")
	playCmd.Flags().String("group", "", "Only practise words from this sound group (e.g. short-a)")
}
