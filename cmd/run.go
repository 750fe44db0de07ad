package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/phonix/internal/app"
	"github.com/abhisek/phonix/internal/modes"
)

type appStart struct {
	mode  modes.Key
	group string
}

// runApp opens the player's progress and launches the TUI.
func runApp(cmd *cobra.Command, start appStart) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	if start.group != "" {
		if _, ok := e.game.Bank().Group(start.group); !ok {
			return fmt.Errorf("unknown sound group %q", start.group)
		}
	}
	return app.Run(ctx, e.game, app.Options{
		RefillDelay: e.cfg.RefillDelay,
		StartMode:   start.mode,
		Group:       start.group,
	})
}
