package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export per-word progress as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		out, _ := cmd.Flags().GetString("out")
		if out == "" || out == "-" {
			return e.game.Progress().ExportCSV(cmd.OutOrStdout())
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		if err := e.game.Progress().ExportCSV(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", out, err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Wrote", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Write to this file instead of stdout")
}
