package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "phonix",
	Short: "Phonics games for early readers",
	Long:  "Phonix: a terminal phonics game that helps young children blend, segment and hear the sounds in words.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, appStart{})
	},
	SilenceUsage: true,
}

// Execute runs the command named on the command line.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides PHONIX_DB and the config file)")
	flags.String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/phonix/config.yaml)")
	flags.String("words", "", "Path to a custom word bank JSON file")
	flags.BoolP("verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
