package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/atelier/am"
	"github.com/teranos/atelier/cmd/atelier/commands"
	"github.com/teranos/atelier/errors"
	"github.com/teranos/atelier/logger"
)

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "atelier - actors, musicians and poets",
	Long: `atelier - describe and award a roster of artists.

The roster is held in memory and seeded with showcase artists
(roster.showcase in am.toml). Nothing is persisted between runs.

Available commands:
  describe - Print artist descriptions
  award    - Give awards to an artist
  genres   - List each artist's genres
  am       - Inspect configuration ("I am")
  version  - Show version information

Examples:
  atelier describe --kind actor
  atelier award --name "Maya Angelou" Tony
  atelier am show --format yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")

		if err := logger.Initialize(cfg.Log.JSON || jsonLogs, cfg.Log.Verbosity+verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Debugw("Configuration loaded", logger.FieldCommand, cmd.Name(), logger.FieldConfigFiles, am.Sources)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(commands.DescribeCmd)
	rootCmd.AddCommand(commands.AwardCmd)
	rootCmd.AddCommand(commands.GenresCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
