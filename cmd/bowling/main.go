// bowling is Bowling Solitaire, a card game scored like ten-pin bowling,
// played in the terminal.
//
// Usage:
//
//	bowling play             - Start an interactive session
//	bowling scores           - Show the best stored games
//	bowling replay <script>  - Run a command script through a seeded game
//	bowling options          - Show or change saved options
//
// Global flags:
//
//	--seed <value>    - RNG seed for reproducible deals
//	--db <path>       - Database path (default: ~/.bowling/bowling.db)
//	--config <path>   - Custom config YAML
//	--profile <name>  - Player profile (default: local)
//	--log-file <path> - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bowling-solitaire/internal/platform/tui"
	"github.com/vovakirdan/bowling-solitaire/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagProfile string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bowling",
	Short: "Bowling Solitaire - a card game scored like bowling",
	Long: `Bowling Solitaire is a single-player card game played with the rules
of ten-pin bowling. Knock pins down by matching the last digit of their sum
with a card from your hand.

Available commands:
  play     - Start an interactive session
  scores   - Show the best stored games
  replay   - Run a command script through a seeded game
  options  - Show or change saved options

Examples:
  bowling play
  bowling play --seed 42 --log-file bowling.log
  bowling scores --sheets
  bowling replay game.txt --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", tui.DefaultProfile, "Player profile name")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(optionsCmd)
}

// newLogger builds the command logger. Logs go to --log-file when it is set
// and to fallback otherwise. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bowling",
	})
	return logger, closeFn, nil
}

// openStore opens the database named by --db.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return store, nil
}
