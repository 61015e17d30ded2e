package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bowling-solitaire/internal/games/bowling"
	"github.com/vovakirdan/bowling-solitaire/internal/script"
	"github.com/vovakirdan/bowling-solitaire/internal/storage"
)

var (
	flagKeys    string
	flagSave    bool
	flagVerbose bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [script|-]",
	Short: "Run a command script through a seeded game",
	Long: `Deal a game from --seed and drive it with a command script, one command
per line ('#' starts a comment), or with raw keystrokes from --keys. The board
and score sheet are printed at the end.

Commands (unambiguous prefixes and small typos are accepted):
  select <pins>   Toggle pins, e.g. "select abc"
  play <x|y|z>    Play the top card of a pile (1-3 also work)
  end             End the roll
  frame           Give up the rest of the frame
  new             Start a new game
  keys <raw>      Send keystrokes as in the game
  show            Print the board

Examples:
  bowling replay game.txt --seed 7
  echo "select a" | bowling replay - --seed 7
  bowling replay --seed 7 --keys "ax bcy "
  bowling replay game.txt --seed 7 --save --verbose`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagKeys, "keys", "", "Keystrokes to send after the script")
	replayCmd.Flags().BoolVar(&flagSave, "save", false, "Store the game if it finished")
	replayCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every command")
}

func runReplay(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && flagKeys == "" {
		return fmt.Errorf("nothing to replay: give a script file, - for stdin, or --keys")
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	out := cmd.OutOrStdout()
	engine := bowling.NewEngine(rand.New(rand.NewSource(flagSeed)))
	interp := script.New(engine, script.WithOutput(out), script.WithLogger(logger))

	if len(args) == 1 {
		report, err := runScript(cmd, interp, args[0])
		if err != nil {
			return err
		}
		logger.Info("script finished", "applied", report.Applied, "ignored", report.Ignored)
	}
	if flagKeys != "" {
		accepted := interp.Keys(flagKeys)
		logger.Info("keys sent", "accepted", accepted, "sent", len([]rune(flagKeys)))
	}

	fmt.Fprintln(out, script.Board(engine))

	if !flagSave {
		return nil
	}
	if !engine.GameOver() {
		return fmt.Errorf("game is not finished (frame %d), not saving", engine.Frame())
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.SaveGame(storage.GameRecord{
		GameID:  bowling.GameID,
		Profile: flagProfile,
		Seed:    flagSeed,
		Rolls:   engine.Rolls(bowling.Player1),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved game %s with score %d.\n", rec.ID, rec.Total)
	return nil
}

func runScript(cmd *cobra.Command, interp *script.Interpreter, path string) (script.Report, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return script.Report{}, fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		r = f
	}
	return interp.Run(r)
}
