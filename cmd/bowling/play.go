package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bowling-solitaire/internal/config"
	"github.com/vovakirdan/bowling-solitaire/internal/core"
	"github.com/vovakirdan/bowling-solitaire/internal/platform/tui"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive session",
	Long: `Log in to the doors menu and play Bowling Solitaire.

Settings menu:
  S      - Start a game
  H      - Toggle hints
  V      - Toggle visible discards
  I      - Instructions
  Tab    - High scores
  !      - Delete saved options
  Q      - Back to the doors menu

In a game:
  A-J    - Select or deselect pins
  X/Y/Z  - Play the top card of a hand pile
  Space  - End the roll
  N      - Give up the rest of the frame
  Esc    - Back to settings
  Enter  - Final scores (after game over)
  R      - New game (after game over)
  Ctrl+C - Quit

Examples:
  bowling play
  bowling play --seed 42
  bowling play --profile alice --fps 60
  bowling play --config ./my-bowling.yaml --log-file bowling.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadBowling(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS < 0 || flagFPS > 120 {
		return fmt.Errorf("--fps must be between 1 and 120, got %d", flagFPS)
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}

	// The terminal belongs to Bubble Tea, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger.Warn("playing without persistence", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
		Seed:     flagSeed,
	}

	logger.Info("session started", "profile", flagProfile, "seed", flagSeed, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(tui.SessionConfig{
		Runtime: rc,
		Bowling: cfg,
		Store:   store,
		Profile: flagProfile,
		Logger:  logger,
	}); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	logger.Info("session ended")
	return nil
}
