package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bowling-solitaire/internal/core"
	"github.com/vovakirdan/bowling-solitaire/internal/games/bowling"
)

// GameView runs one bowling game inside the session: it buffers the keys
// pressed between ticks and steps the game on each tick.
type GameView struct {
	game       *bowling.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
}

// NewGameView deals a new game with cfg and the given options.
func NewGameView(game *bowling.Game, opts bowling.Options, cfg core.RuntimeConfig) *GameView {
	game.SetOptions(opts)
	game.Reset(cfg)
	return &GameView{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// GameViewKey is what a key press asks of the session.
type GameViewKey int

const (
	GameKeyNone GameViewKey = iota
	GameKeyBack
	GameKeyConfirm
	GameKeyRestart
	GameKeyQuit
)

// HandleKey buffers the key for the next tick. Back, confirm, restart and
// quit are returned to the session instead of being passed to the game, so
// a restarted game is dealt from a fresh seed.
func (v *GameView) HandleKey(msg tea.KeyMsg) GameViewKey {
	if msg.String() == "ctrl+s" {
		v.saveScreenshot()
		return GameKeyNone
	}

	action, isQuit := v.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		return GameKeyQuit
	case action == core.ActionBack:
		return GameKeyBack
	case action == core.ActionConfirm:
		return GameKeyConfirm
	case action == core.ActionRestart:
		if v.gameState.GameOver {
			return GameKeyRestart
		}
	case action != core.ActionNone:
		v.inputFrame.Set(action)
	}
	return GameKeyNone
}

// Resize keeps the game in progress and only changes the screen.
func (v *GameView) Resize(w, h int) {
	v.config.ScreenW = w
	v.config.ScreenH = h
	v.screen.Resize(w, h)
	v.game.Resize(w, h)
}

// Step runs one tick with the buffered input.
func (v *GameView) Step() core.StepResult {
	result := v.game.Step(v.inputFrame)
	v.gameState = result.State
	v.inputFrame.Clear()
	return result
}

// State returns the state after the last tick.
func (v *GameView) State() core.GameState {
	return v.gameState
}

// Game returns the game being played.
func (v *GameView) Game() *bowling.Game {
	return v.game
}

// Seed returns the seed the game was dealt with.
func (v *GameView) Seed() int64 {
	return v.config.Seed
}

// saveScreenshot writes the current screen as plain text under
// ~/.bowling/screenshots.
func (v *GameView) saveScreenshot() {
	v.game.Render(v.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".bowling", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", v.game.ID(), timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(v.screen.String()), 0o600)
}

// View renders the game to a styled string.
func (v *GameView) View() string {
	v.game.Render(v.screen)
	return RenderScreen(v.screen)
}
