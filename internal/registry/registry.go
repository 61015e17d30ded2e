// Package registry keeps the game factories the platform can start.
// Games register themselves in init() functions, so the session and the CLI
// can create a game by its ID without importing its package directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bowling-solitaire/internal/core"
)

// Game is the interface the platform drives each tick.
// Implementations hold pure game logic with no terminal dependencies (no
// Bubble Tea); key mapping, timing and styled output belong to the platform.
type Game interface {
	// ID returns a stable identifier (e.g., "bowling").
	// Used by the CLI and as the game_id column in storage.
	ID() string

	// Title returns the display name (e.g., "Bowling Solitaire").
	Title() string

	// Reset deals a fresh game.
	// The RuntimeConfig carries the screen size and the RNG seed; equal
	// seeds must deal equal games.
	Reset(cfg core.RuntimeConfig)

	// Step applies the actions pressed since the last tick, in order.
	// Returns the resulting state and the events (rolls, frames, game over)
	// the platform logs and persists.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board, hand and score sheet into dst.
	// The game clears dst itself before drawing.
	Render(dst *core.Screen)

	// State returns the current game state (score, frame, game over).
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet dealt, game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Called from the game package's init() function.
// Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Cache the title once so Title and List never build a game
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	// Map iteration order is random; keep listings stable
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
// Returns an error if no game registered that ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Title returns the display name of a registered game.
// Falls back to the ID itself for an unknown game, so headings never
// come out empty.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
