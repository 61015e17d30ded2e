package core

// RuntimeConfig is passed to a game when it is reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second
	Seed     int64 // RNG seed; equal seeds deal equal games
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int  // Running game total
	Frame    int  // Current frame, 1-based
	Roll     int  // Current roll within the frame, 0-based
	GameOver bool // Whether the game has ended
	Paused   bool // Set while the window is too small to play
}

// EventKind names something that happened during a step.
type EventKind string

const (
	EventCardPlayed   EventKind = "card_played"
	EventCardRejected EventKind = "card_rejected"
	EventRollEnded    EventKind = "roll_ended"
	EventFrameStarted EventKind = "frame_started"
	EventGameOver     EventKind = "game_over"
)

// Event is reported by Step so the platform can log and persist without
// diffing game state itself.
type Event struct {
	Kind  EventKind
	Frame int
	Roll  int
	Pins  int // pins counted for a roll_ended event, or the card for card events
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State  GameState
	Events []Event
}
