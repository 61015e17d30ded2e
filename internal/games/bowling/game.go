package bowling

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/bowling-solitaire/internal/core"
	"github.com/vovakirdan/bowling-solitaire/internal/registry"
)

// GameID is the registry and storage identifier of the game.
const GameID = "bowling"

// Minimum screen size for the game view.
const (
	minScreenW = 64
	minScreenH = 22
)

// Options are the player-facing toggles and display settings.
type Options struct {
	ShowHints       bool // highlight hand cards that match the selection
	VisibleDiscards bool // list the cards removed from play this frame
	ScoreWindow     int  // frames shown on the in-game score sheet
	BlinkTicks      int  // ticks per blink phase of the hint highlight; 0 disables blinking
	HintColor       core.Color
}

// DefaultOptions returns the options of a new profile.
func DefaultOptions() Options {
	return Options{
		ScoreWindow: 3,
		BlinkTicks:  8,
		HintColor:   core.ColorBrightGreen,
	}
}

// Game adapts an Engine to the platform's registry.Game interface.
type Game struct {
	engine *Engine
	opts   Options
	tick   uint64

	screenW  int
	screenH  int
	tooSmall bool

	message string // feedback line under the board
}

// New creates a bowling game with default options. Reset must be called
// before it is played.
func New() *Game {
	return &Game{opts: DefaultOptions()}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bowling Solitaire"
}

// Reset starts a new game dealt from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewEngine(rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.message = ""
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without touching the game in progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// SetOptions replaces the display options.
func (g *Game) SetOptions(o Options) {
	if o.ScoreWindow < 1 || o.ScoreWindow > TotalFrames {
		o.ScoreWindow = DefaultOptions().ScoreWindow
	}
	if o.BlinkTicks < 0 {
		o.BlinkTicks = 0
	}
	g.opts = o
}

// Options returns the current display options.
func (g *Game) Options() Options {
	return g.opts
}

// Engine exposes the underlying engine for score queries.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step applies the actions of one tick in the order they were pressed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.engine == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	for _, a := range in.Ordered() {
		events = g.apply(a, events)
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) apply(a core.Action, events []core.Event) []core.Event {
	e := g.engine

	frame, roll, over := e.Frame(), e.Roll(), e.GameOver()
	recorded := len(e.Rolls(e.Player()))

	if i, ok := a.Pin(); ok {
		e.SelectPinAt(i)
		return events
	}

	if i, ok := a.Pile(); ok {
		top, hasTop := e.PileTop(i)
		switch {
		case e.PlayCard(i):
			g.message = ""
			events = append(events, core.Event{Kind: core.EventCardPlayed, Frame: frame, Roll: roll, Pins: int(top)})
		case hasTop && !over:
			g.message = fmt.Sprintf("The %c card (%d) does not match the selection.", PileLabels[i], top)
			events = append(events, core.Event{Kind: core.EventCardRejected, Frame: frame, Roll: roll, Pins: int(top)})
		}
	} else {
		switch a {
		case core.ActionEndRoll:
			e.EndRoll()
		case core.ActionConcede:
			e.StartNewFrame()
		default:
			return events
		}
		g.message = ""
	}

	return append(events, g.progress(recorded, frame, over)...)
}

// progress reports the rolls recorded and the frame or game transitions
// that happened since the given bookkeeping was taken.
func (g *Game) progress(recorded, frame int, wasOver bool) []core.Event {
	e := g.engine
	rolls := e.Rolls(e.Player())

	var events []core.Event
	for k := recorded; k < len(rolls); k++ {
		f, r := CurrentFrame(rolls[:k])
		events = append(events, core.Event{Kind: core.EventRollEnded, Frame: f, Roll: r, Pins: rolls[k]})
	}
	if e.GameOver() && !wasOver {
		events = append(events, core.Event{Kind: core.EventGameOver, Frame: e.Frame(), Pins: e.GameTotal(e.Player())})
	} else if e.Frame() != frame {
		events = append(events, core.Event{Kind: core.EventFrameStarted, Frame: e.Frame()})
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Paused: g.tooSmall}
	}
	return core.GameState{
		Score:    g.engine.GameTotal(Player1),
		Frame:    g.engine.Frame(),
		Roll:     g.engine.Roll(),
		GameOver: g.engine.GameOver(),
		Paused:   g.tooSmall,
	}
}

// blinkOn reports whether blinking elements are lit this tick.
func (g *Game) blinkOn() bool {
	if g.opts.BlinkTicks <= 0 {
		return true
	}
	return (g.tick/uint64(g.opts.BlinkTicks))%2 == 0
}
