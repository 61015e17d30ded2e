package bowling

// Snapshot captures the observable game state for determinism tests and
// replay output.
type Snapshot struct {
	Tick     uint64
	Frame    int
	Roll     int
	Turn     int
	Pins     [PinCount]Pin
	PileTops [PileCount]int // -1 for an empty pile
	PileLens [PileCount]int
	Discards []Card
	Rolls    []int
	Total    int
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.engine.Snapshot()
	s.Tick = g.tick
	return s
}

// Snapshot returns the engine's current state. Tick is always zero.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Frame:    e.frame,
		Roll:     e.roll,
		Turn:     e.turn,
		Pins:     e.pins,
		Discards: e.Discards(),
		Rolls:    e.Rolls(e.player),
		Total:    e.GameTotal(e.player),
		GameOver: e.gameOver,
	}
	for i := range e.piles {
		s.PileTops[i] = -1
		if c, ok := e.piles[i].Top(); ok {
			s.PileTops[i] = int(c)
		}
		s.PileLens[i] = e.piles[i].Len()
	}
	return s
}
