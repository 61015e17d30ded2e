package bowling

import (
	"math/rand"
	"unicode"
)

// Player identifies a score slot. Only Player1 ever plays; the second slot
// is kept so score queries take a player like a two-player sheet would.
type Player int

const (
	Player1 Player = iota
	Player2
	MaxPlayers
)

// Engine owns one game of Bowling Solitaire: the pin board, the deck and
// hand for the current frame, and each player's roll ledger.
//
// Every mutator is a no-op on input it cannot use (unknown key, pin that is
// not available, card that does not match) and once the game is over.
type Engine struct {
	rng *rand.Rand

	deck     []Card
	pins     [PinCount]Pin
	piles    [PileCount]Pile
	discards []Card
	selected []int

	player Player
	frame  int // 1-based
	roll   int // 0-based roll within the frame
	turn   int // successful plays since the last deal

	downAtRollStart int
	cards           [MaxPlayers]*ScoreCard
	gameOver        bool
}

// NewEngine creates an engine and deals the first frame. A nil rng uses a
// fixed seed.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	e := &Engine{rng: rng}
	e.StartNewGame()
	return e
}

// StartNewGame clears every score and deals frame 1.
func (e *Engine) StartNewGame() {
	for p := range e.cards {
		e.cards[p] = NewScoreCard()
	}
	e.player = Player1
	e.frame = 0
	e.gameOver = false
	e.advanceFrame()
}

// StartNewFrame gives up the rest of the current frame: each remaining roll
// is ended with the pins already down, then the next frame is dealt. In the
// tenth frame this ends the game.
func (e *Engine) StartNewFrame() {
	frame := e.frame
	for !e.gameOver && e.frame == frame {
		e.EndRoll()
	}
}

func (e *Engine) advanceFrame() {
	e.frame++
	e.roll = 0
	e.deal()
}

// deal shuffles a fresh deck and lays out pins and hand piles.
func (e *Engine) deal() {
	e.deck = NewDeck()
	ShuffleDeck(e.deck, e.rng)

	for i := range e.pins {
		e.pins[i] = Pin{Value: draw(&e.deck), Label: PinLabel(i)}
	}
	for i, size := range pileSizes {
		cards := make([]Card, 0, size)
		for range size {
			cards = append(cards, draw(&e.deck))
		}
		e.piles[i] = Pile{cards: cards}
	}

	e.discards = nil
	e.selected = nil
	e.turn = 0
	e.downAtRollStart = 0
	e.updateAvailable()
}

// SelectPin toggles the pin with the given label (A-J, either case).
func (e *Engine) SelectPin(label rune) bool {
	i, ok := PinIndex(label)
	if !ok {
		return false
	}
	return e.SelectPinAt(i)
}

// SelectPinAt toggles pin i. Selecting needs the pin to be available;
// pressing an already selected pin clears the whole selection, since
// dropping a single pin could leave two pins that are not adjacent.
func (e *Engine) SelectPinAt(i int) bool {
	if e.gameOver || i < 0 || i >= PinCount || !e.pins[i].Available {
		return false
	}

	if e.pins[i].Selected {
		e.clearSelection()
	} else {
		e.pins[i].Selected = true
		e.selected = append(e.selected, i)
	}
	e.updateAvailable()
	return true
}

func (e *Engine) clearSelection() {
	for _, i := range e.selected {
		e.pins[i].Selected = false
	}
	e.selected = nil
}

// SelectedPinSum returns the last digit of the selected pins' total, or -1
// with nothing selected.
func (e *Engine) SelectedPinSum() int {
	if len(e.selected) == 0 {
		return -1
	}
	sum := 0
	for _, i := range e.selected {
		sum += int(e.pins[i].Value)
	}
	return sum % 10
}

// CanPlay reports whether the top card of pile matches the selection.
func (e *Engine) CanPlay(pile int) bool {
	if e.gameOver || pile < 0 || pile >= PileCount {
		return false
	}
	top, ok := e.piles[pile].Top()
	return ok && int(top) == e.SelectedPinSum()
}

// PlayCard plays the top card of pile against the selected pins. A card that
// does not match leaves the engine untouched and returns false.
func (e *Engine) PlayCard(pile int) bool {
	if !e.CanPlay(pile) {
		return false
	}

	card, _ := e.piles[pile].pop()
	e.discards = append(e.discards, card)
	for _, i := range e.selected {
		e.pins[i].Down = true
		e.pins[i].Selected = false
		e.discards = append(e.discards, e.pins[i].Value)
	}
	e.selected = nil
	e.turn++

	if e.PinsDown() == PinCount {
		e.recordRoll()
		if e.frame == TotalFrames {
			e.continueTenthFrame()
		} else {
			e.advanceFrame()
		}
	}

	e.updateAvailable()
	return true
}

// continueTenthFrame handles a cleared board in frame 10: a strike on the
// first roll or a strike/spare on the second earns a fresh rack, the third
// roll ends the game.
func (e *Engine) continueTenthFrame() {
	if e.roll >= 2 {
		e.gameOver = true
		return
	}
	e.roll++
	e.deal()
}

// EndRoll stops the current roll, records it, and discards the top card of
// every pile since those cards can no longer be played.
func (e *Engine) EndRoll() bool {
	if e.gameOver {
		return false
	}

	e.recordRoll()
	e.clearSelection()
	e.roll++

	switch {
	case e.frame < TotalFrames && e.roll > 1:
		e.advanceFrame()
		return true
	case e.frame == TotalFrames && e.roll == 2 && e.tenthFrameOpen():
		e.gameOver = true
	case e.roll > 2:
		e.gameOver = true
	}

	if !e.gameOver {
		for i := range e.piles {
			if card, ok := e.piles[i].pop(); ok {
				e.discards = append(e.discards, card)
			}
		}
	}
	e.updateAvailable()
	return true
}

// tenthFrameOpen reports whether the first two tenth-frame rolls left pins
// standing, which allows no third roll.
func (e *Engine) tenthFrameOpen() bool {
	frames := e.cards[e.player].Frames()
	if len(frames) < TotalFrames {
		return false
	}
	rolls := frames[lastFrame].Rolls
	return len(rolls) >= 2 && rolls[0]+rolls[1] < AllPins
}

// recordRoll appends the pins knocked down since the roll began.
func (e *Engine) recordRoll() {
	down := e.PinsDown()
	e.cards[e.player].Append(down - e.downAtRollStart)
	e.downAtRollStart = down
}

// HandleKey dispatches one keystroke: A-J toggle pins, X/Y/Z play a pile,
// space ends the roll. Anything else is ignored.
func (e *Engine) HandleKey(r rune) bool {
	r = unicode.ToUpper(r)
	switch {
	case r >= firstPinLabel && r <= lastPinLabel:
		return e.SelectPin(r)
	case r == ' ':
		return e.EndRoll()
	}
	for i, label := range PileLabels {
		if r == label {
			return e.PlayCard(i)
		}
	}
	return false
}

// updateAvailable recomputes the Available flag of every pin.
func (e *Engine) updateAvailable() {
	if !e.gameOver && e.turn == 0 && len(e.selected) == 0 {
		for i := range e.pins {
			e.pins[i].Available = false
		}
		for _, i := range openingPins {
			e.pins[i].Available = true
		}
		e.pins[centerPinIndex].Available = false
		return
	}
	for i := range e.pins {
		e.pins[i].Available = e.pinAvailable(i)
	}
}

func (e *Engine) pinAvailable(i int) bool {
	pin := e.pins[i]
	switch {
	case e.gameOver:
		return false
	case e.turn == 0 && i >= backRowStart:
		return false
	case pin.Down:
		return false
	case pin.Selected:
		return true
	}

	for _, adj := range pinAdjacency[i] {
		if e.pins[adj].Down && len(e.selected) == 0 {
			return true
		}
		if e.pins[adj].Selected && len(e.selected) < MaxSelected {
			return true
		}
	}
	return false
}

// IsPinAvailable reports whether pin i can be pressed right now.
func (e *Engine) IsPinAvailable(i int) bool {
	if i < 0 || i >= PinCount {
		return false
	}
	return e.pins[i].Available
}

// Pins returns a copy of the board.
func (e *Engine) Pins() [PinCount]Pin {
	return e.pins
}

// SelectedPins returns the selected pin indexes in selection order.
func (e *Engine) SelectedPins() []int {
	return append([]int(nil), e.selected...)
}

// PinsDown counts knocked-down pins.
func (e *Engine) PinsDown() int {
	n := 0
	for _, p := range e.pins {
		if p.Down {
			n++
		}
	}
	return n
}

// PileTop returns the visible card of pile i.
func (e *Engine) PileTop(i int) (Card, bool) {
	if i < 0 || i >= PileCount {
		return 0, false
	}
	return e.piles[i].Top()
}

// PileLen returns the number of cards in pile i.
func (e *Engine) PileLen(i int) int {
	if i < 0 || i >= PileCount {
		return 0
	}
	return e.piles[i].Len()
}

// Discards returns the cards removed from play this frame, in order.
func (e *Engine) Discards() []Card {
	return append([]Card(nil), e.discards...)
}

// DeckLen returns the number of undealt cards.
func (e *Engine) DeckLen() int {
	return len(e.deck)
}

// Frame returns the current 1-based frame.
func (e *Engine) Frame() int { return e.frame }

// Roll returns the current 0-based roll within the frame.
func (e *Engine) Roll() int { return e.roll }

// Turn returns the number of cards played since the last deal.
func (e *Engine) Turn() int { return e.turn }

// Player returns the player whose turn it is.
func (e *Engine) Player() Player { return e.player }

// GameOver reports whether the tenth frame is finished.
func (e *Engine) GameOver() bool { return e.gameOver }

func validPlayer(p Player) bool {
	return p >= 0 && p < MaxPlayers
}

// Rolls returns a copy of a player's roll ledger.
func (e *Engine) Rolls(p Player) []int {
	if !validPlayer(p) {
		return nil
	}
	return e.cards[p].Rolls()
}

// FrameScores returns a player's frame breakdowns so far.
func (e *Engine) FrameScores(p Player) []FrameScore {
	if !validPlayer(p) {
		return nil
	}
	return e.cards[p].Frames()
}

// FrameView is what a score sheet shows for one frame.
type FrameView struct {
	Number     int
	Rolls      []int
	Symbols    FrameSymbols
	Total      int // the frame's own points
	Cumulative int // running total through this frame
	Resolved   bool
}

// FrameScore returns frameNum (1-10) of a player's sheet. It reports false for
// an unknown player or a frame number out of range; frames not reached yet
// come back empty and unresolved.
func (e *Engine) FrameScore(p Player, frameNum int) (FrameView, bool) {
	if !validPlayer(p) {
		return FrameView{}, false
	}
	return frameView(e.cards[p], frameNum)
}

func frameView(card *ScoreCard, frameNum int) (FrameView, bool) {
	if frameNum < 1 || frameNum > TotalFrames {
		return FrameView{}, false
	}
	view := FrameView{Number: frameNum}

	frames := card.Frames()
	if frameNum > len(frames) {
		return view, true
	}
	fs := frames[frameNum-1]
	view.Rolls = fs.Rolls
	view.Symbols = Symbols(fs, frameNum)
	view.Total = fs.Total
	view.Cumulative, view.Resolved = card.TotalThrough(frameNum)
	return view, true
}

// TotalScore returns a player's running total through frameNum, or false if
// it is not known yet.
func (e *Engine) TotalScore(p Player, frameNum int) (int, bool) {
	if !validPlayer(p) {
		return 0, false
	}
	return e.cards[p].TotalThrough(frameNum)
}

// GameTotal returns a player's whole-game total, counting pending frames as
// zero.
func (e *Engine) GameTotal(p Player) int {
	if !validPlayer(p) {
		return 0
	}
	return e.cards[p].GameTotal()
}
