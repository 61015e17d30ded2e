package bowling

import "math/rand"

// Card is a card rank, 0-9.
type Card int

// Deck and hand dimensions.
const (
	TotalCards = 20
	PileCount  = 3
)

// pileSizes are the deal sizes of the X, Y and Z hand piles.
var pileSizes = [PileCount]int{5, 3, 2}

// PileLabels are the keys that play the top card of each pile.
var PileLabels = [PileCount]rune{'X', 'Y', 'Z'}

// NewDeck returns the 20-card deck in dealing order before shuffling:
// ranks 1..9 then 0, twice.
func NewDeck() []Card {
	deck := make([]Card, 0, TotalCards)
	for i := range TotalCards {
		deck = append(deck, Card((i+1)%AllPins))
	}
	return deck
}

// ShuffleDeck permutes the deck in place with a Fisher-Yates shuffle.
func ShuffleDeck(deck []Card, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// Pile is a face-down stack of hand cards. Only the top card is visible.
type Pile struct {
	cards []Card
}

// Len returns the number of cards left in the pile.
func (p Pile) Len() int {
	return len(p.cards)
}

// Top returns the visible card and whether the pile has one.
func (p Pile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return 0, false
	}
	return p.cards[0], true
}

// pop removes and returns the top card.
func (p *Pile) pop() (Card, bool) {
	c, ok := p.Top()
	if ok {
		p.cards = p.cards[1:]
	}
	return c, ok
}

// draw takes the last card off the deck.
func draw(deck *[]Card) Card {
	d := *deck
	c := d[len(d)-1]
	*deck = d[:len(d)-1]
	return c
}
