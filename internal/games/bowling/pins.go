package bowling

// Pin board constants.
const (
	PinCount       = 10
	MaxSelected    = 3
	backRowStart   = 6 // pins G-J
	firstPinLabel  = 'A'
	lastPinLabel   = 'J'
	centerPinIndex = 4 // pin E
)

// Pin is one pin card on the board. Value is fixed for the life of a deal.
type Pin struct {
	Value     Card
	Label     rune
	Down      bool
	Selected  bool
	Available bool
}

// pinAdjacency lists the neighbors of each pin in the triangle:
//
//	G H I J
//	 D E F
//	  B C
//	   A
var pinAdjacency = [PinCount][]int{
	{1, 2},
	{0, 2, 3, 4},
	{0, 1, 4, 5},
	{1, 4, 6, 7},
	{1, 2, 3, 5, 7, 8},
	{2, 4, 8, 9},
	{3, 7},
	{3, 4, 6, 8},
	{4, 5, 7, 9},
	{5, 8},
}

// openingPins are the pins playable before anything is selected on the
// first turn of a deal.
var openingPins = [...]int{0, 1, 2, 3, 5}

// Adjacent returns the neighbors of pin i, or nil for an unknown pin.
func Adjacent(i int) []int {
	if i < 0 || i >= PinCount {
		return nil
	}
	return append([]int(nil), pinAdjacency[i]...)
}

// PinIndex maps a pin label (either case) to its board index.
func PinIndex(label rune) (int, bool) {
	if label >= 'a' && label <= 'z' {
		label -= 'a' - 'A'
	}
	if label < firstPinLabel || label > lastPinLabel {
		return 0, false
	}
	return int(label - firstPinLabel), true
}

// PinLabel returns the label of pin i.
func PinLabel(i int) rune {
	return rune(firstPinLabel + i)
}
