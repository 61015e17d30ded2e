package script

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/bowling-solitaire/internal/core"
	"github.com/vovakirdan/bowling-solitaire/internal/games/bowling"
)

// boardRows lists pin indexes from the back row to the head pin.
var boardRows = [][]int{{6, 7, 8, 9}, {3, 4, 5}, {1, 2}, {0}}

// Board renders the engine state as plain text: status line, pins, hand
// and the full score sheet. Selected pins are bracketed, down pins dotted.
func Board(e *bowling.Engine) string {
	var sb strings.Builder

	state := fmt.Sprintf("Frame %d  Roll %d", e.Frame(), e.Roll()+1)
	if e.GameOver() {
		state = "Game over"
	}
	fmt.Fprintf(&sb, "%s  Total %d\n\n", state, e.GameTotal(bowling.Player1))

	pins := e.Pins()
	for row, idxs := range boardRows {
		sb.WriteString(strings.Repeat("  ", row))
		for _, i := range idxs {
			p := pins[i]
			cell := fmt.Sprintf("%c%d", p.Label, p.Value)
			if p.Down {
				cell = ".."
			}
			if p.Selected {
				fmt.Fprintf(&sb, "[%s]", cell)
			} else {
				fmt.Fprintf(&sb, " %s ", cell)
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for i := range bowling.PileCount {
		face := "-"
		if c, ok := e.PileTop(i); ok {
			face = fmt.Sprint(int(c))
		}
		fmt.Fprintf(&sb, "%c %s (%d)  ", bowling.PileLabels[i], face, e.PileLen(i))
	}
	sb.WriteString("\n\n")

	w := bowling.SheetWidth(1, bowling.TotalFrames)
	screen := core.NewScreen(w, 5)
	bowling.DrawSheet(screen, e, bowling.Player1, 0, 0, 1, bowling.TotalFrames)
	for y := range screen.Height() {
		sb.WriteString(strings.TrimRight(screen.Row(y), " "))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
