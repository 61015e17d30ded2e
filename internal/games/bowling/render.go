package bowling

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/bowling-solitaire/internal/core"
)

// Score sheet geometry.
const (
	frameBoxW = 7
	tenthBoxW = 9
	totalBoxW = 7
	sheetH    = 5
)

// SheetHeight is the number of rows DrawSheet uses.
const SheetHeight = sheetH

// Pin triangle geometry: each pin takes two rows, rows are three apart and
// pins in a row six columns apart.
const (
	pinSpacingX = 6
	pinSpacingY = 3
)

// pinRows lists pin indexes from the back row to the head pin.
var pinRows = [][]int{
	{6, 7, 8, 9},
	{3, 4, 5},
	{1, 2},
	{0},
}

// Render draws the game view.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.engine == nil {
		return
	}

	dst.DrawTextCentered(0, "B O W L I N G   S O L I T A I R E", core.ColorBrightCyan)

	from, to := SheetWindow(g.engine.Frame(), g.opts.ScoreWindow)
	DrawSheet(dst, g.engine, Player1, 2, 2, from, to)

	g.renderHand(dst, 2, 9)
	g.renderPins(dst, dst.Width()-4*pinSpacingX-6, 8)
	g.renderStatus(dst, 19)

	if g.opts.VisibleDiscards {
		g.renderDiscards(dst, dst.Height()-1)
	}
	dst.DrawTextCentered(dst.Height()-2, "A-J pins  X/Y/Z play  SPACE end roll  N concede  ESC menu", core.ColorGray)

	if g.engine.GameOver() {
		g.renderGameOver(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH), core.ColorGray)
}

// SheetWindow returns the first and last frame of a window of size frames
// that keeps the current frame on the right edge once it scrolls.
func SheetWindow(current, size int) (from, to int) {
	size = core.Clamp(size, 1, TotalFrames)
	current = core.Clamp(current, 1, TotalFrames)
	from = max(1, current-size+1)
	to = min(TotalFrames, from+size-1)
	return from, to
}

// SheetWidth returns the width DrawSheet needs for frames from..to.
func SheetWidth(from, to int) int {
	w := totalBoxW
	for n := from; n <= to; n++ {
		w += frameBoxW
		if n == TotalFrames {
			w += tenthBoxW - frameBoxW
		}
	}
	return w
}

// DrawSheet draws frames from..to of a player's score sheet at (x, y)
// followed by the game total. Each frame box shows the frame number, the
// roll marks and the running total once it is known.
func DrawSheet(dst *core.Screen, e SheetSource, p Player, x, y, from, to int) {
	current := e.Frame()
	for n := from; n <= to; n++ {
		w := frameBoxW
		if n == TotalFrames {
			w = tenthBoxW
		}

		numColor := core.ColorGray
		if n == current && !e.GameOver() {
			numColor = core.ColorBrightYellow
		}
		dst.DrawBox(core.NewRect(x, y, w, sheetH), core.ColorWhite)
		num := fmt.Sprint(n)
		dst.DrawTextColored(x+(w-len(num))/2, y+1, num, numColor)

		if view, ok := e.FrameScore(p, n); ok {
			marks := []string{view.Symbols.First, view.Symbols.Second}
			if n == TotalFrames {
				marks = append(marks, view.Symbols.Third)
			}
			for i, m := range marks {
				dst.DrawTextColored(x+2+2*i, y+2, m, core.ColorBrightWhite)
			}
			if view.Resolved {
				total := fmt.Sprint(view.Cumulative)
				dst.DrawTextColored(x+w-1-len(total)-1, y+3, total, core.ColorBrightWhite)
			}
		}
		x += w
	}

	dst.DrawBox(core.NewRect(x, y, totalBoxW, sheetH), core.ColorCyan)
	dst.DrawTextColored(x+1, y+1, "TOTAL", core.ColorCyan)
	total := fmt.Sprint(e.GameTotal(p))
	dst.DrawTextColored(x+totalBoxW-1-len(total)-1, y+3, total, core.ColorBrightCyan)
}

// renderHand draws the three hand piles with their stack depth below.
func (g *Game) renderHand(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x+7, y, "H A N D", core.ColorCyan)
	lit := g.blinkOn()

	for i := range PileCount {
		cx := x + i*8
		cy := y + 2
		n := g.engine.PileLen(i)
		top, ok := g.engine.PileTop(i)

		color := core.ColorWhite
		if !ok {
			color = core.ColorGray
		} else if g.opts.ShowHints && g.engine.CanPlay(i) && lit {
			color = g.opts.HintColor
		}

		dst.DrawTextColored(cx, cy, fmt.Sprintf("╔═%c═╗", PileLabels[i]), color)
		face := "   "
		if ok {
			face = fmt.Sprintf(" %d ", top)
		}
		dst.DrawTextColored(cx, cy+1, "║"+face+"║", color)
		dst.DrawTextColored(cx, cy+2, "╚═══╝", color)
		for d := 1; d < n; d++ {
			dst.DrawTextColored(cx, cy+2+d, "╚═══╝", core.ColorGray)
		}
	}
}

// renderPins draws the pin triangle. Down pins leave an empty spot.
func (g *Game) renderPins(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x+7, y-1, "P I N S", core.ColorCyan)
	pins := g.engine.Pins()

	for row, idxs := range pinRows {
		for col, i := range idxs {
			px := x + row*pinSpacingX/2 + col*pinSpacingX
			py := y + row*pinSpacingY
			pin := pins[i]

			if pin.Down {
				dst.DrawTextColored(px, py+1, " · ", core.ColorGray)
				continue
			}

			labelColor := core.ColorGray
			switch {
			case pin.Selected:
				labelColor = core.ColorBrightYellow
			case pin.Available:
				labelColor = core.ColorBrightWhite
			}
			dst.DrawTextColored(px, py, fmt.Sprintf("<%c>", pin.Label), labelColor)

			valueColor := core.ColorWhite
			if pin.Selected {
				valueColor = core.ColorBrightYellow
			}
			dst.DrawTextColored(px, py+1, fmt.Sprintf("[%d]", pin.Value), valueColor)
		}
	}
}

func (g *Game) renderStatus(dst *core.Screen, y int) {
	e := g.engine
	sum := "-"
	if s := e.SelectedPinSum(); s >= 0 {
		sum = fmt.Sprint(s)
	}
	status := fmt.Sprintf("Frame %d  Roll %d  Sum %s  Total %d", e.Frame(), e.Roll()+1, sum, e.GameTotal(Player1))
	dst.DrawTextColored(2, y, status, core.ColorWhite)
	if g.message != "" {
		dst.DrawTextColored(2, y+1, g.message, core.ColorRed)
	}
}

func (g *Game) renderDiscards(dst *core.Screen, y int) {
	cards := g.engine.Discards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = fmt.Sprint(int(c))
	}
	dst.DrawTextColored(0, y, "Discarded ["+strings.Join(parts, " ")+"]", core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	w, h := 34, 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, core.ColorBrightYellow)

	cx, _ := box.Center()
	title := fmt.Sprintf("GAME OVER  Score %d", g.engine.GameTotal(Player1))
	dst.DrawTextColored(cx-len(title)/2, box.Y+1, title, core.ColorBrightYellow)
	hint := "ENTER continue  R new game"
	dst.DrawTextColored(cx-len(hint)/2, box.Y+3, hint, core.ColorWhite)
}
