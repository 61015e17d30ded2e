package bowling

// Scoring constants.
const (
	TotalFrames   = 10
	lastFrame     = TotalFrames - 1 // 0-based index of the tenth frame
	AllPins       = 10
	maxFrameRolls = 3
)

// FrameScore is the breakdown of a single frame derived from a roll ledger.
// Total is meaningful only when Resolved is true; a pending strike or spare
// bonus is not the same thing as a frame worth zero.
type FrameScore struct {
	Rolls    []int
	Total    int
	Resolved bool
}

// IsStrike reports whether the frame opened with all ten pins.
func (f FrameScore) IsStrike() bool {
	return len(f.Rolls) > 0 && f.Rolls[0] == AllPins
}

// IsSpare reports whether the first two rolls of a non-strike frame
// added up to ten.
func (f FrameScore) IsSpare() bool {
	return len(f.Rolls) > 1 && f.Rolls[0] < AllPins && f.Rolls[0]+f.Rolls[1] == AllPins
}

// rollAt returns rolls[i] and whether it exists yet.
func rollAt(rolls []int, i int) (int, bool) {
	if i < 0 || i >= len(rolls) {
		return 0, false
	}
	return rolls[i], true
}

// FrameScores converts a roll ledger into per-frame breakdowns.
// The ledger is scanned once from left to right; frames that cannot be
// resolved yet are returned with Resolved == false.
func FrameScores(rolls []int) []FrameScore {
	frames, _ := scanFrames(rolls, 0, 0)
	return frames
}

// scanFrames scores rolls[from:] assuming rolls[from] opens the 0-based frame
// index frame. Bonus lookahead reads the whole ledger. It also returns the
// ledger index each returned frame starts at.
func scanFrames(rolls []int, from, frame int) ([]FrameScore, []int) {
	frames := make([]FrameScore, 0, TotalFrames-frame)
	starts := make([]int, 0, TotalFrames-frame)

	for i := from; i < len(rolls) && frame < TotalFrames; {
		if frame == lastFrame {
			frames = append(frames, tenthFrame(rolls[i:]))
			starts = append(starts, i)
			break
		}

		fs := FrameScore{}
		switch second, ok := rollAt(rolls, i+1); {
		case rolls[i] == AllPins:
			fs.Rolls = []int{AllPins}
			r1, ok1 := rollAt(rolls, i+1)
			r2, ok2 := rollAt(rolls, i+2)
			if ok1 && ok2 {
				fs.Total = AllPins + r1 + r2
				fs.Resolved = true
			}
		case !ok:
			// First roll of an open frame; the second roll completes it.
			fs.Rolls = []int{rolls[i]}
		case rolls[i]+second == AllPins:
			fs.Rolls = []int{rolls[i], second}
			if bonus, ok := rollAt(rolls, i+2); ok {
				fs.Total = AllPins + bonus
				fs.Resolved = true
			}
		default:
			fs.Rolls = []int{rolls[i], second}
			fs.Total = rolls[i] + second
			fs.Resolved = true
		}

		frames = append(frames, fs)
		starts = append(starts, i)
		i += len(fs.Rolls)
		frame++
	}

	return frames, starts
}

// tenthFrame scores the final frame from the rolls left in the ledger.
// It needs no lookahead: it resolves once it holds two rolls without a mark
// or three rolls after a strike or spare.
func tenthFrame(rest []int) FrameScore {
	n := min(len(rest), maxFrameRolls)
	if n > 2 && rest[0]+rest[1] < AllPins {
		// An open tenth frame ends after its second roll.
		n = 2
	}
	fs := FrameScore{Rolls: append([]int(nil), rest[:n]...)}

	sum := 0
	for _, r := range fs.Rolls {
		sum += r
	}

	switch {
	case n == maxFrameRolls:
		fs.Resolved = true
	case n == 2 && fs.Rolls[0]+fs.Rolls[1] < AllPins:
		fs.Resolved = true
	}
	if fs.Resolved {
		fs.Total = sum
	}
	return fs
}

// TotalThrough returns the running total through frameNum (1-based).
// It reports false when frameNum is outside 1..10, when that frame has not
// been played yet, or when it or any earlier frame is still pending.
func TotalThrough(rolls []int, frameNum int) (int, bool) {
	if frameNum < 1 || frameNum > TotalFrames {
		return 0, false
	}
	frames := FrameScores(rolls)
	if frameNum > len(frames) {
		return 0, false
	}

	total := 0
	for _, fs := range frames[:frameNum] {
		if !fs.Resolved {
			return 0, false
		}
		total += fs.Total
	}
	return total, true
}

// GameTotal returns the whole-game total. Unlike TotalThrough it never
// fails: frames still waiting on a bonus count as zero.
func GameTotal(rolls []int) int {
	total := 0
	for _, fs := range FrameScores(rolls) {
		if fs.Resolved {
			total += fs.Total
		}
	}
	return total
}

// CurrentFrame returns the 1-based frame and 0-based roll within it that the
// next appended roll will belong to.
func CurrentFrame(rolls []int) (frame, roll int) {
	frame = 1
	for _, pins := range rolls {
		switch {
		case frame < TotalFrames && roll == 0 && pins == AllPins:
			frame++
		case frame < TotalFrames && roll == 1:
			frame++
			roll = 0
		default:
			roll++
		}
	}
	return frame, roll
}

// ScoreCard is an append-only roll ledger with incrementally maintained
// frame breakdowns.
type ScoreCard struct {
	rolls  []int
	frames []FrameScore
	// starts[i] is the ledger index of the first roll of frames[i].
	starts []int
}

// NewScoreCard returns an empty score card.
func NewScoreCard() *ScoreCard {
	return &ScoreCard{}
}

// Rolls returns a copy of the ledger.
func (c *ScoreCard) Rolls() []int {
	return append([]int(nil), c.rolls...)
}

// Len returns the number of rolls recorded.
func (c *ScoreCard) Len() int {
	return len(c.rolls)
}

// Append records a roll and reports whether it completed a frame in 1..9.
// Resolved frames never change again, so only frames from the first pending
// one onwards are re-scored.
func (c *ScoreCard) Append(pins int) bool {
	frame, roll := CurrentFrame(c.rolls)
	c.rolls = append(c.rolls, pins)

	keep := len(c.frames)
	for i, fs := range c.frames {
		if !fs.Resolved {
			keep = i
			break
		}
	}
	if keep < TotalFrames {
		from := 0
		switch {
		case keep < len(c.starts):
			from = c.starts[keep]
		case keep > 0:
			from = c.starts[keep-1] + len(c.frames[keep-1].Rolls)
		}
		frames, starts := scanFrames(c.rolls, from, keep)
		c.frames = append(c.frames[:keep], frames...)
		c.starts = append(c.starts[:keep], starts...)
	}

	return frame < TotalFrames && (roll == 1 || pins == AllPins)
}

// Frames returns the current frame breakdowns.
func (c *ScoreCard) Frames() []FrameScore {
	out := make([]FrameScore, len(c.frames))
	for i, fs := range c.frames {
		fs.Rolls = append([]int(nil), fs.Rolls...)
		out[i] = fs
	}
	return out
}

// TotalThrough is TotalThrough over the card's ledger.
func (c *ScoreCard) TotalThrough(frameNum int) (int, bool) {
	if frameNum < 1 || frameNum > TotalFrames || frameNum > len(c.frames) {
		return 0, false
	}
	total := 0
	for _, fs := range c.frames[:frameNum] {
		if !fs.Resolved {
			return 0, false
		}
		total += fs.Total
	}
	return total, true
}

// GameTotal is GameTotal over the card's ledger.
func (c *ScoreCard) GameTotal() int {
	total := 0
	for _, fs := range c.frames {
		if fs.Resolved {
			total += fs.Total
		}
	}
	return total
}
