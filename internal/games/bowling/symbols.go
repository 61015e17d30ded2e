package bowling

import "strconv"

// FrameSymbols holds the marks written in a frame's roll boxes.
// Empty strings are boxes with nothing to show yet.
type FrameSymbols struct {
	First  string
	Second string
	Third  string
}

// Symbols returns the score-sheet marks for a frame: X for a strike, / for a
// spare and - for a roll that knocked nothing. In frames 1-9 a strike is
// written in the second box with the first left blank.
func Symbols(fs FrameScore, frameNum int) FrameSymbols {
	marks := [maxFrameRolls]string{}
	for i, r := range fs.Rolls {
		if i >= maxFrameRolls {
			break
		}
		marks[i] = rollMark(r)
	}

	if frameNum == TotalFrames {
		tenthMarks(fs.Rolls, &marks)
		return FrameSymbols{First: marks[0], Second: marks[1], Third: marks[2]}
	}

	switch {
	case fs.IsStrike():
		return FrameSymbols{Second: "X"}
	case fs.IsSpare():
		marks[1] = "/"
	}
	return FrameSymbols{First: marks[0], Second: marks[1]}
}

// tenthMarks applies strike and spare marks to the three tenth-frame boxes.
func tenthMarks(rolls []int, marks *[maxFrameRolls]string) {
	r := [maxFrameRolls]int{}
	copy(r[:], rolls)
	n := len(rolls)

	if n > 0 && r[0] == AllPins {
		marks[0] = "X"
		switch {
		case n > 1 && r[1] == AllPins:
			marks[1] = "X"
			if n > 2 && r[2] == AllPins {
				marks[2] = "X"
			}
		case n > 2 && r[1]+r[2] == AllPins:
			marks[2] = "/"
		}
		return
	}

	if n > 1 && r[0]+r[1] == AllPins {
		marks[1] = "/"
		if n > 2 && r[2] == AllPins {
			marks[2] = "X"
		}
	}
}

func rollMark(pins int) string {
	if pins == 0 {
		return "-"
	}
	return strconv.Itoa(pins)
}
