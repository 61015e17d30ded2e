package bowling

// SheetSource is what DrawSheet reads: a live Engine or a stored Sheet.
type SheetSource interface {
	FrameScore(p Player, frameNum int) (FrameView, bool)
	GameTotal(p Player) int
	Frame() int
	GameOver() bool
}

var (
	_ SheetSource = (*Engine)(nil)
	_ SheetSource = (*Sheet)(nil)
)

// Sheet is a read-only score sheet rebuilt from a stored roll ledger. Only
// Player1 has rolls.
type Sheet struct {
	card  *ScoreCard
	empty *ScoreCard
}

// NewSheet scores rolls as Player1's ledger.
func NewSheet(rolls []int) *Sheet {
	s := &Sheet{card: NewScoreCard(), empty: NewScoreCard()}
	for _, r := range rolls {
		s.card.Append(r)
	}
	return s
}

func (s *Sheet) cardFor(p Player) (*ScoreCard, bool) {
	switch p {
	case Player1:
		return s.card, true
	case Player2:
		return s.empty, true
	}
	return nil, false
}

// FrameScore returns frameNum (1-10) of a player's sheet.
func (s *Sheet) FrameScore(p Player, frameNum int) (FrameView, bool) {
	card, ok := s.cardFor(p)
	if !ok {
		return FrameView{}, false
	}
	return frameView(card, frameNum)
}

// GameTotal returns a player's total, counting pending frames as zero.
func (s *Sheet) GameTotal(p Player) int {
	card, ok := s.cardFor(p)
	if !ok {
		return 0
	}
	return card.GameTotal()
}

// Frame returns the frame the next roll would belong to, capped at 10.
func (s *Sheet) Frame() int {
	frame, _ := CurrentFrame(s.card.Rolls())
	return min(frame, TotalFrames)
}

// GameOver reports whether the ledger holds a complete game.
func (s *Sheet) GameOver() bool {
	frames := s.card.Frames()
	return len(frames) == TotalFrames && frames[lastFrame].Resolved
}
