package bowling

import (
	"math/rand"
	"reflect"
	"testing"
)

func rollMany(n, pins int) []int {
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = pins
	}
	return rolls
}

// tenthFrameRolls returns nine gutter frames followed by the given rolls.
func tenthFrameRolls(last ...int) []int {
	return append(rollMany(18, 0), last...)
}

func TestOpenFrames(t *testing.T) {
	rolls := []int{3, 4, 2, 5, 0, 9, 8, 1, 4, 4, 6, 2, 1, 1, 0, 0, 7, 2, 5, 3}

	frames := FrameScores(rolls)
	if len(frames) != TotalFrames {
		t.Fatalf("got %d frames, want %d", len(frames), TotalFrames)
	}

	running := 0
	for i, fs := range frames {
		want := rolls[2*i] + rolls[2*i+1]
		if !fs.Resolved || fs.Total != want {
			t.Errorf("frame %d = %+v, want resolved total %d", i+1, fs, want)
		}
		running += want
		got, ok := TotalThrough(rolls, i+1)
		if !ok || got != running {
			t.Errorf("TotalThrough(%d) = %d, %v, want %d", i+1, got, ok, running)
		}
	}
	if GameTotal(rolls) != running {
		t.Errorf("GameTotal = %d, want %d", GameTotal(rolls), running)
	}
}

func TestFrameScores(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		want  []FrameScore
	}{
		{
			name:  "empty ledger",
			rolls: nil,
			want:  []FrameScore{},
		},
		{
			name:  "strike carries two rolls",
			rolls: []int{10, 5, 2},
			want: []FrameScore{
				{Rolls: []int{10}, Total: 17, Resolved: true},
				{Rolls: []int{5, 2}, Total: 7, Resolved: true},
			},
		},
		{
			name:  "spare carries one roll",
			rolls: []int{5, 5, 3},
			want: []FrameScore{
				{Rolls: []int{5, 5}, Total: 13, Resolved: true},
				{Rolls: []int{3}},
			},
		},
		{
			name:  "lone strike is pending",
			rolls: []int{10},
			want:  []FrameScore{{Rolls: []int{10}}},
		},
		{
			name:  "strike with one bonus roll is pending",
			rolls: []int{10, 10},
			want: []FrameScore{
				{Rolls: []int{10}},
				{Rolls: []int{10}},
			},
		},
		{
			name:  "spare without bonus is pending",
			rolls: []int{6, 4},
			want:  []FrameScore{{Rolls: []int{6, 4}}},
		},
		{
			name:  "gutter frame is resolved zero",
			rolls: []int{0, 0},
			want:  []FrameScore{{Rolls: []int{0, 0}, Total: 0, Resolved: true}},
		},
		{
			name:  "ten on the second roll is a spare",
			rolls: []int{0, 10, 4, 1},
			want: []FrameScore{
				{Rolls: []int{0, 10}, Total: 14, Resolved: true},
				{Rolls: []int{4, 1}, Total: 5, Resolved: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrameScores(tt.rolls)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FrameScores(%v) = %+v, want %+v", tt.rolls, got, tt.want)
			}
		})
	}
}

func TestPendingIsNotZero(t *testing.T) {
	frames := FrameScores([]int{10})
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	if frames[0].Resolved {
		t.Errorf("lone strike should be pending, got total %d", frames[0].Total)
	}
	if _, ok := TotalThrough([]int{10}, 1); ok {
		t.Error("TotalThrough should report a pending frame as unavailable")
	}

	gutter := FrameScores([]int{0, 0})
	if !gutter[0].Resolved || gutter[0].Total != 0 {
		t.Errorf("gutter frame should be a resolved zero, got %+v", gutter[0])
	}
}

func TestPerfectGame(t *testing.T) {
	rolls := rollMany(12, 10)

	frames := FrameScores(rolls)
	if len(frames) != TotalFrames {
		t.Fatalf("got %d frames, want %d", len(frames), TotalFrames)
	}
	for i, fs := range frames {
		if !fs.Resolved || fs.Total != 30 {
			t.Errorf("frame %d = %+v, want 30", i+1, fs)
		}
	}
	if !reflect.DeepEqual(frames[lastFrame].Rolls, []int{10, 10, 10}) {
		t.Errorf("tenth frame rolls = %v", frames[lastFrame].Rolls)
	}

	if total, ok := TotalThrough(rolls, TotalFrames); !ok || total != 300 {
		t.Errorf("TotalThrough(10) = %d, %v, want 300", total, ok)
	}
	if GameTotal(rolls) != 300 {
		t.Errorf("GameTotal = %d, want 300", GameTotal(rolls))
	}
}

func TestAllOnes(t *testing.T) {
	rolls := rollMany(20, 1)
	if GameTotal(rolls) != 20 {
		t.Errorf("GameTotal = %d, want 20", GameTotal(rolls))
	}
}

func TestTenthFrameCompleteness(t *testing.T) {
	tests := []struct {
		name     string
		last     []int
		resolved bool
		total    int
	}{
		{"no rolls yet", nil, false, 0},
		{"first roll only", []int{3}, false, 0},
		{"open frame", []int{3, 4}, true, 7},
		{"spare waits for third roll", []int{7, 3}, false, 0},
		{"spare with fill ball", []int{7, 3, 5}, true, 15},
		{"strike waits for two rolls", []int{10}, false, 0},
		{"strike with one fill ball", []int{10, 10}, false, 0},
		{"turkey", []int{10, 10, 10}, true, 30},
		{"strike then spare", []int{10, 4, 6}, true, 20},
		{"strike then gutters", []int{10, 0, 0}, true, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rolls := tenthFrameRolls(tt.last...)
			frames := FrameScores(rolls)

			if len(tt.last) == 0 {
				if len(frames) != lastFrame {
					t.Fatalf("got %d frames, want %d", len(frames), lastFrame)
				}
				if _, ok := TotalThrough(rolls, TotalFrames); ok {
					t.Error("unplayed tenth frame should be unavailable")
				}
				return
			}

			tenth := frames[lastFrame]
			if tenth.Resolved != tt.resolved {
				t.Errorf("Resolved = %v, want %v", tenth.Resolved, tt.resolved)
			}
			got, ok := TotalThrough(rolls, TotalFrames)
			if ok != tt.resolved || got != tt.total {
				t.Errorf("TotalThrough(10) = %d, %v, want %d, %v", got, ok, tt.total, tt.resolved)
			}
		})
	}
}

// TestTotalThroughAsymmetry pins down that a specific-frame query refuses a
// pending frame while the whole-game total skips it.
func TestTotalThroughAsymmetry(t *testing.T) {
	rolls := []int{3, 4, 10, 2}

	if got, ok := TotalThrough(rolls, 1); !ok || got != 7 {
		t.Errorf("TotalThrough(1) = %d, %v, want 7", got, ok)
	}
	if _, ok := TotalThrough(rolls, 2); ok {
		t.Error("TotalThrough(2) should be unavailable while the strike is pending")
	}
	if _, ok := TotalThrough(rolls, 3); ok {
		t.Error("TotalThrough(3) should be unavailable past a pending frame")
	}
	if got := GameTotal(rolls); got != 7 {
		t.Errorf("GameTotal = %d, want 7 (pending frames count as zero)", got)
	}
}

func TestTotalThroughOutOfRange(t *testing.T) {
	rolls := rollMany(20, 1)
	for _, n := range []int{-1, 0, 11, 100} {
		if _, ok := TotalThrough(rolls, n); ok {
			t.Errorf("TotalThrough(%d) should be unavailable", n)
		}
	}
	if _, ok := TotalThrough([]int{3, 4}, 2); ok {
		t.Error("TotalThrough for an unplayed frame should be unavailable")
	}
}

func TestCurrentFrame(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		frame int
		roll  int
	}{
		{"empty", nil, 1, 0},
		{"after first roll", []int{3}, 1, 1},
		{"after open frame", []int{3, 4}, 2, 0},
		{"after strike", []int{10}, 2, 0},
		{"tenth frame start", rollMany(18, 0), 10, 0},
		{"tenth frame after strike", tenthFrameRolls(10), 10, 1},
		{"tenth frame third roll", tenthFrameRolls(10, 10), 10, 2},
		{"nine strikes", rollMany(9, 10), 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, roll := CurrentFrame(tt.rolls)
			if frame != tt.frame || roll != tt.roll {
				t.Errorf("CurrentFrame(%v) = (%d, %d), want (%d, %d)", tt.rolls, frame, roll, tt.frame, tt.roll)
			}
		})
	}
}

// randomGame generates a complete, valid roll ledger.
func randomGame(rng *rand.Rand) []int {
	var rolls []int
	for range lastFrame {
		first := rng.Intn(AllPins + 1)
		rolls = append(rolls, first)
		if first < AllPins {
			rolls = append(rolls, rng.Intn(AllPins-first+1))
		}
	}

	first := rng.Intn(AllPins + 1)
	rolls = append(rolls, first)
	if first == AllPins {
		second := rng.Intn(AllPins + 1)
		rolls = append(rolls, second)
		if second == AllPins {
			rolls = append(rolls, rng.Intn(AllPins+1))
		} else {
			rolls = append(rolls, rng.Intn(AllPins-second+1))
		}
		return rolls
	}
	second := rng.Intn(AllPins - first + 1)
	rolls = append(rolls, second)
	if first+second == AllPins {
		rolls = append(rolls, rng.Intn(AllPins+1))
	}
	return rolls
}

func TestScoreCardMatchesBatch(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for game := range 200 {
		rolls := randomGame(rng)
		card := NewScoreCard()
		for i, pins := range rolls {
			card.Append(pins)

			want := FrameScores(rolls[:i+1])
			if got := card.Frames(); !reflect.DeepEqual(got, want) {
				t.Fatalf("game %d after roll %d (%v): incremental %+v, batch %+v", game, i, rolls[:i+1], got, want)
			}
		}

		for n := 0; n <= TotalFrames+1; n++ {
			gotTotal, gotOK := card.TotalThrough(n)
			wantTotal, wantOK := TotalThrough(rolls, n)
			if gotTotal != wantTotal || gotOK != wantOK {
				t.Errorf("game %d TotalThrough(%d) = %d, %v, batch %d, %v", game, n, gotTotal, gotOK, wantTotal, wantOK)
			}
		}
		if card.GameTotal() != GameTotal(rolls) {
			t.Errorf("game %d GameTotal = %d, batch %d", game, card.GameTotal(), GameTotal(rolls))
		}
		if _, ok := card.TotalThrough(TotalFrames); !ok {
			t.Errorf("game %d: complete game %v should resolve frame 10", game, rolls)
		}
	}
}

func TestOpenTenthFrameIgnoresExtraRoll(t *testing.T) {
	rolls := append(make([]int, 18), 3, 1, 7)

	frames := FrameScores(rolls)
	if len(frames) != TotalFrames {
		t.Fatalf("got %d frames, want %d", len(frames), TotalFrames)
	}
	tenth := frames[TotalFrames-1]
	if !reflect.DeepEqual(tenth.Rolls, []int{3, 1}) || tenth.Total != 4 || !tenth.Resolved {
		t.Errorf("tenth frame = %+v, want rolls [3 1] total 4", tenth)
	}
	if got := GameTotal(rolls); got != 4 {
		t.Errorf("GameTotal = %d, want 4", got)
	}

	card := NewScoreCard()
	for _, pins := range rolls {
		card.Append(pins)
	}
	if !reflect.DeepEqual(card.Frames(), frames) {
		t.Errorf("incremental %+v, batch %+v", card.Frames(), frames)
	}
	if card.GameTotal() != GameTotal(rolls) {
		t.Errorf("incremental GameTotal = %d, batch %d", card.GameTotal(), GameTotal(rolls))
	}
}

func TestScoreCardAppendReportsFrameEnd(t *testing.T) {
	card := NewScoreCard()

	steps := []struct {
		pins int
		done bool
	}{
		{3, false},
		{4, true},
		{10, true},
		{0, false},
		{10, true}, // spare
	}
	for i, s := range steps {
		if got := card.Append(s.pins); got != s.done {
			t.Errorf("step %d Append(%d) = %v, want %v", i, s.pins, got, s.done)
		}
	}
	if card.Len() != len(steps) {
		t.Errorf("Len = %d, want %d", card.Len(), len(steps))
	}

	rolls := card.Rolls()
	rolls[0] = 99
	if card.Rolls()[0] != 3 {
		t.Error("Rolls should return a copy")
	}

	frames := card.Frames()
	frames[0].Rolls[0] = 99
	if card.Frames()[0].Rolls[0] != 3 {
		t.Error("Frames should return a deep copy")
	}
}

func TestFrameScoreMarks(t *testing.T) {
	strike := FrameScore{Rolls: []int{10}}
	if !strike.IsStrike() || strike.IsSpare() {
		t.Errorf("strike flags wrong: %+v", strike)
	}
	spare := FrameScore{Rolls: []int{0, 10}}
	if spare.IsStrike() || !spare.IsSpare() {
		t.Errorf("spare flags wrong: %+v", spare)
	}
	open := FrameScore{Rolls: []int{4, 5}}
	if open.IsStrike() || open.IsSpare() {
		t.Errorf("open frame flags wrong: %+v", open)
	}
}
