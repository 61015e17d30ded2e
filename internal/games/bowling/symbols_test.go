package bowling

import "testing"

func TestSymbols(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		frame int
		want  FrameSymbols
	}{
		{"strike fills the second box", []int{10}, 3, FrameSymbols{Second: "X"}},
		{"spare", []int{7, 3}, 1, FrameSymbols{First: "7", Second: "/"}},
		{"gutter first roll", []int{0, 5}, 2, FrameSymbols{First: "-", Second: "5"}},
		{"double gutter", []int{0, 0}, 2, FrameSymbols{First: "-", Second: "-"}},
		{"gutter then ten is a spare", []int{0, 10}, 4, FrameSymbols{First: "-", Second: "/"}},
		{"first roll only", []int{4}, 5, FrameSymbols{First: "4"}},
		{"nothing rolled", nil, 6, FrameSymbols{}},
		{"tenth turkey", []int{10, 10, 10}, 10, FrameSymbols{First: "X", Second: "X", Third: "X"}},
		{"tenth strike then spare", []int{10, 3, 7}, 10, FrameSymbols{First: "X", Second: "3", Third: "/"}},
		{"tenth strike then open", []int{10, 0, 5}, 10, FrameSymbols{First: "X", Second: "-", Third: "5"}},
		{"tenth two strikes then count", []int{10, 10, 4}, 10, FrameSymbols{First: "X", Second: "X", Third: "4"}},
		{"tenth spare then strike", []int{7, 3, 10}, 10, FrameSymbols{First: "7", Second: "/", Third: "X"}},
		{"tenth spare then gutter", []int{7, 3, 0}, 10, FrameSymbols{First: "7", Second: "/", Third: "-"}},
		{"tenth open", []int{3, 4}, 10, FrameSymbols{First: "3", Second: "4"}},
		{"tenth pending strike", []int{10}, 10, FrameSymbols{First: "X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Symbols(FrameScore{Rolls: tt.rolls}, tt.frame)
			if got != tt.want {
				t.Errorf("Symbols(%v, %d) = %+v, want %+v", tt.rolls, tt.frame, got, tt.want)
			}
		})
	}
}
