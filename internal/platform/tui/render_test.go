package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bowling-solitaire/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(1, 0, "STRIKE", core.ColorBrightYellow)
	s.DrawTextColored(0, 2, "spare", core.ColorBlack)

	out := RenderScreen(s)

	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("rendered %d line breaks, want 2", n)
	}
	for _, want := range []string{"STRIKE", "spare"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
