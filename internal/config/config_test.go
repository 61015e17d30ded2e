package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bowling-solitaire/internal/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BowlingConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if want := DefaultBowlingConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadBowlingCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "display:\n  score_window: 5\n  blink: slow\noptions:\n  show_hints: true\n")

	cfg, err := LoadBowling(path)
	if err != nil {
		t.Fatalf("LoadBowling: %v", err)
	}
	if cfg.Display.ScoreWindow != 5 || cfg.Display.Blink != BlinkSlow || !cfg.Options.ShowHints {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.Display.TickRate != 30 || !reflect.DeepEqual(cfg.Story.PhaseScores, []int{50, 100}) {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadBowlingErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing file", "", "failed to read config"},
		{"broken yaml", "display: [", "failed to parse config"},
		{"bad tick rate", "display:\n  tick_rate: 0\n", "tick_rate"},
		{"bad blink", "display:\n  blink: strobe\n", "unknown speed"},
		{"bad window", "display:\n  score_window: 11\n", "score_window"},
		{"bad color", "display:\n  hint_color: plaid\n", "unknown color"},
		{"descending phases", "story:\n  phase_scores: [100, 50]\n", "ascending"},
		{"phase above perfect", "story:\n  phase_scores: [50, 301]\n", "ascending"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "cfg"+string(rune('a'+i))+".yaml")
			if tt.content != "" {
				writeFile(t, path, tt.content)
			}
			_, err := LoadBowling(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadBowlingUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".bowling", "configs", "bowling.yaml"), "display:\n  score_window: 7\n")

	cfg, err := LoadBowling("")
	if err != nil {
		t.Fatalf("LoadBowling: %v", err)
	}
	if cfg.Display.ScoreWindow != 7 {
		t.Errorf("user config not used: score_window = %d", cfg.Display.ScoreWindow)
	}
}

func TestLoadBowlingSkipsBrokenUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".bowling", "configs", "bowling.yaml"), "display:\n  blink: strobe\n")

	cfg, err := LoadBowling("")
	if err != nil {
		t.Fatalf("LoadBowling: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBowlingConfig()) {
		t.Errorf("broken user config should fall back to defaults, got %+v", cfg)
	}
}

func TestBlinkTicks(t *testing.T) {
	tests := []struct {
		blink    BlinkSpeed
		tickRate int
		want     int
	}{
		{BlinkOff, 30, 0},
		{BlinkSlow, 30, 15},
		{BlinkFaster, 30, 7},
		{BlinkFastest, 30, 3},
		{BlinkFastest, 4, 1},
		{BlinkSlow, 0, 15},
		{"", 60, 15},
	}
	for _, tt := range tests {
		d := DisplayConfig{Blink: tt.blink, TickRate: tt.tickRate}
		if got := d.BlinkTicks(); got != tt.want {
			t.Errorf("BlinkTicks(%q at %d) = %d, want %d", tt.blink, tt.tickRate, got, tt.want)
		}
	}
}

func TestTickInterval(t *testing.T) {
	if got := (DisplayConfig{TickRate: 20}).TickInterval(); got != 50*time.Millisecond {
		t.Errorf("TickInterval(20) = %v", got)
	}
	if got := (DisplayConfig{}).TickInterval(); got != time.Second/30 {
		t.Errorf("zero tick rate should use the default, got %v", got)
	}
}

func TestHintColorValue(t *testing.T) {
	if got := (DisplayConfig{HintColor: "orange"}).HintColorValue(); got != core.ColorOrange {
		t.Errorf("HintColorValue(orange) = %v", got)
	}
	if got := (DisplayConfig{HintColor: "plaid"}).HintColorValue(); got != core.ColorBrightGreen {
		t.Errorf("unknown color should fall back to bright_green, got %v", got)
	}
}
