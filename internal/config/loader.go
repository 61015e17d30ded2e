package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bowling-solitaire/internal/core"
)

const configFile = "bowling.yaml"

// LoadBowling loads the game configuration.
// Search order: customPath -> ~/.bowling/configs/bowling.yaml -> ./configs/bowling.yaml -> embedded default
//
// Only a custom path reports errors; an unreadable or broken file found by
// the search is skipped. Keys missing from a file keep their default values.
func LoadBowling(customPath string) (BowlingConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultBowlingConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultBowlingConfig()
	if err := yaml.Unmarshal(defaultBowlingYAML, &cfg); err != nil {
		return DefaultBowlingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (BowlingConfig, bool) {
	cfg := DefaultBowlingConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// Validate checks values the game cannot run with.
func (c BowlingConfig) Validate() error {
	if c.Display.TickRate < 1 || c.Display.TickRate > 120 {
		return fmt.Errorf("display.tick_rate must be in 1..120, got %d", c.Display.TickRate)
	}
	if !IsValidBlinkSpeed(string(c.Display.Blink)) {
		return fmt.Errorf("display.blink: unknown speed %q", c.Display.Blink)
	}
	if c.Display.ScoreWindow < 1 || c.Display.ScoreWindow > 10 {
		return fmt.Errorf("display.score_window must be in 1..10, got %d", c.Display.ScoreWindow)
	}
	if _, ok := core.ParseColor(c.Display.HintColor); !ok {
		return fmt.Errorf("display.hint_color: unknown color %q", c.Display.HintColor)
	}
	prev := 0
	for i, s := range c.Story.PhaseScores {
		if s < prev || s > 300 {
			return fmt.Errorf("story.phase_scores[%d] = %d: scores must be ascending and at most 300", i, s)
		}
		prev = s
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bowling", "configs", filename)
}
