package config

import (
	_ "embed"
)

//go:embed defaults/bowling.yaml
var defaultBowlingYAML []byte

// DefaultBowlingConfig returns the default configuration. It matches the
// embedded defaults/bowling.yaml.
func DefaultBowlingConfig() BowlingConfig {
	return BowlingConfig{
		Display: DisplayConfig{
			TickRate:    30,
			Blink:       BlinkFaster,
			ScoreWindow: 3,
			HintColor:   "bright_green",
		},
		Options: OptionsConfig{
			ShowHints:       false,
			VisibleDiscards: false,
		},
		Story: StoryConfig{
			PhaseScores: []int{50, 100},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultBowlingYAML...)
}
