// Package config provides YAML-based configuration loading for Bowling
// Solitaire.
package config

import (
	"time"

	"github.com/vovakirdan/bowling-solitaire/internal/core"
)

// BowlingConfig contains all configuration for the game and its session.
type BowlingConfig struct {
	Display DisplayConfig `yaml:"display"`
	Options OptionsConfig `yaml:"options"`
	Story   StoryConfig   `yaml:"story"`
}

// DisplayConfig controls the terminal view.
type DisplayConfig struct {
	TickRate    int        `yaml:"tick_rate"`    // UI ticks per second
	Blink       BlinkSpeed `yaml:"blink"`        // hint highlight blink speed
	ScoreWindow int        `yaml:"score_window"` // frames on the in-game sheet
	HintColor   string     `yaml:"hint_color"`   // palette name, see core.ParseColor
}

// OptionsConfig holds the option flags a new profile starts with.
type OptionsConfig struct {
	ShowHints       bool `yaml:"show_hints"`
	VisibleDiscards bool `yaml:"visible_discards"`
}

// StoryConfig holds the memo pad unlock thresholds.
type StoryConfig struct {
	// PhaseScores[i] is the game total that unlocks note i+2.
	PhaseScores []int `yaml:"phase_scores"`
}

// BlinkSpeed represents a named blink rate for highlighted elements.
type BlinkSpeed string

const (
	BlinkOff     BlinkSpeed = "off"
	BlinkSlow    BlinkSpeed = "slow"
	BlinkFaster  BlinkSpeed = "faster"
	BlinkFastest BlinkSpeed = "fastest"
)

// Period returns how long one blink phase lasts, or 0 when blinking is off.
// Unknown names use the default speed.
func (b BlinkSpeed) Period() time.Duration {
	switch b {
	case BlinkOff:
		return 0
	case BlinkSlow:
		return 500 * time.Millisecond
	case BlinkFastest:
		return 125 * time.Millisecond
	default:
		return 250 * time.Millisecond
	}
}

// IsValidBlinkSpeed reports whether name is a known blink speed.
func IsValidBlinkSpeed(name string) bool {
	switch BlinkSpeed(name) {
	case BlinkOff, BlinkSlow, BlinkFaster, BlinkFastest:
		return true
	}
	return false
}

// BlinkTicks converts the blink speed into UI ticks per blink phase at the
// configured tick rate. It never returns less than 1 unless blinking is off.
func (d DisplayConfig) BlinkTicks() int {
	period := d.Blink.Period()
	if period == 0 {
		return 0
	}
	rate := d.TickRate
	if rate <= 0 {
		rate = DefaultBowlingConfig().Display.TickRate
	}
	ticks := int(period * time.Duration(rate) / time.Second)
	return max(1, ticks)
}

// TickInterval returns the duration of one UI tick.
func (d DisplayConfig) TickInterval() time.Duration {
	rate := d.TickRate
	if rate <= 0 {
		rate = DefaultBowlingConfig().Display.TickRate
	}
	return time.Second / time.Duration(rate)
}

// HintColorValue returns the configured hint color, falling back to the default
// for an unknown name.
func (d DisplayConfig) HintColorValue() core.Color {
	if c, ok := core.ParseColor(d.HintColor); ok {
		return c
	}
	c, _ := core.ParseColor(DefaultBowlingConfig().Display.HintColor)
	return c
}
