package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bowling-solitaire/internal/config"
	"github.com/vovakirdan/bowling-solitaire/internal/games/bowling"
	"github.com/vovakirdan/bowling-solitaire/internal/storage"
)

var (
	flagHints    string
	flagDiscards string
	flagReset    bool
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show or change saved options",
	Long: `Show the options saved for a profile, or change them without starting
the game. --reset deletes the profile's saved options and story progress.

Examples:
  bowling options
  bowling options --hints on --discards off
  bowling options --profile alice --reset`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

func init() {
	optionsCmd.Flags().StringVar(&flagHints, "hints", "", "Highlight playable hand cards: on or off")
	optionsCmd.Flags().StringVar(&flagDiscards, "discards", "", "Show discarded cards: on or off")
	optionsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete saved options and story progress")
}

func parseOnOff(flag, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("--%s must be on or off, got %q", flag, value)
}

func runOptions(cmd *cobra.Command, _ []string) error {
	if flagProfile == "" {
		return fmt.Errorf("--profile must not be empty")
	}

	cfg, err := config.LoadBowling(flagConfig)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagReset {
		deleted, err := store.DeleteOptions(flagProfile)
		if err != nil {
			return err
		}
		if deleted {
			fmt.Fprintf(out, "Saved options for %s deleted.\n", flagProfile)
		} else {
			fmt.Fprintf(out, "Nothing saved for %s.\n", flagProfile)
		}
		return nil
	}

	opts, err := store.LoadOptions(flagProfile, storage.ProfileOptions{
		ShowHints:       cfg.Options.ShowHints,
		VisibleDiscards: cfg.Options.VisibleDiscards,
	})
	if err != nil {
		return err
	}

	changed := false
	if flagHints != "" {
		if opts.ShowHints, err = parseOnOff("hints", flagHints); err != nil {
			return err
		}
		changed = true
	}
	if flagDiscards != "" {
		if opts.VisibleDiscards, err = parseOnOff("discards", flagDiscards); err != nil {
			return err
		}
		changed = true
	}
	if changed {
		if err := store.SaveOptions(opts); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Profile:          %s\n", opts.Profile)
	fmt.Fprintf(out, "Hints:            %s\n", onOff(opts.ShowHints))
	fmt.Fprintf(out, "Visible discards: %s\n", onOff(opts.VisibleDiscards))
	fmt.Fprintf(out, "Memo pad notes:   %d of %d\n", opts.StoryPhase, bowling.StoryPhases)
	if !opts.UpdatedAt.IsZero() {
		fmt.Fprintf(out, "Saved:            %s\n", opts.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
