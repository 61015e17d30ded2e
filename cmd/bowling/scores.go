package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bowling-solitaire/internal/core"
	"github.com/vovakirdan/bowling-solitaire/internal/games/bowling"
	"github.com/vovakirdan/bowling-solitaire/internal/platform/tui"
	"github.com/vovakirdan/bowling-solitaire/internal/registry"
	"github.com/vovakirdan/bowling-solitaire/internal/storage"
)

var (
	flagLimit       int
	flagSheets      bool
	flagClear       bool
	flagInteractive bool
	flagRecent      bool
	flagGame        string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best stored games",
	Long: `Display the best finished games with their totals, and optionally the
full score sheet of each game.

Examples:
  bowling scores
  bowling scores --limit 5 --sheets
  bowling scores --interactive
  bowling scores --recent --profile ann
  bowling scores --game 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  bowling scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagSheets, "sheets", false, "Print the score sheet of each game")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored scores and games")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the profile's latest games instead of the best ones")
	scoresCmd.Flags().StringVar(&flagGame, "game", "", "Print the score sheet of one stored game by ID")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		n, err := store.ClearScores(bowling.GameID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d games.\n", n)
		return nil
	}

	if flagGame != "" {
		rec, err := store.GameByID(flagGame)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("no stored game with id %s", flagGame)
		}
		fmt.Fprintf(out, "%s  %s  seed %d  total %d\n", rec.Profile, rec.CreatedAt.Format("2006-01-02 15:04"), rec.Seed, rec.Total)
		fmt.Fprintln(out, sheetText(rec.Rolls))
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var games []storage.GameRecord
	heading := "High Scores"
	if flagRecent {
		heading = "Recent Games of " + flagProfile
		games, err = store.RecentGames(flagProfile, flagLimit)
	} else {
		games, err = store.TopGames(bowling.GameID, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s - %s\n", heading, registry.Title(bowling.GameID))
	fmt.Fprintln(out)

	if len(games) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'bowling play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-5s  %-12s  %-16s  %-8s  %s\n", "Rank", "Score", "Player", "Date", "Seed", "ID")
	fmt.Fprintf(out, "  %-4s  %-5s  %-12s  %-16s  %-8s  %s\n", "----", "-----", "------", "----", "----", "--")
	for i, g := range games {
		fmt.Fprintf(out, "  %-4d  %-5d  %-12s  %-16s  %-8d  %s\n",
			i+1, g.Total, g.Profile, g.CreatedAt.Format("2006-01-02 15:04"), g.Seed, g.ID)
		if flagSheets {
			fmt.Fprintln(out, indent(sheetText(g.Rolls), "    "))
		}
	}

	stats, err := store.GetGameStats(bowling.GameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(out, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// sheetText draws a stored ledger as a plain text score sheet.
func sheetText(rolls []int) string {
	screen := core.NewScreen(bowling.SheetWidth(1, bowling.TotalFrames), bowling.SheetHeight)
	bowling.DrawSheet(screen, bowling.NewSheet(rolls), bowling.Player1, 0, 0, 1, bowling.TotalFrames)
	return screen.String()
}

func indent(block, prefix string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
