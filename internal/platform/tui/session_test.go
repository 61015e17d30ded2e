package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bowling-solitaire/internal/config"
	"github.com/vovakirdan/bowling-solitaire/internal/core"
	"github.com/vovakirdan/bowling-solitaire/internal/games/bowling"
	"github.com/vovakirdan/bowling-solitaire/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestSession(store *storage.Store) SessionModel {
	rc := core.DefaultConfig()
	rc.Seed = 42
	return NewSession(SessionConfig{
		Runtime: rc,
		Bowling: config.DefaultBowlingConfig(),
		Store:   store,
		Profile: "tester",
	})
}

// send feeds messages through Update the way the Bubble Tea runtime would.
func send(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
	}
	return m
}

func tick() tea.Msg {
	return TickMsg(time.Now())
}

// toSettings walks from the title page to the settings page.
func toSettings(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	m = send(t, m, runes("x"), runes("1"))
	if m.Page() != PageSettings {
		t.Fatalf("page = %v, want settings", m.Page())
	}
	return m
}

// concedeGame gives up all ten frames, one tick per frame.
func concedeGame(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	for range bowling.TotalFrames {
		m = send(t, m, runes("n"), tick())
	}
	if !m.Game().State().GameOver {
		t.Fatalf("game not over after conceding every frame, state %+v", m.Game().State())
	}
	return m
}

func TestSessionNavigation(t *testing.T) {
	m := newTestSession(nil)
	if m.Page() != PageTitle {
		t.Fatalf("new session starts on %v", m.Page())
	}

	m = toSettings(t, m)

	m = send(t, m, runes("i"))
	if m.Page() != PageInstructions {
		t.Errorf("I should open instructions, got %v", m.Page())
	}
	m = send(t, m, runes(" "))
	if m.Page() != PageSettings {
		t.Errorf("any key should close instructions, got %v", m.Page())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Page() != PageScoreboard {
		t.Fatalf("Tab should open the scoreboard, got %v", m.Page())
	}
	if !strings.Contains(m.View(), "not being saved") {
		t.Error("scoreboard without a store should say so")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.Page() != PageSettings {
		t.Errorf("Esc should leave the scoreboard, got %v", m.Page())
	}

	m = send(t, m, runes("q"))
	if m.Page() != PageDoors {
		t.Errorf("Q should go back to the doors, got %v", m.Page())
	}
}

func TestSessionMemoPadLockedAtFirst(t *testing.T) {
	m := send(t, newTestSession(nil), runes("x"), runes("2"))
	if m.Page() != PageDoors {
		t.Errorf("memo pad should be locked before the first game, got %v", m.Page())
	}
	if !strings.Contains(m.View(), "Coming soon") {
		t.Error("locked memo pad should be shown as coming soon")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if next.View() != "" {
		t.Error("a quitting session renders nothing")
	}

	m = send(t, newTestSession(nil), runes("x"), runes("3"))
	if m.View() != "" {
		t.Error("Goodbye should quit")
	}
}

func TestSessionPlaysAGame(t *testing.T) {
	m := toSettings(t, newTestSession(nil))

	m = send(t, m, runes("s"))
	if m.Page() != PageGame || m.Game() == nil {
		t.Fatalf("S should start a game, page %v", m.Page())
	}
	if m.Game().Seed() != 42 {
		t.Errorf("first game seed = %d, want 42", m.Game().Seed())
	}
	if strings.Contains(m.View(), "GAME OVER") {
		t.Error("fresh game should not be over")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.Page() != PageSettings {
		t.Fatalf("Esc should return to settings, got %v", m.Page())
	}

	m = send(t, m, runes("s"))
	if m.Game().Seed() != 43 {
		t.Errorf("second game seed = %d, want 43", m.Game().Seed())
	}
}

func TestSessionKeysWaitForTick(t *testing.T) {
	m := send(t, toSettings(t, newTestSession(nil)), runes("s"))

	m = send(t, m, runes("n"))
	if m.Game().State().Frame != 1 {
		t.Fatalf("concede applied before the tick, frame %d", m.Game().State().Frame)
	}
	m = send(t, m, tick())
	if m.Game().State().Frame != 2 {
		t.Errorf("concede not applied on tick, frame %d", m.Game().State().Frame)
	}
}

func TestSessionRepeatedKeysInOneTick(t *testing.T) {
	m := send(t, toSettings(t, newTestSession(nil)), runes("s"))

	m = send(t, m, runes("a"), tick())
	if got := m.Game().Game().Engine().SelectedPins(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("selected after 'a' = %v, want [0]", got)
	}

	// Pressing a selected pin again clears the selection, even when both
	// presses land in the same tick.
	m = send(t, m, runes("b"), runes("b"), tick())
	if got := m.Game().Game().Engine().SelectedPins(); len(got) != 0 {
		t.Errorf("selected after 'b','b' in one tick = %v, want none", got)
	}

	m = send(t, m, runes("a"), runes("a"), runes("a"), tick())
	if got := m.Game().Game().Engine().SelectedPins(); len(got) != 1 || got[0] != 0 {
		t.Errorf("selected after 'a' three times = %v, want [0]", got)
	}
}

func TestSessionFinishedGameUnlocksStory(t *testing.T) {
	store := openTestStore(t)
	m := send(t, toSettings(t, newTestSession(store)), runes("s"))
	m = concedeGame(t, m)

	if got := m.Options().StoryPhase; got != 1 {
		t.Errorf("story phase = %d, want 1", got)
	}

	games, err := store.TopGames(bowling.GameID, 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 1 || games[0].Total != 0 || games[0].Seed != 42 || games[0].Profile != "tester" {
		t.Fatalf("stored games = %+v", games)
	}

	saved, err := store.LoadOptions("tester", storage.ProfileOptions{})
	if err != nil {
		t.Fatalf("LoadOptions() failed: %v", err)
	}
	if saved.StoryPhase != 1 {
		t.Errorf("saved story phase = %d, want 1", saved.StoryPhase)
	}

	// Ticks after game over must not save the game again.
	m = send(t, m, tick(), tick())
	if games, _ := store.TopGames(bowling.GameID, 10); len(games) != 1 {
		t.Errorf("game saved %d times", len(games))
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Page() != PageFinal {
		t.Fatalf("Enter after game over should show final scores, got %v", m.Page())
	}
	if !strings.Contains(m.View(), "F I N A L") {
		t.Error("final page missing its title")
	}

	m = send(t, m, runes(" "))
	if m.Page() != PageNote {
		t.Fatalf("an unlocked note should be shown, got %v", m.Page())
	}
	if !strings.Contains(m.View(), "The Entryway BBS") {
		t.Error("note page should show the first note's heading")
	}

	m = send(t, m, runes(" "))
	if m.Page() != PageNoteList {
		t.Fatalf("note should lead to the memo pad, got %v", m.Page())
	}
	m = send(t, m, runes("2"))
	if m.Page() != PageNoteList {
		t.Error("locked note 2 should not open")
	}
	m = send(t, m, runes("q"), runes("2"))
	if m.Page() != PageNoteList {
		t.Errorf("memo pad should open from the doors once unlocked, got %v", m.Page())
	}
}

func TestSessionRestartDealsNewSeed(t *testing.T) {
	m := send(t, toSettings(t, newTestSession(nil)), runes("s"))

	m = send(t, m, runes("r"))
	if m.Game().Seed() != 42 {
		t.Fatal("R should do nothing while the game is running")
	}

	m = concedeGame(t, m)
	m = send(t, m, runes("r"))
	if m.Page() != PageGame || m.Game().Seed() != 43 || m.Game().State().GameOver {
		t.Errorf("R after game over should deal seed 43, got seed %d over %v", m.Game().Seed(), m.Game().State().GameOver)
	}
}

func TestSessionOptionsPersist(t *testing.T) {
	store := openTestStore(t)

	m := toSettings(t, newTestSession(store))
	m = send(t, m, runes("h"), runes("v"))
	if o := m.Options(); !o.ShowHints || !o.VisibleDiscards {
		t.Fatalf("toggles not applied: %+v", o)
	}

	reloaded := newTestSession(store)
	if o := reloaded.Options(); !o.ShowHints || !o.VisibleDiscards {
		t.Errorf("options not persisted: %+v", o)
	}

	m = send(t, m, runes("s"))
	if opts := m.Game().Game().Options(); !opts.ShowHints || !opts.VisibleDiscards {
		t.Errorf("game started without the profile options: %+v", opts)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape}, runes("!"))
	if o := m.Options(); o.ShowHints || o.VisibleDiscards || o.StoryPhase != 0 {
		t.Errorf("delete should restore defaults, got %+v", o)
	}
	if o := newTestSession(store).Options(); o.ShowHints {
		t.Errorf("deleted options came back: %+v", o)
	}
}

func TestSessionWithoutStoreStillFinishes(t *testing.T) {
	m := send(t, toSettings(t, newTestSession(nil)), runes("s"))
	m = concedeGame(t, m)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Page() != PageFinal {
		t.Fatalf("page = %v, want final", m.Page())
	}
	if m.Options().StoryPhase != 1 {
		t.Errorf("story should advance in memory, phase %d", m.Options().StoryPhase)
	}
}

func TestSessionResize(t *testing.T) {
	m := send(t, toSettings(t, newTestSession(nil)), runes("s"))
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 10}, tick())
	if !m.Game().State().Paused {
		t.Error("a small window should pause the game")
	}
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}, tick())
	if m.Game().State().Paused {
		t.Error("game should resume after growing the window")
	}
}
