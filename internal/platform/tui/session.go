package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bowling-solitaire/internal/config"
	"github.com/vovakirdan/bowling-solitaire/internal/core"
	"github.com/vovakirdan/bowling-solitaire/internal/games/bowling"
	"github.com/vovakirdan/bowling-solitaire/internal/registry"
	"github.com/vovakirdan/bowling-solitaire/internal/storage"
)

// DefaultProfile is the player name used when none is given.
const DefaultProfile = "local"

// Page is a screen of the session.
type Page int

const (
	PageTitle Page = iota
	PageDoors
	PageSettings
	PageInstructions
	PageScoreboard
	PageGame
	PageFinal
	PageNote
	PageNoteList
)

var pageNames = map[Page]string{
	PageTitle:        "title",
	PageDoors:        "doors",
	PageSettings:     "settings",
	PageInstructions: "instructions",
	PageScoreboard:   "scoreboard",
	PageGame:         "game",
	PageFinal:        "final",
	PageNote:         "note",
	PageNoteList:     "notes",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// SessionConfig holds everything a session needs from the command line.
type SessionConfig struct {
	Runtime core.RuntimeConfig
	Bowling config.BowlingConfig
	Store   *storage.Store // nil plays without persistence
	Profile string
	Logger  *log.Logger
}

// finishedGame is the result shown on the final scores page.
type finishedGame struct {
	id       string
	rolls    []int
	total    int
	high     int
	newBest  bool
	unlocked int // note unlocked by this game, 0 for none
}

// SessionModel is the Bubble Tea model for a whole session: logging in,
// the doors menu, settings, games, final scores and the memo pad.
type SessionModel struct {
	cfg    SessionConfig
	logger *log.Logger
	keys   *KeyMapper

	width  int
	height int
	page   Page

	doors   DoorsMenu
	options storage.ProfileOptions
	game    *GameView
	board   ScoreboardModel

	gamesPlayed int
	last        finishedGame
	noteShown   int
	status      string
	quitting    bool
}

// NewSession creates a session on the title page and loads the profile's
// saved options.
func NewSession(cfg SessionConfig) SessionModel {
	if cfg.Profile == "" {
		cfg.Profile = DefaultProfile
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Runtime.TickRate <= 0 {
		cfg.Runtime.TickRate = cfg.Bowling.Display.TickRate
	}

	m := SessionModel{
		cfg:    cfg,
		logger: cfg.Logger.With("profile", cfg.Profile),
		keys:   NewKeyMapper(),
		width:  cfg.Runtime.ScreenW,
		height: cfg.Runtime.ScreenH,
		page:   PageTitle,
		doors:  NewDoorsMenu(),
	}
	m.options = m.loadOptions()
	m.doors.NotesLocked = m.options.StoryPhase < 1
	return m
}

func (m SessionModel) defaultOptions() storage.ProfileOptions {
	return storage.ProfileOptions{
		Profile:         m.cfg.Profile,
		ShowHints:       m.cfg.Bowling.Options.ShowHints,
		VisibleDiscards: m.cfg.Bowling.Options.VisibleDiscards,
	}
}

func (m SessionModel) loadOptions() storage.ProfileOptions {
	def := m.defaultOptions()
	if m.cfg.Store == nil {
		return def
	}
	opts, err := m.cfg.Store.LoadOptions(m.cfg.Profile, def)
	if err != nil {
		m.logger.Warn("could not load options", "err", err)
		return def
	}
	return opts
}

// saveOptions persists the options best-effort.
func (m *SessionModel) saveOptions() {
	if m.cfg.Store == nil {
		return
	}
	if err := m.cfg.Store.SaveOptions(m.options); err != nil {
		m.logger.Warn("could not save options", "err", err)
		m.status = "Options could not be saved."
		return
	}
	m.logger.Debug("options saved",
		"hints", m.options.ShowHints,
		"discards", m.options.VisibleDiscards,
		"story", m.options.StoryPhase)
}

// Page returns the current page.
func (m SessionModel) Page() Page {
	return m.page
}

// Options returns the profile options in effect.
func (m SessionModel) Options() storage.ProfileOptions {
	return m.options
}

// Game returns the game view, or nil before the first game.
func (m SessionModel) Game() *GameView {
	return m.game
}

// Init starts the tick loop.
func (m SessionModel) Init() tea.Cmd {
	return tickCmd(m.cfg.Bowling.Display.TickInterval())
}

// Update handles messages and routes keys to the current page.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.game != nil {
			m.game.Resize(msg.Width, msg.Height)
		}
		if m.page == PageScoreboard {
			board, _ := m.board.Update(msg)
			m.board = board.(ScoreboardModel)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.page {
	case PageTitle:
		m.page = PageDoors

	case PageDoors:
		return m.handleDoorsKey(msg)

	case PageSettings:
		return m.handleSettingsKey(msg)

	case PageInstructions:
		m.page = PageSettings

	case PageScoreboard:
		board, cmd := m.board.Update(msg)
		m.board = board.(ScoreboardModel)
		switch {
		case m.board.IsQuitting():
			return m.quit()
		case m.board.IsGoingBack():
			m.page = PageSettings
			return m, nil
		}
		return m, cmd

	case PageGame:
		return m.handleGameKey(msg)

	case PageFinal:
		if m.last.unlocked > 0 {
			m.noteShown = m.last.unlocked
			m.page = PageNote
		} else {
			m.page = PageSettings
		}
		m.status = ""

	case PageNote:
		m.page = PageNoteList

	case PageNoteList:
		switch s := msg.String(); s {
		case "1", "2", "3":
			n := int(s[0] - '0')
			if _, ok := bowling.NoteAt(m.options.StoryPhase, n); ok {
				m.noteShown = n
				m.page = PageNote
			}
		case "q", "Q", "esc", "b":
			m.page = PageDoors
		}
	}

	return m, nil
}

func (m SessionModel) handleDoorsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var item MenuItem
	var picked bool

	switch s := msg.String(); s {
	case "1", "2", "3":
		item, picked = m.doors.Pick(int(s[0] - '0'))
	default:
		action := m.keys.MapKeyToMenuAction(msg)
		if action == MenuActionQuit || action == MenuActionBack {
			return m.quit()
		}
		item, picked = m.doors.Apply(action)
	}
	if !picked {
		return m, nil
	}

	switch item.Door {
	case DoorBowling:
		m.page = PageSettings
	case DoorNotes:
		m.page = PageNoteList
	case DoorGoodbye:
		return m.quit()
	}
	return m, nil
}

func (m SessionModel) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch m.keys.MapKeyToSettingsAction(msg) {
	case SettingsStart:
		m.startGame()

	case SettingsToggleHints:
		m.options.ShowHints = !m.options.ShowHints
		m.saveOptions()

	case SettingsToggleDiscards:
		m.options.VisibleDiscards = !m.options.VisibleDiscards
		m.saveOptions()

	case SettingsInstructions:
		m.page = PageInstructions

	case SettingsScoreboard:
		m.board = NewScoreboardModel(m.cfg.Store, m.width, m.height)
		m.page = PageScoreboard

	case SettingsDeleteOptions:
		m.deleteOptions()

	case SettingsBack:
		m.page = PageDoors

	case SettingsQuit:
		return m.quit()
	}
	return m, nil
}

// deleteOptions wipes the profile's saved data, story progress included.
func (m *SessionModel) deleteOptions() {
	m.options = m.defaultOptions()
	m.doors.NotesLocked = true
	m.status = "Saved options deleted."

	if m.cfg.Store == nil {
		return
	}
	deleted, err := m.cfg.Store.DeleteOptions(m.cfg.Profile)
	if err != nil {
		m.logger.Warn("could not delete options", "err", err)
		m.status = "Saved options could not be deleted."
		return
	}
	m.logger.Info("options deleted", "existed", deleted)
}

func (m SessionModel) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.game.HandleKey(msg) {
	case GameKeyQuit:
		return m.quit()
	case GameKeyBack:
		if !m.game.State().GameOver {
			m.logger.Info("game abandoned", "frame", m.game.State().Frame, "score", m.game.State().Score)
		}
		m.page = PageSettings
	case GameKeyConfirm:
		if m.game.State().GameOver {
			m.page = PageFinal
		}
	case GameKeyRestart:
		m.startGame()
	}
	return m, nil
}

// nextSeed returns a time based seed, or the configured seed offset by the
// number of games already dealt so a session replays deterministically.
func (m *SessionModel) nextSeed() int64 {
	n := m.gamesPlayed
	m.gamesPlayed++
	if m.cfg.Runtime.Seed == 0 {
		return time.Now().UnixNano()
	}
	return m.cfg.Runtime.Seed + int64(n)
}

func (m *SessionModel) startGame() {
	g, err := registry.Create(bowling.GameID)
	if err != nil {
		m.logger.Error("could not create game", "err", err)
		m.status = "The game could not be started."
		return
	}
	game, ok := g.(*bowling.Game)
	if !ok {
		m.logger.Error("unexpected game type", "type", fmt.Sprintf("%T", g))
		m.status = "The game could not be started."
		return
	}

	display := m.cfg.Bowling.Display
	opts := bowling.Options{
		ShowHints:       m.options.ShowHints,
		VisibleDiscards: m.options.VisibleDiscards,
		ScoreWindow:     display.ScoreWindow,
		BlinkTicks:      display.BlinkTicks(),
		HintColor:       display.HintColorValue(),
	}

	rc := m.cfg.Runtime
	rc.ScreenW, rc.ScreenH = m.width, m.height
	rc.Seed = m.nextSeed()

	m.game = NewGameView(game, opts, rc)
	m.last = finishedGame{}
	m.page = PageGame
	m.logger.Info("game started", "seed", rc.Seed)
}

func (m SessionModel) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.cfg.Bowling.Display.TickInterval())
	if m.page != PageGame || m.game == nil {
		return m, next
	}

	result := m.game.Step()
	for _, ev := range result.Events {
		m.logEvent(ev)
		if ev.Kind == core.EventGameOver {
			m.finishGame()
		}
	}
	return m, next
}

func (m *SessionModel) logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventCardPlayed, core.EventCardRejected:
		m.logger.Debug(string(ev.Kind), "frame", ev.Frame, "roll", ev.Roll+1, "card", ev.Pins)
	case core.EventRollEnded:
		m.logger.Debug("roll ended", "frame", ev.Frame, "roll", ev.Roll+1, "pins", ev.Pins)
	case core.EventFrameStarted:
		m.logger.Debug("frame started", "frame", ev.Frame)
	case core.EventGameOver:
		m.logger.Info("game over", "score", ev.Pins)
	}
}

// finishGame records the finished game, then advances the story. Storage
// failures are logged and the session carries on.
func (m *SessionModel) finishGame() {
	engine := m.game.Game().Engine()
	rolls := engine.Rolls(bowling.Player1)
	total := engine.GameTotal(bowling.Player1)

	m.last = finishedGame{rolls: rolls, total: total}

	if store := m.cfg.Store; store != nil {
		best, err := store.HighScore(bowling.GameID)
		if err != nil {
			m.logger.Warn("could not read high score", "err", err)
		}

		rec, err := store.SaveGame(storage.GameRecord{
			GameID:  bowling.GameID,
			Profile: m.cfg.Profile,
			Seed:    m.game.Seed(),
			Rolls:   rolls,
		})
		if err != nil {
			m.logger.Warn("could not save game", "err", err)
			m.status = "This game could not be saved."
		} else {
			m.last.id = rec.ID
			m.logger.Info("score saved", "id", rec.ID, "score", rec.Total)
		}
		m.last.newBest = err == nil && total > best
		m.last.high = max(best, total)
	}

	phase, moved := bowling.AdvanceStory(m.options.StoryPhase, total, m.cfg.Bowling.Story.PhaseScores)
	if moved {
		m.options.StoryPhase = phase
		m.last.unlocked = phase
		m.doors.NotesLocked = false
		m.logger.Info("story unlocked", "note", phase)
		m.saveOptions()
	}
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the current page.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.page {
	case PageDoors:
		return m.doors.View(m.width)
	case PageSettings:
		return m.viewSettings()
	case PageInstructions:
		return m.viewInstructions()
	case PageScoreboard:
		return m.board.View()
	case PageGame:
		return m.game.View()
	case PageFinal:
		return m.viewFinal()
	case PageNote:
		return m.viewNote()
	case PageNoteList:
		return m.viewNoteList()
	}
	return m.viewTitle()
}

// Run starts the session program on the alternate screen.
func Run(cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSession(cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
