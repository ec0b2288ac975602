package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/games/lightcycle"
	"github.com/vovakirdan/lightcycle/internal/registry"
	"github.com/vovakirdan/lightcycle/internal/storage"
)

// Settings are the player's choices for a play session.
type Settings struct {
	Program  string     // Registered AI program ID
	Color    core.Color // Human trail colour
	TickRate int        // Ticks per second
	Seed     int64      // 0 = time-based seed per round
	Width    int        // Grid width; 0 = window width
	Height   int        // Grid height; 0 = window height
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	cfg := core.DefaultConfig()
	return Settings{
		Program:  lightcycle.DefaultProgram,
		Color:    cfg.HumanColor,
		TickRate: cfg.TickRate,
	}
}

type phase int

const (
	phaseIntro phase = iota
	phasePlaying
	phaseRoundOver
	phaseFailed
)

// GameModel is the Bubble Tea model for a session of rounds against one
// program. Each round runs its scheduler in a goroutine; engine events come
// back as messages and are painted onto the screen buffer.
type GameModel struct {
	settings  Settings
	program   registry.Program
	store     *storage.Store
	logger    *log.Logger
	keyMapper *KeyMapper
	sessionID string

	screen *core.Screen
	width  int
	height int

	tally  *lightcycle.Score // Owned by the running round
	shown  lightcycle.Score  // Copy safe to read from the UI
	input  *lightcycle.ChanInput
	events chan tea.Msg
	cancel context.CancelFunc

	phase      phase
	round      int
	result     lightcycle.RoundResult
	roundStart time.Time
	roundSaved bool
	err        error

	withMenu   bool // b returns to the menu after a round
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for the given settings and window size.
// A nil logger discards output; a nil store disables round history.
func NewGameModel(settings Settings, store *storage.Store, logger *log.Logger, width, height int) (GameModel, error) {
	program, err := registry.Get(settings.Program)
	if err != nil {
		return GameModel{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if settings.TickRate <= 0 {
		settings.TickRate = core.DefaultConfig().TickRate
	}

	m := GameModel{
		settings:  settings,
		program:   program,
		store:     store,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		sessionID: uuid.NewString(),
		width:     width,
		height:    height,
		tally:     &lightcycle.Score{},
		input:     lightcycle.NewChanInput(8),
	}
	w, h := m.gridSize()
	m.screen = core.NewScreen(w, h)
	m.paintIntro()
	return m, nil
}

// Init implements tea.Model. The session opens on the instruction banner.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The running round keeps its grid; the next one picks up the new size.
		if m.phase == phaseIntro {
			w, h := m.gridSize()
			m.screen.Resize(w, h)
			m.paintIntro()
		}
		return m, nil

	case segmentMsg:
		paintSegment(m.screen, lightcycle.SegmentEvent(msg))
		return m, waitForEvent(m.events)

	case collisionMsg:
		paintCrash(m.screen, lightcycle.CollisionEvent(msg))
		return m, waitForEvent(m.events)

	case roundEndMsg:
		return m.handleRoundEnd(lightcycle.RoundResult(msg))

	case roundDoneMsg:
		return m.handleRoundDone(msg.err)
	}

	return m, nil
}

// handleKey processes keyboard input for the current phase.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.stopRound()
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	intent := m.keyMapper.MapKey(msg)

	switch m.phase {
	case phasePlaying:
		// Quit goes through the engine so the round is abandoned unscored.
		if intent != core.IntentNone {
			m.input.Push(intent)
		}
		return m, nil

	case phaseIntro:
		if intent == core.IntentQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m.startRound()

	case phaseRoundOver:
		switch {
		case intent == core.IntentQuit:
			m.quitting = true
			return m, tea.Quit
		case m.cancel != nil:
			// The round goroutine has not reported back yet.
			return m, nil
		case m.keyMapper.IsNextRound(msg):
			return m.startRound()
		case m.withMenu && m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack:
			m.backToMenu = true
			return m, nil
		}

	case phaseFailed:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// startRound builds a scheduler for the next round and runs it.
func (m GameModel) startRound() (tea.Model, tea.Cmd) {
	m.round++
	cfg := m.sessionConfig()

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tea.Msg, eventBuffer)
	m.input.Drain()

	sched, err := lightcycle.NewScheduler(cfg, lightcycle.Options{
		Input:  m.input,
		Sink:   chanSink{ctx: ctx, events: events},
		Score:  m.tally,
		Logger: m.logger,
	})
	if err != nil {
		cancel()
		m.logger.Error("cannot start round", "error", err)
		m.fail(err)
		return m, nil
	}

	m.screen.Resize(cfg.GridW, cfg.GridH)
	paintArena(m.screen)
	paintStart(m.screen, sched.Human(), cfg.HumanColor)
	paintStart(m.screen, sched.AI(), cfg.AIColor)
	m.paintHUD()

	m.events = events
	m.cancel = cancel
	m.phase = phasePlaying
	m.roundStart = time.Now()
	m.roundSaved = false

	m.logger.Info("round started", "session", m.sessionID, "round", m.round, "program", m.program.ID)
	go runRound(ctx, sched, events)
	return m, waitForEvent(events)
}

// handleRoundEnd shows the result and records the round.
func (m GameModel) handleRoundEnd(res lightcycle.RoundResult) (tea.Model, tea.Cmd) {
	m.result = res
	m.shown = res.Score
	m.phase = phaseRoundOver
	m.paintHUD()
	m.paintRoundOver()
	m.saveRound()
	return m, waitForEvent(m.events)
}

// handleRoundDone reacts to the round goroutine returning.
func (m GameModel) handleRoundDone(err error) (tea.Model, tea.Cmd) {
	m.stopRound()

	switch {
	case err == nil:
		return m, nil
	case errors.Is(err, lightcycle.ErrQuit):
		m.quitting = true
		return m, tea.Quit
	case errors.Is(err, context.Canceled):
		return m, nil
	default:
		m.logger.Error("round failed", "error", err)
		m.fail(err)
		return m, nil
	}
}

// stopRound cancels the running round, if any.
func (m *GameModel) stopRound() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *GameModel) fail(err error) {
	m.err = err
	m.phase = phaseFailed
	m.screen.Clear()
	mid := m.screen.Height() / 2
	m.screen.DrawTextCentered(mid, fmt.Sprintf("Error: %v", err), core.ColorRed)
	m.screen.DrawTextCentered(mid+2, "Press any key to exit", core.ColorGray)
}

// saveRound records the finished round in the store (once).
func (m *GameModel) saveRound() {
	if m.store == nil || m.roundSaved {
		return
	}
	_, err := m.store.SaveRound(storage.RoundRecord{
		SessionID:  m.sessionID,
		Program:    m.program.ID,
		Winner:     m.result.Winner.String(),
		HumanScore: m.result.Score.Human,
		AIScore:    m.result.Score.AI,
		Ticks:      m.result.Ticks,
		Duration:   time.Since(m.roundStart),
	})
	if err != nil {
		m.logger.Warn("could not save round", "error", err)
	}
	m.roundSaved = true
}

// sessionConfig builds the engine configuration for the next round.
func (m GameModel) sessionConfig() core.SessionConfig {
	cfg := core.DefaultConfig()
	cfg.GridW, cfg.GridH = m.gridSize()
	cfg.TickRate = m.settings.TickRate
	cfg.Strategy = m.program.Strategy
	cfg.HumanColor = m.settings.Color
	cfg.AIColor = m.program.Color
	if m.settings.Seed != 0 {
		cfg.Seed = m.settings.Seed + int64(m.round) - 1
	} else {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// gridSize returns the configured grid size, falling back to the window.
func (m GameModel) gridSize() (int, int) {
	w, h := m.settings.Width, m.settings.Height
	if w <= 0 {
		w = m.width
	}
	if h <= 0 {
		h = m.height
	}
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

// paintIntro draws the instruction banner shown before the first round.
func (m *GameModel) paintIntro() {
	paintArena(m.screen)
	mid := m.screen.Height()/2 - 2
	m.screen.DrawTextCentered(mid, "Greetings user.", m.settings.Color)
	m.screen.DrawTextCentered(mid+1, "Steer with arrow or vim keys.", core.ColorWhite)
	m.screen.DrawTextCentered(mid+2, fmt.Sprintf("Your opponent is %s.", m.program.Title), m.program.Color)
	m.screen.DrawTextCentered(mid+4, "Press any key to continue", core.ColorGray)
}

// paintHUD writes the session score into the top boundary row.
func (m *GameModel) paintHUD() {
	hud := fmt.Sprintf(" You %d : %d %s ", m.shown.Human, m.shown.AI, m.program.Title)
	m.screen.DrawTextCentered(0, hud, core.ColorWhite)
}

// paintRoundOver overlays the round result on the arena.
func (m *GameModel) paintRoundOver() {
	mid := m.screen.Height()/2 - 1
	if m.result.Winner == lightcycle.SideHuman {
		m.screen.DrawTextCentered(mid, fmt.Sprintf(" %s derezzed. You win! ", m.program.Title), m.settings.Color)
	} else {
		m.screen.DrawTextCentered(mid, fmt.Sprintf(" You were derezzed. %s wins. ", m.program.Title), m.program.Color)
	}
	m.screen.DrawTextCentered(mid+1, fmt.Sprintf(" Score  You %d : %d %s ", m.shown.Human, m.shown.AI, m.program.Title), core.ColorWhite)
	hint := " r/space/enter: next round   q: quit "
	if m.withMenu {
		hint = " r/space/enter: next round   b: menu   q: quit "
	}
	m.screen.DrawTextCentered(mid+3, hint, core.ColorGray)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".lightcycle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.program.ID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Score returns the session score as last reported by a finished round.
func (m GameModel) Score() lightcycle.Score {
	return m.shown
}

// Err returns the error that stopped the session, if any.
func (m GameModel) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a local session.
func Run(settings Settings, store *storage.Store, logger *log.Logger, width, height int) error {
	model, err := NewGameModel(settings, store, logger, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if gm, ok := final.(GameModel); ok && gm.Err() != nil {
		return gm.Err()
	}
	return nil
}
