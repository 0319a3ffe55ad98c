package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/compost-catch/internal/core"
	"github.com/vovakirdan/compost-catch/internal/games/compost"
	"github.com/vovakirdan/compost-catch/internal/storage"
)

// GameModel is the Bubble Tea model for playing rounds. The game is driven
// by tick messages; key and mouse messages update the catcher between ticks.
type GameModel struct {
	game       *compost.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model
	gameState  core.GameState

	gen   uint64 // Bumped on every new round
	frame string // Last rendered arena, refreshed on flushes

	embedded   bool // Owned by a session model that handles back-to-menu
	roundSaved bool // Whether the current round has been persisted
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model and starts a round at the game's selected difficulty.
func NewGameModel(game *compost.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		gameState:  game.State(),
		gen:        1,
	}
	m.help.Width = cfg.ScreenW
	m.redraw()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if i, ok := m.keyMapper.DifficultyIndex(msg); ok {
		if i >= m.game.Catalog().Len() {
			return m, nil
		}
		if err := m.game.Start(m.game.Catalog().At(i).Key); err != nil {
			m.logger.Warn("cannot switch difficulty", "err", err)
			return m, nil
		}
		return m.newRound()
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionRestart:
		m.game.Restart()
		return m.newRound()
	case core.ActionBack:
		if m.gameState.GameOver() || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	// Movement and pause apply on the next tick
	m.inputFrame.Set(action)
	return m, nil
}

// handleMouse moves the catcher under the pointer while the button is held.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion {
		m.game.MoveCatcherToColumn(msg.X)
	}
	return m, nil
}

// handleResize processes window resize events. The round keeps running on
// the new arena size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.redraw()
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil // Scheduled for a previous round
	}

	m.inputFrame.Now = msg.Time
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Flushed || result.State != m.gameState {
		m.gameState = result.State
		m.redraw()
	}

	if m.gameState.GameOver() {
		m.saveRound()
		return m, nil // The loop restarts with the next round
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// newRound invalidates pending ticks and starts a fresh tick loop.
func (m GameModel) newRound() (tea.Model, tea.Cmd) {
	m.gen++
	m.roundSaved = false
	m.inputFrame.Clear()
	m.gameState = m.game.State()
	m.redraw()
	m.logger.Debug("round started", "difficulty", m.game.Difficulty().Key, "gen", m.gen)
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveRound persists the finished round once.
func (m *GameModel) saveRound() {
	if m.roundSaved {
		return
	}
	m.roundSaved = true

	sum, ok := m.game.Summary()
	if !ok {
		return
	}
	m.logger.Info("round ended",
		"difficulty", sum.DifficultyKey,
		"score", sum.Score,
		"lives", sum.Lives,
		"processed", fmt.Sprintf("%d/%d", sum.Processed, sum.Total),
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRound(roundRecord(sum)); err != nil {
		m.logger.Warn("cannot save round", "err", err)
	}
}

// redraw renders the arena into the cached frame.
func (m *GameModel) redraw() {
	m.game.Render(m.screen)
	m.frame = RenderScreen(m.screen)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".compost", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the cached frame, or the summary once the round has ended.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if sum, ok := m.game.Summary(); ok {
		return renderSummary(sum, m.config.ScreenW, m.config.ScreenH, m.help.View(m.keyMapper.Keys()))
	}
	return m.frame
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// roundRecord converts a round summary to its stored form.
func roundRecord(sum compost.Summary) storage.RoundRecord {
	rec := storage.RoundRecord{
		Difficulty: sum.DifficultyKey,
		Score:      sum.Score,
		Lives:      sum.Lives,
		Processed:  sum.Processed,
		Total:      sum.Total,
		Cleared:    sum.Cleared(),
	}
	for _, mk := range sum.Ledger {
		rec.Mistakes = append(rec.Mistakes, storage.MistakeRecord{
			Label:  mk.Label,
			Reason: mk.Reason,
			Count:  mk.Count,
		})
	}
	return rec
}

// Run starts the Bubble Tea program for a single game session.
// Returns true if the user asked to go back to the menu.
func Run(game *compost.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to move the catcher
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
