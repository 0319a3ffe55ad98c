// Package compost implements Compost Catch: items fall into the arena and
// the player moves a compost bin to catch compostables while letting trash
// fall past. A round ends when every item is resolved or the lives run out.
package compost

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/compost-catch/internal/catalog"
	"github.com/vovakirdan/compost-catch/internal/config"
	"github.com/vovakirdan/compost-catch/internal/core"
)

// Screen rows reserved outside the arena.
const (
	hudRows  = 1 // Score line at the top
	hintRows = 1 // Controls hint at the bottom
)

// Option configures a Game.
type Option func(*Game)

// WithFeedback sets the catch outcome feedback. Nil keeps the silent default.
func WithFeedback(fb Feedback) Option {
	return func(g *Game) {
		if fb != nil {
			g.feedback = fb
		}
	}
}

// Game hosts rounds for a terminal platform: it maps input frames to the
// catcher, turns frame timestamps into clamped steps, and renders rounds
// onto a cell screen.
type Game struct {
	catalog  *catalog.Catalog
	cfg      config.CompostConfig
	feedback Feedback

	runtime    core.RuntimeConfig
	rng        *rand.Rand
	clock      *Clock
	difficulty catalog.Profile
	round      *Round // Nil until the first start
	paused     bool
}

// New creates a game over a catalog. The first catalog profile is selected.
func New(cat *catalog.Catalog, cfg config.CompostConfig, opts ...Option) *Game {
	g := &Game{
		catalog:    cat,
		cfg:        cfg,
		feedback:   NopFeedback{},
		runtime:    core.DefaultConfig(),
		clock:      NewClock(cfg.Timing.MaxStep()),
		difficulty: cat.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "compost"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Compost Catch"
}

// Reset applies the runtime config, reseeds the random source, and starts
// a round at the selected difficulty.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.Restart()
}

// Start selects a difficulty and starts a fresh round with it.
func (g *Game) Start(key string) error {
	p, err := g.catalog.Lookup(key)
	if err != nil {
		return err
	}
	g.difficulty = p
	g.Restart()
	return nil
}

// Restart discards the current round and starts a new one at the selected
// difficulty.
func (g *Game) Restart() {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(g.runtime.Seed))
	}
	g.clock.Reset()
	g.paused = false
	g.round = NewRound(g.difficulty, g.cfg, g.rng, g.feedback)
}

// Resize updates the screen size. The arena is re-measured every tick, so
// the running round is kept.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// Step advances the game by one host frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State(), Flushed: true}
	}

	if g.round == nil || g.round.Phase() != core.PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	toggled := in.Has(core.ActionPause)
	if toggled {
		g.paused = !g.paused
	}
	if g.paused {
		g.clock.Reset() // The paused interval never reaches the simulation
		return core.StepResult{State: g.State(), Flushed: toggled}
	}

	if in.Has(core.ActionLeft) {
		g.round.NudgeCatcher(-g.cfg.Catcher.KeyStepPct)
	}
	if in.Has(core.ActionRight) {
		g.round.NudgeCatcher(g.cfg.Catcher.KeyStepPct)
	}

	res := g.round.Advance(g.stepDuration(in.Now), g.Arena())
	return core.StepResult{State: g.State(), Flushed: res.Flushed || toggled}
}

// stepDuration measures the frame against the clock, or uses the nominal
// tick length when the frame carries no timestamp.
func (g *Game) stepDuration(now time.Time) time.Duration {
	if now.IsZero() {
		rate := g.runtime.TickRate
		if rate <= 0 {
			rate = 60
		}
		return g.clock.Clamp(time.Second / time.Duration(rate))
	}
	return g.clock.Elapsed(now)
}

// MoveCatcher places the catcher at pct percent of the arena width.
func (g *Game) MoveCatcher(pct float64) {
	if g.round != nil {
		g.round.MoveCatcher(pct)
	}
}

// MoveCatcherToColumn places the catcher under a pointer column.
func (g *Game) MoveCatcherToColumn(col int) {
	g.MoveCatcher(ColumnToPercent(col, g.runtime.ScreenW))
}

// Arena returns the play surface in pixels for the current screen. A
// screen too small to hold an arena yields a zero arena, which the round
// replaces with its fallback.
func (g *Game) Arena() Arena {
	rows := g.runtime.ScreenH - hudRows - hintRows
	if g.runtime.ScreenW <= 0 || rows <= 0 {
		return Arena{}
	}
	return Arena{
		Width:  float64(g.runtime.ScreenW) * g.cfg.Arena.CellWidthPx,
		Height: float64(rows) * g.cfg.Arena.CellHeightPx,
	}
}

// State returns the observable state of the current round.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{
			Phase: core.PhaseIdle,
			Lives: g.cfg.Round.Lives,
			Total: g.difficulty.RoundSize,
		}
	}
	s := g.round.State()
	s.Paused = g.paused
	return s
}

// Summary returns the end-of-round summary once the round has ended.
func (g *Game) Summary() (Summary, bool) {
	if g.round == nil {
		return Summary{}, false
	}
	return g.round.Summary()
}

// Difficulty returns the selected difficulty profile.
func (g *Game) Difficulty() catalog.Profile {
	return g.difficulty
}

// Catalog returns the difficulty catalog.
func (g *Game) Catalog() *catalog.Catalog {
	return g.catalog
}
