package compost

import (
	"time"

	"github.com/vovakirdan/compost-catch/internal/catalog"
	"github.com/vovakirdan/compost-catch/internal/config"
	"github.com/vovakirdan/compost-catch/internal/core"
)

// Round owns all mutable simulation state for one play session. A new
// Round is created on every start or restart and is never shared.
type Round struct {
	profile  catalog.Profile
	cfg      config.CompostConfig
	rng      Rand
	feedback Feedback

	phase   core.Phase
	spawner *Spawner
	store   *EntityStore
	catcher Catcher
	ledger  *MistakeLedger

	throttle *Throttle
	pending  Deltas

	// Observable state, updated at render flushes
	score int
	lives int

	processed int
	damaged   time.Duration // Remaining damage flash
	ticks     uint64

	summary *Summary
}

// TickResult reports what a single Advance did.
type TickResult struct {
	Spawned bool
	Caught  int
	Missed  int
	Flushed bool // Pending deltas were applied to observable state
	Ended   bool // The round ended during this tick
}

// NewRound builds a fresh queue and starts a round in the running phase.
func NewRound(p catalog.Profile, cfg config.CompostConfig, rng Rand, fb Feedback) *Round {
	if fb == nil {
		fb = NopFeedback{}
	}
	return &Round{
		profile:  p,
		cfg:      cfg,
		rng:      rng,
		feedback: fb,
		phase:    core.PhaseRunning,
		spawner:  NewSpawner(BuildQueue(p, rng), cfg.Spawn),
		store:    NewEntityStore(cfg.Spawn.MaxLive),
		catcher:  NewCatcher(cfg.Catcher),
		ledger:   NewMistakeLedger(),
		throttle: NewThrottle(cfg.Timing.RenderInterval()),
		lives:    cfg.Round.Lives,
	}
}

// Advance runs one simulation step of dt over an arena. Invalid arena
// dimensions are replaced by the configured fallback.
func (r *Round) Advance(dt time.Duration, arena Arena) TickResult {
	var res TickResult
	if r.phase != core.PhaseRunning {
		return res
	}
	r.ticks++

	arena = arena.Or(FallbackArena(r.cfg.Arena))

	if r.damaged > 0 {
		r.damaged = max(0, r.damaged-dt)
	}

	if e, ok := r.spawner.Update(dt, r.store.Len(), r.rng); ok {
		r.store.Add(e)
		res.Spawned = true
	}

	ev := Evaluator{
		Arena:      arena,
		Zone:       CatchZone(arena, r.catcher, r.cfg.Catcher),
		MissMargin: r.cfg.Arena.MissMargin,
		Step:       dt,
	}
	r.store.Sweep(ev.Classify, func(e Entity, out Outcome) bool {
		r.processed++
		if out == Missed {
			res.Missed++
			return true
		}
		res.Caught++
		return r.catch(e)
	})

	if r.lives+r.pending.Lives <= 0 {
		r.end()
		res.Flushed, res.Ended = true, true
		return res
	}

	if r.throttle.Advance(dt) {
		r.flush()
		res.Flushed = true
	}

	if r.processed >= r.spawner.Total() {
		r.end()
		res.Flushed, res.Ended = true, true
	}
	return res
}

// catch applies a caught entity and reports whether the round may go on.
func (r *Round) catch(e Entity) bool {
	if e.Correct() {
		r.pending.Score += r.cfg.Round.ScorePerCatch
		r.feedback.Success()
		return true
	}

	r.pending.Lives--
	r.feedback.Failure()
	r.damaged = r.cfg.Catcher.DamageFlash()
	r.ledger.Record(e.Template)
	return r.lives+r.pending.Lives > 0
}

// flush applies pending deltas to observable state.
func (r *Round) flush() {
	r.score += r.pending.Score
	r.lives += r.pending.Lives
	r.pending = Deltas{}
}

// end flushes immediately and freezes the summary.
func (r *Round) end() {
	r.flush()
	r.phase = core.PhaseEnded
	r.summary = &Summary{
		DifficultyKey:  r.profile.Key,
		DifficultyName: r.profile.Name,
		Score:          r.score,
		Lives:          r.lives,
		Processed:      r.processed,
		Total:          r.spawner.Total(),
		Mistakes:       r.ledger.Top(r.cfg.Round.MistakesShown),
		Ledger:         r.ledger.Top(0),
	}
}

// MoveCatcher sets the catcher position in percent. It may be called at
// any time between ticks.
func (r *Round) MoveCatcher(pct float64) {
	r.catcher.MoveTo(pct)
}

// NudgeCatcher moves the catcher by delta percent.
func (r *Round) NudgeCatcher(delta float64) {
	r.catcher.Nudge(delta)
}

// Phase returns the lifecycle phase.
func (r *Round) Phase() core.Phase {
	return r.phase
}

// Profile returns the active difficulty.
func (r *Round) Profile() catalog.Profile {
	return r.profile
}

// Damaged reports whether the catcher is flashing after a wrong catch.
func (r *Round) Damaged() bool {
	return r.damaged > 0
}

// Summary returns the frozen end-of-round summary once the round ended.
func (r *Round) Summary() (Summary, bool) {
	if r.summary == nil {
		return Summary{}, false
	}
	return *r.summary, true
}

// State returns the observable state.
func (r *Round) State() core.GameState {
	return core.GameState{
		Phase:     r.phase,
		Score:     r.score,
		Lives:     r.lives,
		Processed: r.processed,
		Total:     r.spawner.Total(),
	}
}

// Summary is the end-of-round report.
type Summary struct {
	DifficultyKey  string
	DifficultyName string
	Score          int
	Lives          int
	Processed      int
	Total          int
	Mistakes       []Mistake // Ranked by count, capped for display
	Ledger         []Mistake // Every distinct mistake, ranked by count
}

// Cleared reports whether the round finished with lives remaining.
func (s Summary) Cleared() bool {
	return s.Lives > 0
}
