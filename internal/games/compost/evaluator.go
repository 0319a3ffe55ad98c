package compost

import (
	"math"
	"time"

	"github.com/vovakirdan/compost-catch/internal/config"
	"github.com/vovakirdan/compost-catch/internal/core"
)

// Outcome classifies an entity after a tick.
type Outcome int

const (
	Falling Outcome = iota // Still in play
	Caught                 // Landed in the catch zone
	Missed                 // Fell past the bottom of the arena
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Falling:
		return "falling"
	case Caught:
		return "caught"
	case Missed:
		return "missed"
	default:
		return "unknown"
	}
}

// Arena is the play surface size in pixels.
type Arena struct {
	Width, Height float64
}

// Valid reports whether both dimensions are positive.
func (a Arena) Valid() bool {
	return a.Width > 0 && a.Height > 0
}

// Or returns a when it is valid and fallback otherwise.
func (a Arena) Or(fallback Arena) Arena {
	if a.Valid() {
		return a
	}
	return fallback
}

// FallbackArena returns the arena used when the host cannot measure one.
func FallbackArena(cfg config.ArenaConfig) Arena {
	return Arena{Width: cfg.FallbackWidth, Height: cfg.FallbackHeight}
}

// CatchZone returns the region an entity must enter to be caught: centered
// on the catcher, a proportional width with an absolute minimum, spanning
// a band just above the arena floor.
func CatchZone(arena Arena, catcher Catcher, cfg config.CatcherConfig) core.Bounds {
	center := catcher.PixelX(arena.Width)
	width := math.Max(cfg.ZoneMinWidth, arena.Width*cfg.ZoneWidthRatio)
	return core.Bounds{
		Left:   center - width/2,
		Right:  center + width/2,
		Top:    arena.Height - cfg.ZoneTopOffset,
		Bottom: arena.Height - cfg.ZoneBottomOffset,
	}
}

// Evaluator advances entities and decides their outcome for one tick.
type Evaluator struct {
	Arena      Arena
	Zone       core.Bounds
	MissMargin float64
	Step       time.Duration
}

// Classify moves e by the tick step and returns its outcome. Caught is
// checked before Missed; an entity that passes the band without lateral
// overlap keeps falling until it leaves the arena.
func (ev Evaluator) Classify(e *Entity) Outcome {
	e.Fall(ev.Step)

	px := e.X / 100 * ev.Arena.Width
	if ev.Zone.Contains(px, e.Y) {
		return Caught
	}
	if e.Y > ev.Arena.Height+ev.MissMargin {
		return Missed
	}
	return Falling
}
