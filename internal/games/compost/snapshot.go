package compost

import (
	"github.com/vovakirdan/compost-catch/internal/catalog"
	"github.com/vovakirdan/compost-catch/internal/core"
)

// EntityView is the read-only view of a live entity.
type EntityView struct {
	ID        int
	Label     string
	Category  catalog.Category
	Disguised bool    // Correct and incorrect items render identically
	X         float64 // Percent of arena width
	PixelX    float64 // X in pixels for the arena of the snapshot
	Y         float64 // Pixels from arena top
	Rotation  int
}

// Snapshot captures the complete round state for rendering and determinism testing.
type Snapshot struct {
	Tick       uint64
	Phase      core.Phase
	Difficulty string
	Score      int
	Lives      int
	Processed  int
	Total      int
	Catcher    float64 // Percent of arena width
	Damaged    bool
	Paused     bool
	Entities   []EntityView
}

// Snapshot returns the current round snapshot.
func (g *Game) Snapshot() Snapshot {
	state := g.State()
	snap := Snapshot{
		Phase:      state.Phase,
		Difficulty: g.difficulty.Key,
		Score:      state.Score,
		Lives:      state.Lives,
		Processed:  state.Processed,
		Total:      state.Total,
		Catcher:    g.cfg.Catcher.StartPct,
		Paused:     state.Paused,
	}
	if g.round == nil {
		return snap
	}

	r := g.round
	snap.Tick = r.ticks
	snap.Catcher = r.catcher.Position()
	snap.Damaged = r.Damaged()

	disguised := r.profile.VisuallyIndistinguishable
	arena := g.Arena().Or(FallbackArena(g.cfg.Arena))
	for _, e := range r.store.entities {
		snap.Entities = append(snap.Entities, EntityView{
			ID:        e.ID,
			Label:     e.Template.Label,
			Category:  e.Template.Category,
			Disguised: disguised,
			X:         e.X,
			PixelX:    e.X / 100 * arena.Width,
			Y:         e.Y,
			Rotation:  e.Rotation,
		})
	}
	return snap
}
