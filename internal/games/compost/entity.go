package compost

import (
	"time"

	"github.com/vovakirdan/compost-catch/internal/catalog"
)

// Entity is a single falling item. It lives only inside an EntityStore.
type Entity struct {
	ID       int
	Template catalog.ItemTemplate
	X        float64 // Horizontal position, percent of arena width
	Y        float64 // Pixels from arena top, negative while above the arena
	Speed    float64 // Pixels per second, always positive
	Rotation int     // Cosmetic, degrees
}

// Correct reports whether the entity belongs in the bin.
func (e Entity) Correct() bool {
	return e.Template.Category == catalog.Correct
}

// Fall advances the entity by dt.
func (e *Entity) Fall(dt time.Duration) {
	e.Y += e.Speed * dt.Seconds()
}

// EntityStore is the authoritative set of live entities.
type EntityStore struct {
	entities []Entity
}

// NewEntityStore creates an empty store with room for capacity entities.
func NewEntityStore(capacity int) *EntityStore {
	return &EntityStore{entities: make([]Entity, 0, capacity)}
}

// Add inserts a freshly spawned entity.
func (s *EntityStore) Add(e Entity) {
	s.entities = append(s.entities, e)
}

// Len returns the number of live entities.
func (s *EntityStore) Len() int {
	return len(s.entities)
}

// Entities returns a copy of the live entities.
func (s *EntityStore) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Clear removes every entity.
func (s *EntityStore) Clear() {
	s.entities = s.entities[:0]
}

// Sweep advances and classifies every live entity in insertion order.
// Resolved entities are handed to resolve and removed. If resolve returns
// false the sweep stops: entities not yet visited stay in the store untouched.
func (s *EntityStore) Sweep(classify func(*Entity) Outcome, resolve func(Entity, Outcome) bool) {
	kept := s.entities[:0]
	halted := false
	for _, e := range s.entities {
		if halted {
			kept = append(kept, e)
			continue
		}
		out := classify(&e)
		if out == Falling {
			kept = append(kept, e)
			continue
		}
		if !resolve(e, out) {
			halted = true
		}
	}
	s.entities = kept
}
