package compost

import (
	"time"

	"github.com/vovakirdan/compost-catch/internal/catalog"
	"github.com/vovakirdan/compost-catch/internal/config"
)

// Spawner introduces queued items into the arena, one at a time, at a
// fixed interval and never beyond the concurrency cap.
type Spawner struct {
	queue    []catalog.ItemTemplate
	next     int           // Index of the next unconsumed template
	timer    time.Duration // Time since the last spawn
	interval time.Duration
	cfg      config.SpawnConfig
	nextID   int
}

// NewSpawner creates a spawner over a pre-built queue.
func NewSpawner(queue []catalog.ItemTemplate, cfg config.SpawnConfig) *Spawner {
	return &Spawner{
		queue:    queue,
		interval: cfg.SpawnInterval(),
		cfg:      cfg,
	}
}

// Update advances the spawn timer and returns a new entity when the queue
// is not exhausted, fewer than the cap are live, and the interval has
// elapsed. The timer resets only when an entity is spawned.
func (s *Spawner) Update(dt time.Duration, live int, rng Rand) (Entity, bool) {
	s.timer += dt

	if s.Exhausted() || live >= s.cfg.MaxLive || s.timer < s.interval {
		return Entity{}, false
	}

	tmpl := s.queue[s.next]
	s.next++
	s.timer = 0
	s.nextID++

	margin := s.cfg.MarginPct
	speed := s.cfg.MinSpeed + rng.Float64()*s.cfg.SpeedJitter

	rotation := 0
	if s.cfg.MaxRotation > 0 {
		rotation = rng.Intn(2*s.cfg.MaxRotation) - s.cfg.MaxRotation
	}

	return Entity{
		ID:       s.nextID,
		Template: tmpl,
		X:        margin + rng.Float64()*(100-2*margin),
		Y:        s.cfg.StartY,
		Speed:    speed * s.cfg.SpeedScale,
		Rotation: rotation,
	}, true
}

// Exhausted reports whether every queued template has been spawned.
func (s *Spawner) Exhausted() bool {
	return s.next >= len(s.queue)
}

// Remaining returns the number of templates not yet spawned.
func (s *Spawner) Remaining() int {
	return len(s.queue) - s.next
}

// Total returns the queue length.
func (s *Spawner) Total() int {
	return len(s.queue)
}
