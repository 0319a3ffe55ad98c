package compost

import "github.com/vovakirdan/compost-catch/internal/catalog"

// Rand is the random source used by the queue builder and spawner.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// BuildQueue returns exactly p.RoundSize templates: half (rounded down)
// drawn from the correct pool and the rest from the incorrect pool, shuffled
// together. Pools smaller than their share are drawn with replacement once
// exhausted.
func BuildQueue(p catalog.Profile, rng Rand) []catalog.ItemTemplate {
	half := p.RoundSize / 2

	queue := make([]catalog.ItemTemplate, 0, p.RoundSize)
	queue = append(queue, draw(p.CorrectPool, half, rng)...)
	queue = append(queue, draw(p.IncorrectPool, p.RoundSize-half, rng)...)
	shuffle(queue, rng)
	return queue
}

// draw picks n templates from pool, without replacement while the pool lasts.
func draw(pool []catalog.ItemTemplate, n int, rng Rand) []catalog.ItemTemplate {
	picks := make([]catalog.ItemTemplate, len(pool), max(n, len(pool)))
	copy(picks, pool)
	shuffle(picks, rng)

	if n <= len(picks) {
		return picks[:n]
	}
	for len(picks) < n {
		picks = append(picks, pool[rng.Intn(len(pool))])
	}
	return picks
}

// shuffle is an in-place Fisher-Yates shuffle.
func shuffle(items []catalog.ItemTemplate, rng Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
