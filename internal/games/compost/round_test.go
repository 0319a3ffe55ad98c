package compost

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/compost-catch/internal/catalog"
	"github.com/vovakirdan/compost-catch/internal/config"
	"github.com/vovakirdan/compost-catch/internal/core"
)

var (
	apple  = catalog.ItemTemplate{Label: "apple", Category: catalog.Correct}
	peel   = catalog.ItemTemplate{Label: "peel", Category: catalog.Correct}
	cup    = catalog.ItemTemplate{Label: "cup", Category: catalog.Incorrect, Reason: "plastic"}
	sticky = catalog.ItemTemplate{Label: "sticker", Category: catalog.Incorrect}
)

var testArena = Arena{Width: 400, Height: 600}

// recordingFeedback counts feedback calls.
type recordingFeedback struct {
	success, failure int
}

func (f *recordingFeedback) Success() { f.success++ }
func (f *recordingFeedback) Failure() { f.failure++ }

func testProfile(size int) catalog.Profile {
	return catalog.Profile{
		Key:           "test",
		Name:          "Test",
		CorrectPool:   []catalog.ItemTemplate{apple, peel},
		IncorrectPool: []catalog.ItemTemplate{cup, sticky},
		RoundSize:     size,
	}
}

// newManualRound returns a round whose queue is consumed up front, so the
// test places every entity itself.
func newManualRound(size int, fb Feedback) *Round {
	r := NewRound(testProfile(size), config.DefaultCompostConfig(), rand.New(rand.NewSource(1)), fb)
	r.spawner.next = r.spawner.Total()
	return r
}

// placeInBand adds an entity inside the catch zone of a centered catcher.
func placeInBand(r *Round, id int, it catalog.ItemTemplate) {
	r.store.Add(Entity{ID: id, Template: it, X: 50, Y: 550, Speed: 100})
}

func TestRoundStartsRunning(t *testing.T) {
	r := NewRound(testProfile(10), config.DefaultCompostConfig(), rand.New(rand.NewSource(1)), nil)

	s := r.State()
	if s.Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, want running", s.Phase)
	}
	if s.Lives != 3 || s.Score != 0 || s.Processed != 0 || s.Total != 10 {
		t.Errorf("unexpected initial state %+v", s)
	}
	if _, ok := r.Summary(); ok {
		t.Error("Summary available before the round ended")
	}
}

func TestRoundCatchBoth(t *testing.T) {
	fb := &recordingFeedback{}
	r := newManualRound(2, fb)
	placeInBand(r, 1, apple)
	placeInBand(r, 2, cup)

	res := r.Advance(0, testArena)

	if res.Caught != 2 || !res.Ended || !res.Flushed {
		t.Errorf("TickResult = %+v", res)
	}

	s := r.State()
	if s.Phase != core.PhaseEnded {
		t.Errorf("Phase = %v, want ended", s.Phase)
	}
	if s.Score != 10 || s.Lives != 2 || s.Processed != 2 {
		t.Errorf("state = %+v, want score 10, lives 2, processed 2", s)
	}
	if fb.success != 1 || fb.failure != 1 {
		t.Errorf("feedback = %+v, want one of each", fb)
	}
	if !r.Damaged() {
		t.Error("catcher should be damaged after a wrong catch")
	}

	sum, ok := r.Summary()
	if !ok {
		t.Fatal("no summary after end")
	}
	if !sum.Cleared() || OutcomeTitle(sum) != "You finished!" {
		t.Errorf("summary %+v should be cleared", sum)
	}
	if len(sum.Mistakes) != 1 || sum.Mistakes[0] != (Mistake{Label: "cup", Reason: "plastic", Count: 1}) {
		t.Errorf("Mistakes = %+v", sum.Mistakes)
	}
}

func TestRoundEndsWhenLivesRunOut(t *testing.T) {
	r := newManualRound(10, nil)
	placeInBand(r, 1, cup)
	placeInBand(r, 2, sticky)
	placeInBand(r, 3, cup)

	res := r.Advance(0, testArena)
	if !res.Ended {
		t.Fatal("round should end on the third wrong catch")
	}

	s := r.State()
	if s.Lives != 0 || s.Processed != 3 || s.Phase != core.PhaseEnded {
		t.Errorf("state = %+v", s)
	}

	sum, _ := r.Summary()
	if sum.Cleared() || OutcomeTitle(sum) != "Game Over" {
		t.Errorf("summary %+v should not be cleared", sum)
	}
	want := []Mistake{{Label: "cup", Reason: "plastic", Count: 2}, {Label: "sticker", Count: 1}}
	for i := range want {
		if sum.Mistakes[i] != want[i] {
			t.Errorf("Mistakes[%d] = %+v, want %+v", i, sum.Mistakes[i], want[i])
		}
	}
}

func TestRoundSummaryKeepsFullLedger(t *testing.T) {
	cfg := config.DefaultCompostConfig()
	cfg.Round.MistakesShown = 1
	r := NewRound(testProfile(2), cfg, rand.New(rand.NewSource(1)), nil)
	r.spawner.next = r.spawner.Total()
	placeInBand(r, 1, cup)
	placeInBand(r, 2, sticky)

	if res := r.Advance(0, testArena); !res.Ended {
		t.Fatal("round should end once every item is processed")
	}
	sum, _ := r.Summary()
	if len(sum.Mistakes) != 1 {
		t.Errorf("Mistakes = %+v, want 1 entry", sum.Mistakes)
	}
	if len(sum.Ledger) != 2 || sum.Ledger[0].Label != "cup" || sum.Ledger[1].Label != "sticker" {
		t.Errorf("Ledger = %+v, want cup then sticker", sum.Ledger)
	}
}

func TestRoundLivesNeverNegative(t *testing.T) {
	fb := &recordingFeedback{}
	r := newManualRound(10, fb)
	for id := 1; id <= 4; id++ {
		placeInBand(r, id, cup)
	}

	r.Advance(0, testArena)

	s := r.State()
	if s.Lives != 0 {
		t.Errorf("Lives = %d, want 0", s.Lives)
	}
	if s.Processed != 3 {
		t.Errorf("Processed = %d, want 3", s.Processed)
	}
	if fb.failure != 3 {
		t.Errorf("failure feedback = %d, want 3", fb.failure)
	}
	if r.store.Len() != 1 {
		t.Errorf("fourth entity should stay unresolved, store has %d", r.store.Len())
	}

	// Ended rounds ignore further ticks
	before := r.ticks
	if res := r.Advance(time.Second, testArena); res != (TickResult{}) {
		t.Errorf("Advance after end = %+v", res)
	}
	if r.ticks != before || r.State().Processed != 3 {
		t.Error("ended round kept simulating")
	}
}

func TestRoundMissCostsNothing(t *testing.T) {
	fb := &recordingFeedback{}
	r := newManualRound(10, fb)
	r.store.Add(Entity{ID: 1, Template: cup, X: 10, Y: 660.5, Speed: 100})
	r.store.Add(Entity{ID: 2, Template: apple, X: 90, Y: 661, Speed: 100})
	r.store.Add(Entity{ID: 3, Template: cup, X: 10, Y: 550, Speed: 100})

	res := r.Advance(0, testArena)
	if res.Missed != 2 || res.Caught != 0 {
		t.Errorf("TickResult = %+v, want 2 missed", res)
	}

	r.flush()
	s := r.State()
	if s.Lives != 3 || s.Score != 0 || s.Processed != 2 {
		t.Errorf("state = %+v", s)
	}
	if fb.success != 0 || fb.failure != 0 {
		t.Errorf("misses triggered feedback: %+v", fb)
	}
	if r.store.Len() != 1 {
		t.Errorf("entity beside the bin should keep falling, store has %d", r.store.Len())
	}
}

func TestRoundThrottlesObservableState(t *testing.T) {
	r := newManualRound(10, nil)
	placeInBand(r, 1, apple)

	res := r.Advance(10*time.Millisecond, testArena)
	if res.Caught != 1 {
		t.Fatalf("Caught = %d, want 1", res.Caught)
	}
	if res.Flushed || r.State().Score != 0 {
		t.Error("score should wait for the render interval")
	}

	var flushed bool
	for i := 0; i < 5 && !flushed; i++ {
		flushed = r.Advance(10*time.Millisecond, testArena).Flushed
	}
	if !flushed {
		t.Fatal("no flush within the render interval")
	}
	if r.State().Score != 10 {
		t.Errorf("Score = %d, want 10", r.State().Score)
	}
}

func TestRoundDamageFlashExpires(t *testing.T) {
	r := newManualRound(10, nil)
	placeInBand(r, 1, cup)
	r.Advance(0, testArena)

	if !r.Damaged() {
		t.Fatal("expected damage flash")
	}
	for i := 0; i < 20; i++ {
		r.Advance(33*time.Millisecond, testArena)
	}
	if r.Damaged() {
		t.Error("damage flash should expire after 650ms")
	}
}

func TestRoundUsesFallbackArena(t *testing.T) {
	r := newManualRound(10, nil)
	// Centered catcher on the 360 px fallback spans [151.2, 208.8]
	r.store.Add(Entity{ID: 1, Template: apple, X: 50, Y: 550, Speed: 100})

	if res := r.Advance(0, Arena{}); res.Caught != 1 {
		t.Errorf("Caught = %d, want 1 against the fallback arena", res.Caught)
	}
}

// TestRoundInvariants plays full rounds with a wandering catcher and checks
// the observable state after every tick.
func TestRoundInvariants(t *testing.T) {
	cfg := config.DefaultCompostConfig()

	for _, p := range catalog.BuiltinProfiles() {
		for seed := int64(1); seed <= 10; seed++ {
			rng := rand.New(rand.NewSource(seed))
			r := NewRound(p, cfg, rng, nil)
			pointer := rand.New(rand.NewSource(seed * 31))

			prevProcessed := 0
			ticks := 0
			for r.Phase() == core.PhaseRunning {
				if ticks%20 == 0 {
					r.MoveCatcher(pointer.Float64() * 100)
				}
				r.Advance(16*time.Millisecond, testArena)
				ticks++
				if ticks > 20000 {
					t.Fatalf("%s seed %d: round never ended", p.Key, seed)
				}

				s := r.State()
				if s.Lives < 0 || s.Lives > cfg.Round.Lives {
					t.Fatalf("%s seed %d: lives %d out of range", p.Key, seed, s.Lives)
				}
				if s.Processed < prevProcessed || s.Processed > p.RoundSize {
					t.Fatalf("%s seed %d: processed %d (prev %d)", p.Key, seed, s.Processed, prevProcessed)
				}
				prevProcessed = s.Processed
				if s.Score%cfg.Round.ScorePerCatch != 0 {
					t.Fatalf("%s seed %d: score %d", p.Key, seed, s.Score)
				}
				if r.store.Len() > cfg.Spawn.MaxLive {
					t.Fatalf("%s seed %d: %d live entities", p.Key, seed, r.store.Len())
				}
				pos := r.catcher.Position()
				if pos < cfg.Catcher.MinPct || pos > cfg.Catcher.MaxPct {
					t.Fatalf("%s seed %d: catcher at %v", p.Key, seed, pos)
				}
			}

			sum, ok := r.Summary()
			if !ok {
				t.Fatalf("%s seed %d: no summary", p.Key, seed)
			}
			if sum.Lives > 0 && sum.Processed != p.RoundSize {
				t.Errorf("%s seed %d: cleared with %d/%d processed", p.Key, seed, sum.Processed, p.RoundSize)
			}
			lost := cfg.Round.Lives - sum.Lives
			if sum.Score/cfg.Round.ScorePerCatch+lost > sum.Processed {
				t.Errorf("%s seed %d: %d catches and %d losses exceed %d processed",
					p.Key, seed, sum.Score/cfg.Round.ScorePerCatch, lost, sum.Processed)
			}
			mistakes := 0
			for _, m := range sum.Mistakes {
				mistakes += m.Count
			}
			if mistakes != lost {
				t.Errorf("%s seed %d: ledger has %d mistakes, lost %d lives", p.Key, seed, mistakes, lost)
			}
		}
	}
}
