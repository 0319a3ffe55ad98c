// Package feedback plays short tones when an item is caught.
// Without an audio device it stays silent.
package feedback

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a single sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Default tones for the two catch outcomes.
var (
	SuccessTone = Tone{Freq: 880, Duration: 60 * time.Millisecond}
	FailureTone = Tone{Freq: 196, Duration: 180 * time.Millisecond}
)

// Tones plays a success or failure tone through the speaker.
// The zero value is silent.
type Tones struct {
	mu      sync.Mutex
	ready   bool
	success Tone
	failure Tone
}

// NewTones initializes the speaker. If that fails the error is logged and
// the returned Tones is silent.
func NewTones(logger *log.Logger) *Tones {
	t := &Tones{success: SuccessTone, failure: FailureTone}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, feedback muted", "err", err)
		}
		return t
	}
	t.ready = true
	return t
}

// Enabled reports whether tones reach the speaker.
func (t *Tones) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ready
}

// Success plays the success tone.
func (t *Tones) Success() {
	t.play(t.success)
}

// Failure plays the failure tone.
func (t *Tones) Failure() {
	t.play(t.failure)
}

// play queues a tone without blocking the caller.
func (t *Tones) play(tone Tone) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.ready || tone.Duration <= 0 {
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.Freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tone.Duration), sine))
}

// Close releases the speaker. Further calls are silent.
func (t *Tones) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	t.ready = false
}
