package feedback

import (
	"testing"

	"github.com/vovakirdan/compost-catch/internal/games/compost"
)

var _ compost.Feedback = (*Tones)(nil)

// TestTonesSilentWhenUninitialized verifies tones never panic without a speaker.
func TestTonesSilentWhenUninitialized(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialized tones panicked: %v", r)
		}
	}()

	var tones Tones
	tones.Success()
	tones.Failure()
	tones.Close()

	if tones.Enabled() {
		t.Error("zero Tones should be disabled")
	}
}

func TestDefaultTones(t *testing.T) {
	if SuccessTone.Freq <= FailureTone.Freq {
		t.Error("success tone should be higher than the failure tone")
	}
	if SuccessTone.Duration <= 0 || FailureTone.Duration <= 0 {
		t.Error("tones need a positive duration")
	}
}
