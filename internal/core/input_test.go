package core

import (
	"testing"
	"time"
)

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Now = time.Unix(100, 0)

	if !f.Has(ActionLeft) {
		t.Error("expected ActionLeft to be set")
	}
	if f.Has(ActionRight) {
		t.Error("ActionRight should not be set")
	}

	f.Clear()

	if f.Has(ActionLeft) || !f.Now.IsZero() {
		t.Error("Clear should reset actions and timestamp")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
