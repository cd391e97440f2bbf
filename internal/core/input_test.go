package core

import "testing"

func TestInputFrameHeld(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionThrust) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionThrust)
	f.Set(ActionRotateLeft)

	if !f.Has(ActionThrust) || !f.Has(ActionRotateLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRotateRight) {
		t.Error("unset action should not be reported")
	}
}

func TestInputFrameEvents(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionFire)
	f.Release(ActionFire)
	f.Press(ActionFire)
	f.Press(ActionPause)

	if got := f.Pressed(ActionFire); got != 2 {
		t.Errorf("Pressed(Fire) = %d, expected 2", got)
	}
	if got := f.Pressed(ActionPause); got != 1 {
		t.Errorf("Pressed(Pause) = %d, expected 1", got)
	}
	if len(f.Events) != 4 {
		t.Fatalf("expected 4 queued events, got %d", len(f.Events))
	}
	if f.Events[1].Pressed {
		t.Error("second event should be a release")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionThrust)
	f.Press(ActionFire)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionThrust) || len(f.Events) != 0 {
		t.Error("Clear should drop held actions and events")
	}
	if !clone.Has(ActionThrust) || clone.Pressed(ActionFire) != 1 {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
