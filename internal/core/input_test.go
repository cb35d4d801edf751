package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionJump)
	if !f.Has(ActionLeft) || !f.Has(ActionJump) || f.Has(ActionRight) {
		t.Fatalf("unexpected actions: %v", f.Actions)
	}

	c := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear left actions behind")
	}
	if !c.Has(ActionJump) {
		t.Error("Clone shares storage with the original")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on a zero frame failed")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionJump.String() != "Jump" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
