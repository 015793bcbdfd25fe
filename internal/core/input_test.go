package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionReset)
	f.Click(3, 4)
	f.Click(5, 6)

	if !f.Has(ActionReset) {
		t.Error("frame should have ActionReset")
	}
	if f.Has(ActionQuit) {
		t.Error("frame should not have ActionQuit")
	}
	if len(f.Clicks) != 2 || f.Clicks[0] != Pt(3, 4) || f.Clicks[1] != Pt(5, 6) {
		t.Errorf("Clicks = %v, expected [(3,4) (5,6)]", f.Clicks)
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("frame should be empty after Clear, got %+v", f)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionReset.String() != "Reset" {
		t.Errorf("ActionReset.String() = %q", ActionReset.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
