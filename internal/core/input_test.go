package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionUp) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionConfirm)
	if !f.Has(ActionUp) || !f.Has(ActionConfirm) || f.Has(ActionDown) {
		t.Errorf("unexpected actions: %v", f.Actions)
	}
	if f.Empty() {
		t.Error("frame with actions should not be empty")
	}
}

func TestInputFrameClicks(t *testing.T) {
	f := NewInputFrame()
	f.Click(3, 4)
	f.Click(7, 1)

	if f.Empty() {
		t.Fatal("frame with clicks should not be empty")
	}
	want := []Point{{3, 4}, {7, 1}}
	if len(f.Clicks) != 2 || f.Clicks[0] != want[0] || f.Clicks[1] != want[1] {
		t.Errorf("Clicks = %v, want %v", f.Clicks, want)
	}

	f.Set(ActionHint)
	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear should drop actions and clicks, got %+v", f)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Click(1, 2)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionPause) || len(c.Clicks) != 1 || c.Clicks[0] != (Point{1, 2}) {
		t.Errorf("clone should survive Clear of the original, got %+v", c)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionConfirm, "Confirm"},
		{ActionDeselect, "Deselect"},
		{ActionHint, "Hint"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
