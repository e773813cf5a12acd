package game

import (
	"testing"
	"time"

	"github.com/jbeda/geom"
)

func TestNewWidgetStatePointerAtCenter(t *testing.T) {
	s := NewWidgetState(800, 600)
	if s.Pointer.X != 400 || s.Pointer.Y != 300 {
		t.Errorf("Pointer = (%v, %v), want (400, 300)", s.Pointer.X, s.Pointer.Y)
	}
	if s.Accepted || s.Hover || s.Celebrating || s.ResultVisible {
		t.Error("New state should be interactive with all flags cleared")
	}
}

func TestAcceptIsIdempotent(t *testing.T) {
	s := NewWidgetState(800, 600)
	s.Hover = true

	if !s.Accept() {
		t.Fatal("First Accept() should succeed")
	}
	if !s.Accepted || s.Hover {
		t.Error("Accept() should set Accepted and clear Hover")
	}

	s.Hover = true
	if s.Accept() {
		t.Error("Second Accept() should report no transition")
	}
	if !s.Hover {
		t.Error("Second Accept() must not modify state")
	}
}

func TestMotionStateCooldown(t *testing.T) {
	var m MotionState
	cooldown := 75 * time.Millisecond

	if !m.CooledDown(0, cooldown) {
		t.Error("A control that never moved should not be cooling down")
	}

	m.MarkMoved(100 * time.Millisecond)
	tests := []struct {
		now  time.Duration
		want bool
	}{
		{100 * time.Millisecond, false},
		{174 * time.Millisecond, false},
		{175 * time.Millisecond, false}, // 恰好等于冷却时间仍在冷却
		{176 * time.Millisecond, true},
	}
	for _, tt := range tests {
		if got := m.CooledDown(tt.now, cooldown); got != tt.want {
			t.Errorf("CooledDown(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestCoordinateConversion(t *testing.T) {
	s := NewWidgetState(800, 600)
	s.Container = geom.Rect{Min: geom.Coord{X: 140, Y: 240}, Max: geom.Coord{X: 660, Y: 440}}

	local := s.ToLocal(geom.Coord{X: 150, Y: 250})
	if local.X != 10 || local.Y != 10 {
		t.Errorf("ToLocal = (%v, %v), want (10, 10)", local.X, local.Y)
	}
	back := s.ToViewport(local)
	if back.X != 150 || back.Y != 250 {
		t.Errorf("ToViewport = (%v, %v), want (150, 250)", back.X, back.Y)
	}
}

func TestCycleFocus(t *testing.T) {
	s := NewWidgetState(800, 600)
	want := []FocusTarget{FocusAffirm, FocusDecline, FocusNone, FocusAffirm}
	for i, w := range want {
		if got := s.CycleFocus(); got != w {
			t.Errorf("step %d: CycleFocus() = %v, want %v", i, got, w)
		}
	}
}
