package systems

import (
	"math"
	"testing"

	"github.com/gonewx/yesno/pkg/config"
)

func TestAttractionScale(t *testing.T) {
	cfg := config.DefaultWidgetConfig().Attraction

	tests := []struct {
		name     string
		distance float64
		hover    bool
		expected float64
	}{
		{"指针在中心", 0, false, 1.55},
		{"阈值一半", 90, false, 1.275},
		{"恰好等于阈值", 180, false, 1},
		{"超出阈值", 400, false, 1},
		{"悬停时不低于下限", 400, true, 1.25},
		{"悬停且更近时取更大值", 0, true, 1.55},
		{"悬停但计算值低于下限", 120, true, 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttractionScale(tt.distance, tt.hover, cfg)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("AttractionScale(%v, %v) = %v, 期望 %v", tt.distance, tt.hover, got, tt.expected)
			}
		})
	}
}

func TestAttractionScaleIsMonotonic(t *testing.T) {
	cfg := config.DefaultWidgetConfig().Attraction
	prev := math.Inf(1)
	for d := 0.0; d <= 250; d += 5 {
		s := AttractionScale(d, false, cfg)
		if s > prev {
			t.Fatalf("scale increased with distance at d=%v: %v > %v", d, s, prev)
		}
		if d >= cfg.Threshold && s != 1 {
			t.Fatalf("scale should be exactly 1 beyond threshold, got %v at d=%v", s, d)
		}
		prev = s
	}
}

func TestAttractionSystemUpdate(t *testing.T) {
	w := newTestWidget(t, 520, 200)
	sys := NewAttractionSystem(w.em, w.state, w.cfg.Attraction)

	// "是"按钮中心 (156, 100)
	w.state.SetPointer(156, 100)
	sys.Update()
	if math.Abs(w.affirmScale()-1.55) > 1e-9 {
		t.Errorf("Expected scale 1.55 at the centre, got %v", w.affirmScale())
	}

	w.state.SetPointer(500, 190)
	sys.Update()
	if w.affirmScale() != 1 {
		t.Errorf("Expected scale 1 far away, got %v", w.affirmScale())
	}
}

func TestAttractionEnterLeave(t *testing.T) {
	w := newTestWidget(t, 520, 200)
	sys := NewAttractionSystem(w.em, w.state, w.cfg.Attraction)

	sys.Enter()
	if !w.state.Hover || w.affirmScale() != 1.25 {
		t.Errorf("Enter should set hover and scale 1.25, got hover=%v scale=%v", w.state.Hover, w.affirmScale())
	}

	// 悬停时远处的指针也保持下限
	w.state.SetPointer(500, 190)
	sys.Update()
	if w.affirmScale() != 1.25 {
		t.Errorf("Hover floor not applied, got %v", w.affirmScale())
	}

	sys.Leave()
	if w.state.Hover || w.affirmScale() != 1 {
		t.Errorf("Leave should clear hover and reset scale, got hover=%v scale=%v", w.state.Hover, w.affirmScale())
	}
}

func TestAttractionNoopAfterAccept(t *testing.T) {
	w := newTestWidget(t, 520, 200)
	sys := NewAttractionSystem(w.em, w.state, w.cfg.Attraction)

	w.state.Accept()
	w.state.SetPointer(156, 100)

	sys.Update()
	sys.Enter()
	if w.affirmScale() != 1 || w.state.Hover {
		t.Errorf("Attraction must not change state after acceptance, scale=%v hover=%v", w.affirmScale(), w.state.Hover)
	}
}
