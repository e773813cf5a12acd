package utils

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		lo, hi   float64
		expected float64
	}{
		{"区间内", 5, 0, 10, 5},
		{"低于下界", -3, 0, 10, 0},
		{"高于上界", 42, 0, 10, 10},
		{"等于下界", 0, 0, 10, 0},
		{"区间退化为点", 7, 12, 12, 12},
		{"下界大于上界时取下界", 7, 12, 4, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, 期望 %v", tt.v, tt.lo, tt.hi, got, tt.expected)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by float64
		expected       float64
	}{
		{"同一点", 3, 4, 3, 4, 0},
		{"3-4-5 三角形", 0, 0, 3, 4, 5},
		{"负坐标", -1, -1, 2, 3, 5},
		{"水平", 10, 0, -10, 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.ax, tt.ay, tt.bx, tt.by)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Distance = %v, 期望 %v", got, tt.expected)
			}
			// 对称性
			if back := Distance(tt.bx, tt.by, tt.ax, tt.ay); math.Abs(back-got) > 1e-9 {
				t.Errorf("Distance is not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(10, 20, 100, 40)

	c := RectCenter(r)
	if c.X != 60 || c.Y != 40 {
		t.Errorf("RectCenter = (%v, %v), 期望 (60, 40)", c.X, c.Y)
	}

	if !RectContains(r, geom.Coord{X: 10, Y: 20}) {
		t.Error("左上角应视为在矩形内")
	}
	if !RectContains(r, geom.Coord{X: 110, Y: 60}) {
		t.Error("右下角应视为在矩形内")
	}
	if RectContains(r, geom.Coord{X: 111, Y: 60}) {
		t.Error("右侧外部的点不应在矩形内")
	}

	scaled := ScaleRect(r, 1.5)
	if math.Abs(scaled.Width()-150) > 1e-9 || math.Abs(scaled.Height()-60) > 1e-9 {
		t.Errorf("ScaleRect 尺寸错误: %vx%v", scaled.Width(), scaled.Height())
	}
	sc := RectCenter(scaled)
	if math.Abs(sc.X-c.X) > 1e-9 || math.Abs(sc.Y-c.Y) > 1e-9 {
		t.Error("ScaleRect 应保持中心不变")
	}

	moved := TranslateRect(r, geom.Coord{X: -10, Y: 5})
	if moved.Min.X != 0 || moved.Min.Y != 25 || moved.Max.X != 100 || moved.Max.Y != 65 {
		t.Errorf("TranslateRect 结果错误: %+v", moved)
	}
}
