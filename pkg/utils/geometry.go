// Package utils 提供挂件通用的几何、缓动和输入工具函数
//
// geometry.go 是所有控制器共用的纯数学函数，不依赖 Ebitengine。
//
// # 坐标系统
//
//   - **视口坐标**：相对于窗口左上角（指针位置、粒子位置）
//   - **容器坐标**：相对于按钮区域左上角（控件 PositionComponent 使用）
//
// 转换：容器坐标 = 视口坐标 - 容器.Min
package utils

import (
	"math"

	"github.com/jbeda/geom"
)

// Clamp 将 v 限制在 [lo, hi] 范围内
// 前置条件 lo <= hi；若不满足则返回 lo（与退化布局的"贴边"行为一致）
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Distance 返回两点之间的欧几里得距离
func Distance(ax, ay, bx, by float64) float64 {
	return geom.Coord{X: ax, Y: ay}.DistanceFrom(geom.Coord{X: bx, Y: by})
}

// NewRect 根据左上角和尺寸构造矩形
func NewRect(left, top, width, height float64) geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: left, Y: top},
		Max: geom.Coord{X: left + width, Y: top + height},
	}
}

// RectCenter 返回矩形中心
func RectCenter(r geom.Rect) geom.Coord {
	return r.Min.Plus(r.Max).Times(0.5)
}

// RectContains 判断点是否在矩形内（边界包含在内）
func RectContains(r geom.Rect, p geom.Coord) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ScaleRect 以矩形中心为原点缩放矩形
// 与 CSS transform: scale() 的包围盒一致，中心点保持不变
func ScaleRect(r geom.Rect, scale float64) geom.Rect {
	c := RectCenter(r)
	half := r.Max.Minus(r.Min).Times(0.5 * scale)
	return geom.Rect{Min: c.Minus(half), Max: c.Plus(half)}
}

// TranslateRect 平移矩形
func TranslateRect(r geom.Rect, offset geom.Coord) geom.Rect {
	return geom.Rect{Min: r.Min.Plus(offset), Max: r.Max.Plus(offset)}
}
