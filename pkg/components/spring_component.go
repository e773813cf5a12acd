package components

// SpringComponent 控件的显示状态（弹簧平滑）
//
// 原页面依赖 CSS 过渡让按钮平滑移动/缩放，这里用弹簧模拟。
// 逻辑判断只读取 PositionComponent / ScaleComponent，不读取本组件。
type SpringComponent struct {
	X, Y   float64 // 显示位置（容器坐标）
	VX, VY float64 // 位置速度
	Scale  float64 // 显示缩放
	VScale float64 // 缩放速度

	// Initialized 为 false 时，下一帧直接对齐到目标（避免首帧从原点飞入）
	Initialized bool
}
