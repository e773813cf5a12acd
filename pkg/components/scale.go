package components

// ScaleComponent 控件的视觉缩放（以中心为原点）
//
// Scale 是逻辑值，由吸引系统写入；渲染使用 SpringComponent 平滑后的显示值。
// 1.0 = 原始大小
type ScaleComponent struct {
	Scale float64
}
