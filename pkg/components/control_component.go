package components

// ControlKind 控件类型
type ControlKind int

const (
	// ControlAffirm "是"按钮：指针靠近时放大，点击触发庆祝
	ControlAffirm ControlKind = iota
	// ControlDecline "否"按钮：躲避指针
	ControlDecline
)

// ControlComponent 按钮控件（纯数据组件）
// 尺寸为未缩放的布局尺寸，缩放见 ScaleComponent
type ControlComponent struct {
	Kind   ControlKind
	Label  string
	Width  float64
	Height float64
}
