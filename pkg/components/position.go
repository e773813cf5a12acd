package components

// PositionComponent 实体位置
//
// 控件：容器坐标系下的左上角
// 粒子：视口坐标系下的生成点
type PositionComponent struct {
	X float64
	Y float64
}
