package systems

import (
	"github.com/charmbracelet/harmonica"
	"github.com/gonewx/yesno/pkg/components"
	"github.com/gonewx/yesno/pkg/ecs"
)

const (
	// 位置弹簧：临界阻尼，平滑滑动到目标位置不回弹
	positionFrequency = 9.0
	positionDamping   = 1.0
	// 缩放弹簧：略欠阻尼，放大时带一点弹性
	scaleFrequency = 14.0
	scaleDamping   = 0.6
)

// MotionSystem 控件的显示平滑
//
// 逻辑状态（PositionComponent / ScaleComponent）变化是瞬时的，
// 这里用弹簧把 SpringComponent 中的显示值逐帧拉向逻辑值。
type MotionSystem struct {
	entityManager *ecs.EntityManager
	position      harmonica.Spring
	scale         harmonica.Spring
}

// NewMotionSystem 创建显示平滑系统
//
// 参数：
//   - fps: 每秒更新次数，决定弹簧的时间步长
func NewMotionSystem(em *ecs.EntityManager, fps int) *MotionSystem {
	return &MotionSystem{
		entityManager: em,
		position:      harmonica.NewSpring(harmonica.FPS(fps), positionFrequency, positionDamping),
		scale:         harmonica.NewSpring(harmonica.FPS(fps), scaleFrequency, scaleDamping),
	}
}

// Update 推进一帧
func (s *MotionSystem) Update() {
	entities := ecs.GetEntitiesWith2[*components.SpringComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		spring, _ := ecs.GetComponent[*components.SpringComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		targetScale := 1.0
		if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			targetScale = sc.Scale
		}

		if !spring.Initialized {
			Snap(spring, pos.X, pos.Y, targetScale)
			continue
		}

		spring.X, spring.VX = s.position.Update(spring.X, spring.VX, pos.X)
		spring.Y, spring.VY = s.position.Update(spring.Y, spring.VY, pos.Y)
		spring.Scale, spring.VScale = s.scale.Update(spring.Scale, spring.VScale, targetScale)
	}
}

// Snap 把显示值直接对齐到目标并清零速度
func Snap(spring *components.SpringComponent, x, y, scale float64) {
	spring.X, spring.Y, spring.Scale = x, y, scale
	spring.VX, spring.VY, spring.VScale = 0, 0, 0
	spring.Initialized = true
}
