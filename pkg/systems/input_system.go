package systems

import (
	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/utils"
	"github.com/jbeda/geom"
)

// WidgetEvents 挂件的事件入口（由场景实现）
//
// 每个事件都是一次原子的处理调用；处理函数自己检查接受标记。
type WidgetEvents interface {
	// PointerMove 指针在视口内移动（全局）
	PointerMove(x, y float64)

	// DeclineEnter 指针进入"否"按钮
	DeclineEnter()
	// DeclineMove 指针在"否"按钮上移动
	DeclineMove()
	// DeclinePress 在"否"按钮上按下鼠标
	DeclinePress(x, y float64)
	// DeclineTouch 在"否"按钮上开始触摸
	DeclineTouch(x, y float64)
	// DeclineKey 键盘激活"否"按钮
	DeclineKey()

	// AffirmEnter / AffirmLeave 指针进入、离开"是"按钮
	AffirmEnter()
	AffirmLeave()
	// AffirmActivate 点击、轻触或键盘激活"是"按钮
	AffirmActivate()

	// ContainerLeave 指针离开按钮区域
	ContainerLeave()
}

// InputSystem 把原始输入帧转换为挂件事件
//
// 负责边沿检测（进入/离开）和命中测试。命中测试使用逻辑几何
// （PositionComponent + ScaleComponent），不使用弹簧平滑后的显示位置。
type InputSystem struct {
	entityManager *ecs.EntityManager
	state         *game.WidgetState
	events        WidgetEvents

	started    bool
	lastCursor geom.Coord // 上一次鼠标帧的位置
	lastTouch  geom.Coord // 上一次触摸帧的位置

	overDecline   bool
	overAffirm    bool
	overContainer bool
	// affirmArmed 按下发生在"是"按钮上，释放时若仍在按钮上则视为点击
	affirmArmed bool
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, state *game.WidgetState, events WidgetEvents) *InputSystem {
	return &InputSystem{
		entityManager: em,
		state:         state,
		events:        events,
	}
}

// Process 处理一帧输入
//
// 同一帧内的事件顺序："是"按钮进入/离开 → 容器离开 → 全局移动 →
// "否"按钮进入/移动/按下 → 点击 → 键盘。
// 进入/离开先于移动，移动时的缩放计算能看到最新的悬停状态；
// "否"按钮的事件在移动之后，强制躲避使用最新的指针位置。
func (s *InputSystem) Process(frame utils.PointerFrame) {
	p := geom.Coord{X: frame.X, Y: frame.Y}
	moved := s.detectMove(frame, p)

	// 命中测试在分发事件之前完成，同一帧内的处理不影响本帧的命中结果
	inDecline := utils.RectContains(ControlViewportBounds(s.entityManager, s.state, s.state.DeclineID), p)
	inAffirm := utils.RectContains(ControlViewportBounds(s.entityManager, s.state, s.state.AffirmID), p)
	inContainer := utils.RectContains(s.state.Container, p)

	if inAffirm && !s.overAffirm {
		s.events.AffirmEnter()
	} else if !inAffirm && s.overAffirm {
		s.events.AffirmLeave()
	}

	if !inContainer && s.overContainer {
		s.events.ContainerLeave()
	}

	if moved {
		s.events.PointerMove(p.X, p.Y)
	}

	if inDecline && !s.overDecline {
		s.events.DeclineEnter()
	} else if inDecline && moved {
		s.events.DeclineMove()
	}
	if frame.Pressed && inDecline {
		if frame.Touch {
			s.events.DeclineTouch(p.X, p.Y)
		} else {
			s.events.DeclinePress(p.X, p.Y)
		}
	}

	if frame.Pressed {
		s.affirmArmed = inAffirm
	}
	if frame.Released {
		if s.affirmArmed && inAffirm {
			s.events.AffirmActivate()
		}
		s.affirmArmed = false
	}

	if frame.TabPressed {
		s.state.CycleFocus()
	}
	if frame.ActivatePressed {
		switch s.state.Focus {
		case game.FocusAffirm:
			s.events.AffirmActivate()
		case game.FocusDecline:
			s.events.DeclineKey()
		}
	}

	s.overDecline = inDecline
	s.overAffirm = inAffirm
	s.overContainer = inContainer
}

// detectMove 判断指针是否移动
//
// 鼠标和触摸分别记录上一次位置：触摸结束后光标位置通常停留在旧值，
// 不应因为切回鼠标帧而产生一次跳变。第一帧只记录位置。
func (s *InputSystem) detectMove(frame utils.PointerFrame, p geom.Coord) bool {
	if !s.started {
		s.started = true
		s.lastCursor = p
		s.lastTouch = p
		return false
	}

	if frame.Touch {
		moved := p != s.lastTouch || frame.Pressed
		s.lastTouch = p
		return moved
	}
	moved := p != s.lastCursor
	s.lastCursor = p
	return moved
}
