package game

import (
	"time"

	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/jbeda/geom"
)

// FocusTarget 键盘焦点所在的控件
type FocusTarget int

const (
	// FocusNone 没有控件获得焦点
	FocusNone FocusTarget = iota
	// FocusAffirm "是"按钮获得焦点
	FocusAffirm
	// FocusDecline "否"按钮获得焦点
	FocusDecline
)

// String 返回焦点名称（日志使用）
func (f FocusTarget) String() string {
	switch f {
	case FocusAffirm:
		return "affirm"
	case FocusDecline:
		return "decline"
	default:
		return "none"
	}
}

// MotionState "否"按钮的移动状态
// 不变量：距离上次移动不超过冷却时间时，不允许再次移动
type MotionState struct {
	LastMove time.Duration // 上次移动的虚拟时钟时间
	HasMoved bool          // 是否移动过（从未移动过的控件不受冷却限制）
}

// CooledDown 判断是否已经过了冷却时间
// 与原版一致：恰好等于冷却时间时仍视为冷却中
func (m MotionState) CooledDown(now, cooldown time.Duration) bool {
	if !m.HasMoved {
		return true
	}
	return now-m.LastMove > cooldown
}

// MarkMoved 记录一次成功的移动
func (m *MotionState) MarkMoved(now time.Duration) {
	m.LastMove = now
	m.HasMoved = true
}

// WidgetState 挂件的全部交互状态
//
// 与单例不同，WidgetState 作为显式上下文对象由场景创建并注入各系统。
// 所有字段只在更新线程上修改，不需要加锁。
type WidgetState struct {
	// Pointer 最近一次已知的指针位置（视口坐标），初始为视口中心
	Pointer geom.Coord

	// Viewport 视口尺寸（X=宽, Y=高）
	Viewport geom.Coord
	// Container 按钮区域（视口坐标）
	Container geom.Rect

	// Accepted 是否已经点击"是"，只能经由 Accept() 从 false 变为 true
	Accepted bool
	// Hover 指针是否悬停在"是"按钮上
	Hover bool
	// Motion "否"按钮的移动冷却状态
	Motion MotionState

	// Celebrating 根视图处于庆祝模式（同时卡片切换为已接受外观）
	Celebrating bool
	// Pop "是"按钮的短暂弹跳强调
	Pop bool
	// PopStartedAt 弹跳强调开始的时间（渲染计算动画进度）
	PopStartedAt time.Duration
	// ResultVisible 结果视图已显示
	ResultVisible bool

	// Focus 键盘焦点
	Focus FocusTarget

	// 控件实体
	AffirmID  ecs.EntityID
	DeclineID ecs.EntityID
}

// NewWidgetState 创建挂件状态，指针初始化为视口中心
func NewWidgetState(viewportWidth, viewportHeight float64) *WidgetState {
	return &WidgetState{
		Pointer:  geom.Coord{X: viewportWidth / 2, Y: viewportHeight / 2},
		Viewport: geom.Coord{X: viewportWidth, Y: viewportHeight},
	}
}

// Accept 将状态切换为已接受
// 返回 false 表示已经接受过（幂等，不做任何修改）
func (s *WidgetState) Accept() bool {
	if s.Accepted {
		return false
	}
	s.Accepted = true
	s.Hover = false
	return true
}

// SetPointer 记录最新指针位置（视口坐标）
func (s *WidgetState) SetPointer(x, y float64) {
	s.Pointer = geom.Coord{X: x, Y: y}
}

// ToLocal 将视口坐标转换为容器坐标
func (s *WidgetState) ToLocal(p geom.Coord) geom.Coord {
	return p.Minus(s.Container.Min)
}

// ToViewport 将容器坐标转换为视口坐标
func (s *WidgetState) ToViewport(p geom.Coord) geom.Coord {
	return p.Plus(s.Container.Min)
}

// CycleFocus 按 Tab 顺序切换焦点：无 → 是 → 否 → 无
func (s *WidgetState) CycleFocus() FocusTarget {
	switch s.Focus {
	case FocusNone:
		s.Focus = FocusAffirm
	case FocusAffirm:
		s.Focus = FocusDecline
	default:
		s.Focus = FocusNone
	}
	return s.Focus
}
