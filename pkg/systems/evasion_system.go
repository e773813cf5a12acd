package systems

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gonewx/yesno/pkg/components"
	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/logging"
	"github.com/gonewx/yesno/pkg/utils"
	"github.com/jbeda/geom"
)

// Clock 提供当前虚拟时间（*game.Scheduler 满足该接口）
type Clock interface {
	Now() time.Duration
}

// EvasionSystem "否"按钮的躲避控制
//
// 职责：
//   - 门控（距离阈值与冷却时间）
//   - 调用 PlanEscape 计算新位置并写回 PositionComponent
//   - 布局变化时把按钮放回初始位置
type EvasionSystem struct {
	entityManager *ecs.EntityManager
	state         *game.WidgetState
	clock         Clock
	rng           utils.RandomSource
	cfg           config.EvasionConfig
	logger        *log.Logger
}

// NewEvasionSystem 创建躲避系统
func NewEvasionSystem(em *ecs.EntityManager, state *game.WidgetState, clock Clock, rng utils.RandomSource, cfg config.EvasionConfig) *EvasionSystem {
	return &EvasionSystem{
		entityManager: em,
		state:         state,
		clock:         clock,
		rng:           rng,
		cfg:           cfg,
		logger:        logging.For("Evasion"),
	}
}

// Dodge 以最新指针位置尝试躲避
//
// force=false 为环境模式（指针移动时每次调用），force=true 为强制模式
// （指针进入、按下、触摸"否"按钮，或键盘激活）。
// 返回 true 表示按钮移动了。
func (s *EvasionSystem) Dodge(force bool) bool {
	if s.state.Accepted {
		return false
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.state.DeclineID)
	if !ok {
		return false
	}

	now := s.clock.Now()
	decline := ControlBounds(s.entityManager, s.state.DeclineID)
	pointer := s.state.ToLocal(s.state.Pointer)
	dn := utils.RectCenter(decline).DistanceFrom(pointer)

	if !ShouldDodge(dn, s.state.Motion, now, force, s.cfg) {
		return false
	}

	affirm := ControlBounds(s.entityManager, s.state.AffirmID)
	req := EscapeRequest{
		Container:    s.containerSize(),
		Decline:      decline,
		Pointer:      pointer,
		AffirmCenter: utils.RectCenter(affirm),
		AffirmWidth:  affirm.Width(),
		Force:        force,
	}
	plan := PlanEscape(req, s.cfg, s.rng)

	pos.X = plan.Position.X
	pos.Y = plan.Position.Y
	s.state.Motion.MarkMoved(now)

	s.logger.Debug("decline moved",
		"force", force,
		"distance", math.Round(dn),
		"left", math.Round(plan.Position.X),
		"top", math.Round(plan.Position.Y),
		"searched", plan.Searched)
	if plan.UsedFallback {
		s.logger.Debug("escape search exhausted, using fallback offset")
	}
	return true
}

// PlaceInitial 把"否"按钮放到初始位置：靠右、垂直居中
//
//	left = max(pad, W - w - pad)
//	top  = max(pad, (H - h) / 2)
//
// 与之前的状态无关，也不受接受状态影响（窗口尺寸变化时同样调用）。
func (s *EvasionSystem) PlaceInitial() {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.state.DeclineID)
	if !ok {
		return
	}
	ctrl, ok := ecs.GetComponent[*components.ControlComponent](s.entityManager, s.state.DeclineID)
	if !ok {
		return
	}

	size := s.containerSize()
	pad := s.cfg.Padding
	pos.X = math.Max(pad, size.X-ctrl.Width-pad)
	pos.Y = math.Max(pad, (size.Y-ctrl.Height)/2)
}

func (s *EvasionSystem) containerSize() geom.Coord {
	return s.state.Container.Max.Minus(s.state.Container.Min)
}
