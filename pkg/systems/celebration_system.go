package systems

import (
	"github.com/charmbracelet/log"
	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/logging"
	"github.com/gonewx/yesno/pkg/utils"
)

// CelebrationEmitter 庆祝粒子发射器（*entities.ParticleFactory 满足该接口）
type CelebrationEmitter interface {
	SpawnHearts(x, y float64) []ecs.EntityID
	SpawnConfetti(originX float64) []ecs.EntityID
}

// CelebrationSystem "是"按钮激活后的庆祝序列
//
// 状态机只有两个状态：交互中 → 已接受（终态）。
// 进入已接受时依次执行：
//  1. 设置接受标记、清除悬停、缩放恢复为 1
//  2. 根视图进入庆祝模式，"是"按钮弹跳强调（PopDuration 后结束）
//  3. 在"是"按钮中心生成爱心
//  4. RevealDelay 后显示结果视图并在视口水平中点生成彩纸
type CelebrationSystem struct {
	entityManager *ecs.EntityManager
	state         *game.WidgetState
	sched         *game.Scheduler
	emitter       CelebrationEmitter
	attraction    *AttractionSystem
	cfg           config.CelebrationConfig
	logger        *log.Logger
}

// NewCelebrationSystem 创建庆祝系统
func NewCelebrationSystem(
	em *ecs.EntityManager,
	state *game.WidgetState,
	sched *game.Scheduler,
	emitter CelebrationEmitter,
	attraction *AttractionSystem,
	cfg config.CelebrationConfig,
) *CelebrationSystem {
	return &CelebrationSystem{
		entityManager: em,
		state:         state,
		sched:         sched,
		emitter:       emitter,
		attraction:    attraction,
		cfg:           cfg,
		logger:        logging.For("Celebration"),
	}
}

// Activate 激活"是"按钮
// 返回 false 表示已经接受过，本次调用没有任何效果
func (s *CelebrationSystem) Activate() bool {
	if !s.state.Accept() {
		return false
	}
	s.attraction.Reset()

	s.state.Celebrating = true
	s.state.Pop = true
	s.state.PopStartedAt = s.sched.Now()
	s.sched.After(s.cfg.PopDuration(), func() {
		s.state.Pop = false
	})

	// 缩放已恢复为 1，中心即布局中心
	center := utils.RectCenter(ControlViewportBounds(s.entityManager, s.state, s.state.AffirmID))
	s.emitter.SpawnHearts(center.X, center.Y)

	s.sched.After(s.cfg.RevealDelay(), func() {
		s.state.ResultVisible = true
		s.emitter.SpawnConfetti(s.state.Viewport.X / 2)
		s.logger.Debug("result revealed")
	})

	s.logger.Info("accepted", "at", s.sched.Now())
	return true
}
