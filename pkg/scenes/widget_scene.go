package scenes

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gonewx/yesno/pkg/components"
	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/gonewx/yesno/pkg/entities"
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/logging"
	"github.com/gonewx/yesno/pkg/systems"
	"github.com/gonewx/yesno/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// TicksPerSecond 更新频率（与 Ebitengine 默认 TPS 一致）
	TicksPerSecond = 60

	// QuestionText 卡片上的问题
	QuestionText = "Will you be my valentine?"
	// ResultText 接受后显示的结果
	ResultText = "Yay! I knew you'd say yes!"

	AffirmLabel  = "Yes"
	DeclineLabel = "No"
)

// WidgetScene 是挂件唯一的场景
//
// 它持有所有状态（实体、WidgetState、调度器），实现 systems.WidgetEvents，
// 把输入事件分发给吸引、躲避和庆祝系统。每个事件处理函数首先检查接受标记。
type WidgetScene struct {
	entityManager *ecs.EntityManager
	state         *game.WidgetState
	sched         *game.Scheduler
	cfg           *config.WidgetConfig

	attraction  *systems.AttractionSystem
	evasion     *systems.EvasionSystem
	celebration *systems.CelebrationSystem
	particles   *systems.ParticleSystem
	motion      *systems.MotionSystem
	input       *systems.InputSystem
	render      *systems.RenderSystem

	logger *log.Logger
}

// NewWidgetScene 创建挂件场景并完成初始布局
//
// 参数：
//   - cfg: 调参配置
//   - width, height: 初始视口尺寸
//   - rng: 随机数来源（躲避搜索和粒子参数）
func NewWidgetScene(cfg *config.WidgetConfig, width, height float64, rng utils.RandomSource) (*WidgetScene, error) {
	em := ecs.NewEntityManager()
	state := game.NewWidgetState(width, height)
	sched := game.NewScheduler()

	factory, err := entities.NewParticleFactory(em, sched, rng, cfg)
	if err != nil {
		return nil, fmt.Errorf("create particle factory: %w", err)
	}

	state.AffirmID = entities.NewAffirmControl(em, cfg.Layout, AffirmLabel)
	state.DeclineID = entities.NewDeclineControl(em, cfg.Layout, DeclineLabel)

	attraction := systems.NewAttractionSystem(em, state, cfg.Attraction)
	s := &WidgetScene{
		entityManager: em,
		state:         state,
		sched:         sched,
		cfg:           cfg,
		attraction:    attraction,
		evasion:       systems.NewEvasionSystem(em, state, sched, rng, cfg.Evasion),
		celebration:   systems.NewCelebrationSystem(em, state, sched, factory, attraction, cfg.Celebration),
		particles:     systems.NewParticleSystem(em, sched),
		motion:        systems.NewMotionSystem(em, TicksPerSecond),
		render:        systems.NewRenderSystem(em, state, sched, cfg.Celebration, QuestionText, ResultText),
		logger:        logging.For("WidgetScene"),
	}
	s.input = systems.NewInputSystem(em, state, s)

	s.Load()
	return s, nil
}

// Load 计算布局并把"否"按钮放到初始位置
func (s *WidgetScene) Load() {
	s.layout()
	s.evasion.PlaceInitial()
	s.logger.Debug("loaded",
		"viewport", fmt.Sprintf("%.0fx%.0f", s.state.Viewport.X, s.state.Viewport.Y),
		"container", fmt.Sprintf("%.0fx%.0f", s.state.Container.Width(), s.state.Container.Height()))
}

// Resize 视口尺寸变化：重新布局，"否"按钮回到初始位置
// 接受之后同样执行（只影响布局，不影响庆祝状态）
func (s *WidgetScene) Resize(width, height float64) {
	s.state.Viewport.X = width
	s.state.Viewport.Y = height
	s.Load()
}

// layout 计算按钮区域（视口坐标）和"是"按钮位置（容器坐标）
//
// 按钮区域水平居中，宽度不超过 ContainerMaxWidth 且两侧至少留出 ContainerMargin；
// 垂直方向中心位于视口中心下方 ContainerOffsetY 处。
func (s *WidgetScene) layout() {
	l := s.cfg.Layout
	vw, vh := s.state.Viewport.X, s.state.Viewport.Y

	cw := math.Max(0, math.Min(vw-2*l.ContainerMargin, l.ContainerMaxWidth))
	ch := l.ContainerHeight
	left := (vw - cw) / 2
	top := vh/2 + l.ContainerOffsetY - ch/2
	s.state.Container = utils.NewRect(left, top, cw, ch)

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.state.AffirmID); ok {
		pos.X = cw*l.AffirmAnchorX - l.AffirmWidth/2
		pos.Y = (ch - l.AffirmHeight) / 2
	}
}

// HandleInput 处理一帧输入
func (s *WidgetScene) HandleInput(frame utils.PointerFrame) {
	s.input.Process(frame)
}

// Update 推进虚拟时钟并更新粒子和显示平滑
func (s *WidgetScene) Update(deltaTime float64) {
	s.sched.Advance(time.Duration(deltaTime * float64(time.Second)))
	s.particles.Update()
	s.motion.Update()
}

// Draw 绘制场景
func (s *WidgetScene) Draw(screen *ebiten.Image) {
	s.render.Draw(screen)
}

// State 返回挂件状态（只读使用）
func (s *WidgetScene) State() *game.WidgetState {
	return s.state
}

// Scheduler 返回虚拟时钟
func (s *WidgetScene) Scheduler() *game.Scheduler {
	return s.sched
}

// EntityManager 返回实体管理器
func (s *WidgetScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// ParticleCount 返回存活的粒子数量
func (s *WidgetScene) ParticleCount() int {
	return s.particles.Count()
}

// PointerMove 全局指针移动：记录位置，更新"是"按钮缩放，环境模式躲避
func (s *WidgetScene) PointerMove(x, y float64) {
	if s.state.Accepted {
		return
	}
	s.state.SetPointer(x, y)
	s.attraction.Update()
	s.evasion.Dodge(false)
}

// DeclineEnter 指针进入"否"按钮
func (s *WidgetScene) DeclineEnter() {
	if s.state.Accepted {
		return
	}
	s.evasion.Dodge(true)
}

// DeclineMove 指针在"否"按钮上移动
func (s *WidgetScene) DeclineMove() {
	if s.state.Accepted {
		return
	}
	s.evasion.Dodge(true)
}

// DeclinePress 在"否"按钮上按下：以按下位置为准强制躲避
func (s *WidgetScene) DeclinePress(x, y float64) {
	if s.state.Accepted {
		return
	}
	s.state.SetPointer(x, y)
	s.evasion.Dodge(true)
}

// DeclineTouch 在"否"按钮上开始触摸
func (s *WidgetScene) DeclineTouch(x, y float64) {
	if s.state.Accepted {
		return
	}
	s.state.SetPointer(x, y)
	s.evasion.Dodge(true)
}

// DeclineKey 键盘激活"否"按钮：以最近的指针位置强制躲避
func (s *WidgetScene) DeclineKey() {
	if s.state.Accepted {
		return
	}
	s.evasion.Dodge(true)
}

// AffirmEnter 指针进入"是"按钮
func (s *WidgetScene) AffirmEnter() {
	s.attraction.Enter()
}

// AffirmLeave 指针离开"是"按钮
func (s *WidgetScene) AffirmLeave() {
	s.attraction.Leave()
}

// ContainerLeave 指针离开按钮区域
func (s *WidgetScene) ContainerLeave() {
	s.attraction.Leave()
}

// AffirmActivate 激活"是"按钮，开始庆祝
func (s *WidgetScene) AffirmActivate() {
	s.celebration.Activate()
}
