package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/yesno/pkg/components"
	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jbeda/geom"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"
)

const (
	// 卡片相对按钮区域的外扩（上方留出问题文字的位置）
	cardPadding    = 24.0
	cardHeaderRoom = 110.0

	// 文字缩放（basicfont 只有 7x13 一种字号）
	headlineScale      = 2.0
	headlineLineHeight = 16.0
	labelScale         = 1.5

	// 粒子动画幅度
	confettiSpin   = 720.0 // 下落过程中的额外旋转（度）
	heartRise      = 80.0  // 上浮距离
	heartGrow      = 0.4   // 放大量
	popAmplitude   = 0.15  // 弹跳强调的额外缩放
	popPeak        = 0.4   // 弹跳到达峰值的进度
	heartSpriteDim = 32
)

// 配色
var (
	colorBackground  = mustHex("#fff0f5")
	colorCelebrate   = mustHex("#ffd6e7")
	colorCard        = mustHex("#ffffff")
	colorCardAccept  = mustHex("#fff5fa")
	colorAffirm      = mustHex("#ff3b7a")
	colorDecline     = mustHex("#c9c9d6")
	colorText        = mustHex("#3a2a3a")
	colorButtonLabel = mustHex("#ffffff")
	colorFocusRing   = mustHex("#6e77ff")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Pose 粒子在某一帧的绘制姿态（视口坐标）
type Pose struct {
	X, Y     float64 // 中心
	Rotation float64 // 弧度
	Scale    float64
	Alpha    float64
}

// ConfettiPose 计算彩纸姿态：加速下落一个视口高度，旋转并淡出
func ConfettiPose(p *components.ParticleComponent, pos *components.PositionComponent, viewportHeight float64) Pose {
	t := p.Progress
	return Pose{
		X:        pos.X + p.Width/2,
		Y:        pos.Y + p.Height/2 + utils.EaseInQuad(t)*viewportHeight,
		Rotation: (p.Rotation + confettiSpin*t) * math.Pi / 180,
		Scale:    1,
		Alpha:    1 - t,
	}
}

// HeartPose 计算爱心姿态：减速上浮、放大、摆动并淡出
func HeartPose(p *components.ParticleComponent, pos *components.PositionComponent) Pose {
	t := p.Progress
	e := utils.EaseOutCubic(t)
	return Pose{
		X:        pos.X,
		Y:        pos.Y - heartRise*e,
		Rotation: p.Rotation * e * math.Pi / 180,
		Scale:    1 + heartGrow*e,
		Alpha:    1 - e,
	}
}

// PopScale "是"按钮被点击后的弹跳缩放
// 前段回弹放大到峰值（会略微越过），后段缓入回落到 1
func PopScale(t float64) float64 {
	var bump float64
	if t < popPeak {
		bump = utils.EaseOutBack(t / popPeak)
	} else {
		bump = 1 - utils.EaseInQuad((t-popPeak)/(1-popPeak))
	}
	return utils.Lerp(1, 1+popAmplitude, bump)
}

// CardRect 返回包住按钮区域和问题文字的卡片矩形
func CardRect(container geom.Rect) geom.Rect {
	return geom.Rect{
		Min: container.Min.Minus(geom.Coord{X: cardPadding, Y: cardHeaderRoom}),
		Max: container.Max.Plus(geom.Coord{X: cardPadding, Y: cardPadding}),
	}
}

// RenderSystem 绘制整个挂件
//
// 只读取状态，不做任何修改。控件使用 SpringComponent 中的显示值。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	state         *game.WidgetState
	clock         Clock
	cfg           config.CelebrationConfig

	question string
	result   string
	face     text.Face

	// 延迟创建，避免在没有图形上下文时分配纹理
	pixel *ebiten.Image
	heart *ebiten.Image
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, state *game.WidgetState, clock Clock, cfg config.CelebrationConfig, question, result string) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		state:         state,
		clock:         clock,
		cfg:           cfg,
		question:      question,
		result:        result,
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.ensureSprites()

	screen.Fill(s.backgroundColor())
	s.drawCard(screen)

	if s.state.ResultVisible {
		s.drawHeadline(screen, s.result)
	} else {
		s.drawHeadline(screen, s.question)
	}

	if !s.state.Accepted {
		s.drawControl(screen, s.state.DeclineID, colorDecline, s.state.Focus == game.FocusDecline)
	}
	s.drawControl(screen, s.state.AffirmID, colorAffirm, s.state.Focus == game.FocusAffirm)

	s.drawParticles(screen)
}

func (s *RenderSystem) ensureSprites() {
	if s.pixel != nil {
		return
	}
	s.pixel = ebiten.NewImage(1, 1)
	s.pixel.Fill(color.White)

	// 爱心：两个圆 + 下方三角形（逐行填充）
	const d = heartSpriteDim
	s.heart = ebiten.NewImage(d, d)
	r := float32(d) / 4
	vector.DrawFilledCircle(s.heart, r+1, r+3, r, color.White, true)
	vector.DrawFilledCircle(s.heart, 3*r-1, r+3, r, color.White, true)
	top, bottom := r+3, float32(d-2)
	for y := top; y < bottom; y++ {
		half := (float32(d)/2 - 1) * (bottom - y) / (bottom - top)
		vector.DrawFilledRect(s.heart, float32(d)/2-half, y, 2*half, 1, color.White, false)
	}
}

// backgroundColor 庆祝开始后在弹跳强调期间过渡到庆祝底色
func (s *RenderSystem) backgroundColor() colorful.Color {
	if !s.state.Celebrating {
		return colorBackground
	}
	t := utils.Progress((s.clock.Now() - s.state.PopStartedAt).Seconds(), s.cfg.PopDuration().Seconds())
	return colorBackground.BlendRgb(colorCelebrate, t)
}

func (s *RenderSystem) drawCard(screen *ebiten.Image) {
	card := CardRect(s.state.Container)
	fill := colorCard
	if s.state.Celebrating {
		fill = colorCardAccept
	}
	vector.DrawFilledRect(screen,
		float32(card.Min.X), float32(card.Min.Y),
		float32(card.Width()), float32(card.Height()),
		fill, true)
}

// drawHeadline 在卡片顶部居中绘制文字，窄视口下自动换行
func (s *RenderSystem) drawHeadline(screen *ebiten.Image, str string) {
	card := CardRect(s.state.Container)
	cx := (card.Min.X + card.Max.X) / 2
	cy := card.Min.Y + cardHeaderRoom/2

	lines := utils.WrapText(str, s.face, (card.Width()-2*cardPadding)/headlineScale)
	first := cy - float64(len(lines)-1)*headlineLineHeight*headlineScale/2
	for i, line := range lines {
		s.drawText(screen, line, cx, first+float64(i)*headlineLineHeight*headlineScale, headlineScale, colorText)
	}
}

// drawText 以 (cx, cy) 为中心绘制文字
func (s *RenderSystem) drawText(screen *ebiten.Image, str string, cx, cy, scale float64, clr color.Color) {
	w, h := text.Measure(str, s.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}

func (s *RenderSystem) drawControl(screen *ebiten.Image, id ecs.EntityID, fill colorful.Color, focused bool) {
	ctrl, ok := ecs.GetComponent[*components.ControlComponent](s.entityManager, id)
	if !ok {
		return
	}
	spring, ok := ecs.GetComponent[*components.SpringComponent](s.entityManager, id)
	if !ok || !spring.Initialized {
		return
	}

	scale := spring.Scale
	if ctrl.Kind == components.ControlAffirm && s.state.Pop {
		t := utils.Progress((s.clock.Now() - s.state.PopStartedAt).Seconds(), s.cfg.PopDuration().Seconds())
		scale *= PopScale(t)
	}

	local := utils.ScaleRect(utils.NewRect(spring.X, spring.Y, ctrl.Width, ctrl.Height), scale)
	r := utils.TranslateRect(local, s.state.Container.Min)
	vector.DrawFilledRect(screen,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Width()), float32(r.Height()),
		fill, true)
	if focused {
		vector.StrokeRect(screen,
			float32(r.Min.X-3), float32(r.Min.Y-3),
			float32(r.Width()+6), float32(r.Height()+6),
			2, colorFocusRing, true)
	}

	c := utils.RectCenter(r)
	s.drawText(screen, ctrl.Label, c.X, c.Y, labelScale*scale, colorButtonLabel)
}

func (s *RenderSystem) drawParticles(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		op := &ebiten.DrawImageOptions{}
		var pose Pose
		var img *ebiten.Image

		switch p.Kind {
		case components.ParticleConfetti:
			pose = ConfettiPose(p, pos, s.state.Viewport.Y)
			img = s.pixel
			op.GeoM.Translate(-0.5, -0.5)
			op.GeoM.Scale(p.Width, p.Height)
		case components.ParticleHeart:
			pose = HeartPose(p, pos)
			img = s.heart
			k := p.Size / heartSpriteDim
			op.GeoM.Translate(-heartSpriteDim/2, -heartSpriteDim/2)
			op.GeoM.Scale(k, k)
		default:
			continue
		}

		op.GeoM.Scale(pose.Scale, pose.Scale)
		op.GeoM.Rotate(pose.Rotation)
		op.GeoM.Translate(pose.X, pose.Y)
		op.ColorScale.ScaleWithColor(p.Color)
		op.ColorScale.ScaleAlpha(float32(pose.Alpha))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}
