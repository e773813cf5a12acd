package systems

import (
	"math"
	"time"

	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/utils"
	"github.com/jbeda/geom"
)

// EscapeRequest 一次躲避规划的输入（全部为容器坐标）
type EscapeRequest struct {
	// Container 容器尺寸（X=宽, Y=高）
	Container geom.Coord
	// Decline "否"按钮当前包围盒
	Decline geom.Rect
	// Pointer 指针位置
	Pointer geom.Coord
	// AffirmCenter "是"按钮中心
	AffirmCenter geom.Coord
	// AffirmWidth "是"按钮当前包围盒宽度（已包含缩放）
	AffirmWidth float64
	// Force 强制模式（直接与"否"按钮交互）
	Force bool
}

// EscapePlan 规划结果
type EscapePlan struct {
	// Position 新的左上角
	Position geom.Coord
	// Searched 是否进行过随机搜索
	Searched bool
	// UsedFallback 搜索耗尽，使用了确定性偏移（此时可能与"是"按钮重叠）
	UsedFallback bool
}

// escapeArea 候选位置的合法范围
type escapeArea struct {
	size    geom.Coord // "否"按钮尺寸
	pad     float64
	maxLeft float64
	maxTop  float64
}

func newEscapeArea(req EscapeRequest, pad float64) escapeArea {
	size := req.Decline.Max.Minus(req.Decline.Min)
	return escapeArea{
		size:    size,
		pad:     pad,
		maxLeft: math.Max(pad, req.Container.X-size.X-pad),
		maxTop:  math.Max(pad, req.Container.Y-size.Y-pad),
	}
}

func (a escapeArea) clamp(p geom.Coord) geom.Coord {
	return geom.Coord{
		X: utils.Clamp(p.X, a.pad, a.maxLeft),
		Y: utils.Clamp(p.Y, a.pad, a.maxTop),
	}
}

// center 左上角为 p 时的按钮中心
func (a escapeArea) center(p geom.Coord) geom.Coord {
	return p.Plus(a.size.Times(0.5))
}

// ShouldDodge 躲避门控
//
// 环境模式：指针距离 dn 小于阈值且超过环境冷却时间；
// 强制模式：只要求超过强制冷却时间。
func ShouldDodge(dn float64, motion game.MotionState, now time.Duration, force bool, cfg config.EvasionConfig) bool {
	if force {
		return motion.CooledDown(now, cfg.ForcedCooldown())
	}
	if dn >= cfg.Threshold {
		return false
	}
	return motion.CooledDown(now, cfg.AmbientCooldown())
}

// PlanEscape 计算"否"按钮的新位置
//
// 纯函数：不读写任何全局状态，随机性全部来自 rng。
// 随机数的消耗顺序固定（方向角、跳跃附加量、水平抖动、垂直抖动、搜索采样），
// 因此同一个种子总是得到同一个结果。
func PlanEscape(req EscapeRequest, cfg config.EvasionConfig, rng utils.RandomSource) EscapePlan {
	area := newEscapeArea(req, cfg.Padding)
	current := req.Decline.Min

	delta := area.center(current).Minus(req.Pointer)
	dn := delta.DistanceFrom(geom.Coord{})

	var dir geom.Coord
	if dn == 0 {
		a := rng.Float64() * 2 * math.Pi
		dir = geom.Coord{X: math.Cos(a), Y: math.Sin(a)}
	} else {
		dir = delta.Times(1 / dn)
	}

	// 指针越近，跳得越远
	moveDist := (cfg.Threshold-math.Min(dn, cfg.Threshold))*cfg.LeapFactor +
		cfg.LeapBase + rng.Float64()*cfg.LeapJitter

	candidate := current.Plus(dir.Times(moveDist))
	candidate.X += utils.RandomSpread(rng, cfg.JitterX)
	candidate.Y += utils.RandomSpread(rng, cfg.JitterY)
	candidate = area.clamp(candidate)

	plan := EscapePlan{Position: candidate}

	if tooCloseToAffirm(area.center(candidate), req, cfg) {
		best, found := searchEscape(req, area, cfg, rng)
		plan.Searched = true
		plan.UsedFallback = !found
		plan.Position = best
	}

	if req.Force {
		best, found := searchEscape(req, area, cfg, rng)
		plan.Searched = true
		// 搜索耗尽时的兜底位置不参与比较（有意不同于原页面：兜底可能与"是"按钮重叠）
		if found {
			currentDist := area.center(plan.Position).DistanceFrom(req.Pointer)
			bestDist := area.center(best).DistanceFrom(req.Pointer)
			if bestDist > currentDist {
				plan.Position = best
				plan.UsedFallback = false
			}
		}
	}

	return plan
}

// tooCloseToAffirm 候选中心与"是"按钮中心的距离是否小于最小间距
// 最小间距取"是"按钮当前宽度与下限中的较大者（只看宽度，与原版一致）
func tooCloseToAffirm(center geom.Coord, req EscapeRequest, cfg config.EvasionConfig) bool {
	clearance := math.Max(req.AffirmWidth, cfg.MinAffirmClearance)
	return center.DistanceFrom(req.AffirmCenter) < clearance
}

// searchEscape 在合法范围内随机采样，返回离指针最远且不与"是"按钮重叠的位置
// found=false 表示所有采样都被拒绝，返回确定性的兜底偏移
func searchEscape(req EscapeRequest, area escapeArea, cfg config.EvasionConfig, rng utils.RandomSource) (geom.Coord, bool) {
	fallback := area.clamp(req.Decline.Min.Plus(geom.Coord{X: cfg.FallbackOffsetX, Y: cfg.FallbackOffsetY}))

	best := fallback
	bestScore := math.Inf(-1)
	found := false

	for i := 0; i < cfg.SearchAttempts; i++ {
		trial := area.clamp(geom.Coord{
			X: area.pad + rng.Float64()*math.Max(0, area.maxLeft-area.pad),
			Y: area.pad + rng.Float64()*math.Max(0, area.maxTop-area.pad),
		})
		if tooCloseToAffirm(area.center(trial), req, cfg) {
			continue
		}
		score := area.center(trial).DistanceFrom(req.Pointer)
		if score > bestScore {
			bestScore = score
			best = trial
			found = true
		}
	}

	return best, found
}
