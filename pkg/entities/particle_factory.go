package entities

import (
	"fmt"
	"time"

	"github.com/gonewx/yesno/pkg/components"
	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/utils"
	"github.com/lucasb-eyer/go-colorful"
)

// HeartGlyphs 爱心粒子的字形，与 HeartsConfig.Palette 一一对应
var HeartGlyphs = []rune{'💖', '💗', '💘', '💝', '💕'}

// ParticleFactory 庆祝粒子发射器
//
// 发射即遗忘：每个粒子生成时在调度器上登记一次性移除任务，
// 发射器本身不跟踪已生成的粒子。
type ParticleFactory struct {
	em    *ecs.EntityManager
	sched *game.Scheduler
	rng   utils.RandomSource

	confetti       config.ConfettiConfig
	confettiColors []colorful.Color
	hearts         config.HeartsConfig
	heartColors    []colorful.Color
}

// NewParticleFactory 创建粒子发射器
// 调色板在这里一次性解析，格式错误时返回错误
func NewParticleFactory(em *ecs.EntityManager, sched *game.Scheduler, rng utils.RandomSource, cfg *config.WidgetConfig) (*ParticleFactory, error) {
	confettiColors, err := cfg.Confetti.Colors()
	if err != nil {
		return nil, fmt.Errorf("confetti palette: %w", err)
	}
	heartColors, err := cfg.Hearts.Colors()
	if err != nil {
		return nil, fmt.Errorf("hearts palette: %w", err)
	}

	return &ParticleFactory{
		em:             em,
		sched:          sched,
		rng:            rng,
		confetti:       cfg.Confetti,
		confettiColors: confettiColors,
		hearts:         cfg.Hearts,
		heartColors:    heartColors,
	}, nil
}

// SpawnConfetti 在视口上方生成一批彩纸
//
// 参数：
//   - originX: 水平中心（视口坐标），彩纸在 originX ± SpreadX/2 内散布
//
// 返回生成的粒子实体（测试使用）。
func (f *ParticleFactory) SpawnConfetti(originX float64) []ecs.EntityID {
	cfg := f.confetti
	ids := make([]ecs.EntityID, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		color := f.confettiColors[f.pick(len(f.confettiColors))]
		x := originX + utils.RandomSpread(f.rng, cfg.SpreadX)
		y := utils.RandomRange(f.rng, cfg.StartYMin, cfg.StartYRange)
		w := utils.RandomRange(f.rng, cfg.MinWidth, cfg.WidthRange)
		h := utils.RandomRange(f.rng, cfg.MinHeight, cfg.HeightRange)
		rotation := f.rng.Float64() * 360
		duration := randomDuration(f.rng, cfg.MinDurationMs, cfg.DurationJitterMs)

		ids = append(ids, f.spawn(x, y, &components.ParticleComponent{
			Kind:         components.ParticleConfetti,
			Color:        color,
			Width:        w,
			Height:       h,
			Rotation:     rotation,
			AnimDuration: duration,
		}, cfg.Lifetime()))
	}
	return ids
}

// SpawnHearts 在 (x, y) 附近生成一簇爱心（视口坐标）
func (f *ParticleFactory) SpawnHearts(x, y float64) []ecs.EntityID {
	cfg := f.hearts
	ids := make([]ecs.EntityID, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		glyph := f.pick(len(HeartGlyphs))
		px := x + utils.RandomSpread(f.rng, cfg.SpreadX)
		py := y + utils.RandomSpread(f.rng, cfg.SpreadY)
		size := utils.RandomRange(f.rng, cfg.MinSize, cfg.SizeRange)
		duration := randomDuration(f.rng, cfg.MinDurationMs, cfg.DurationJitterMs)
		rotation := utils.RandomSpread(f.rng, cfg.RotationRange)

		ids = append(ids, f.spawn(px, py, &components.ParticleComponent{
			Kind:         components.ParticleHeart,
			Color:        f.heartColors[glyph%len(f.heartColors)],
			Size:         size,
			Glyph:        HeartGlyphs[glyph],
			Rotation:     rotation,
			AnimDuration: duration,
		}, cfg.Lifetime()))
	}
	return ids
}

// spawn 创建粒子实体并登记移除任务
func (f *ParticleFactory) spawn(x, y float64, particle *components.ParticleComponent, lifetime time.Duration) ecs.EntityID {
	id := f.em.CreateEntity()
	f.em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	f.em.AddComponent(id, particle)
	f.em.AddComponent(id, &components.LifetimeComponent{
		SpawnedAt:   f.sched.Now(),
		MaxLifetime: lifetime,
	})

	em := f.em
	f.sched.After(lifetime, func() {
		em.DestroyEntity(id)
	})
	return id
}

// pick 返回 [0, n) 内的随机下标
func (f *ParticleFactory) pick(n int) int {
	i := int(f.rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func randomDuration(rng utils.RandomSource, minMs, jitterMs int) time.Duration {
	ms := utils.RandomRange(rng, float64(minMs), float64(jitterMs))
	return time.Duration(ms * float64(time.Millisecond))
}
