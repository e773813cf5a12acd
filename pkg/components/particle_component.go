package components

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// ParticleKind 粒子类型
type ParticleKind int

const (
	// ParticleConfetti 彩纸：矩形，从视口上方旋转下落并淡出
	ParticleConfetti ParticleKind = iota
	// ParticleHeart 爱心：从生成点上浮、放大并淡出
	ParticleHeart
)

// ParticleComponent 单个庆祝粒子（纯数据组件）
//
// 粒子没有身份，只在生命周期内存在；发射器生成后不再跟踪。
type ParticleComponent struct {
	Kind  ParticleKind
	Color colorful.Color

	// 彩纸尺寸（像素）
	Width  float64
	Height float64

	// 爱心字号（像素）与字形
	Size  float64
	Glyph rune

	// Rotation 彩纸为初始旋转角，爱心为动画中的摆动角（度）
	Rotation float64

	// AnimDuration 动画时长，短于 LifetimeComponent.MaxLifetime
	AnimDuration time.Duration

	// Progress 动画进度 [0, 1]，由 ParticleSystem 每帧更新
	Progress float64
}
