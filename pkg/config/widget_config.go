package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gonewx/yesno/pkg/embedded"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内置配置文件路径（嵌入在二进制中）
const DefaultConfigPath = "data/widget.yaml"

// WidgetConfig 挂件调参配置
// 所有数值的默认值与原版页面脚本保持一致，YAML 中缺省的字段保留默认值
type WidgetConfig struct {
	Attraction  AttractionConfig  `yaml:"attraction"`
	Evasion     EvasionConfig     `yaml:"evasion"`
	Celebration CelebrationConfig `yaml:"celebration"`
	Confetti    ConfettiConfig    `yaml:"confetti"`
	Hearts      HeartsConfig      `yaml:"hearts"`
	Layout      LayoutConfig      `yaml:"layout"`
}

// AttractionConfig "是"按钮靠近放大参数
type AttractionConfig struct {
	Threshold  float64 `yaml:"threshold"`  // 开始放大的距离
	MaxBoost   float64 `yaml:"maxBoost"`   // 指针位于中心时的额外缩放
	HoverFloor float64 `yaml:"hoverFloor"` // 悬停时的最小缩放
}

// EvasionConfig "否"按钮躲避参数
type EvasionConfig struct {
	Threshold          float64 `yaml:"threshold"`          // 环境模式触发距离
	AmbientCooldownMs  int     `yaml:"ambientCooldownMs"`  // 环境模式冷却
	ForcedCooldownMs   int     `yaml:"forcedCooldownMs"`   // 强制模式冷却
	LeapFactor         float64 `yaml:"leapFactor"`         // 距离越近跳得越远的系数
	LeapBase           float64 `yaml:"leapBase"`           // 最小跳跃距离
	LeapJitter         float64 `yaml:"leapJitter"`         // 跳跃距离随机附加量 [0, LeapJitter)
	JitterX            float64 `yaml:"jitterX"`            // 水平抖动总宽度（±JitterX/2）
	JitterY            float64 `yaml:"jitterY"`            // 垂直抖动总宽度（±JitterY/2）
	Padding            float64 `yaml:"padding"`            // 容器内边距
	MinAffirmClearance float64 `yaml:"minAffirmClearance"` // 与"是"按钮中心的最小距离下限
	SearchAttempts     int     `yaml:"searchAttempts"`     // 随机搜索次数上限
	FallbackOffsetX    float64 `yaml:"fallbackOffsetX"`    // 搜索失败时的确定性偏移
	FallbackOffsetY    float64 `yaml:"fallbackOffsetY"`
}

// CelebrationConfig 庆祝序列时间参数
type CelebrationConfig struct {
	RevealDelayMs int `yaml:"revealDelayMs"` // 显示结果页与彩纸的延迟
	PopDurationMs int `yaml:"popDurationMs"` // "是"按钮弹跳强调持续时间
}

// ConfettiConfig 彩纸发射器参数
type ConfettiConfig struct {
	Count            int      `yaml:"count"`
	LifetimeMs       int      `yaml:"lifetimeMs"`       // 生成后自动移除的时间
	MinDurationMs    int      `yaml:"minDurationMs"`    // 下落动画最短时长
	DurationJitterMs int      `yaml:"durationJitterMs"` // 下落动画随机附加时长
	SpreadX          float64  `yaml:"spreadX"`          // 水平散布总宽度
	StartYMin        float64  `yaml:"startYMin"`        // 起始高度（视口上方）
	StartYRange      float64  `yaml:"startYRange"`
	MinWidth         float64  `yaml:"minWidth"`
	WidthRange       float64  `yaml:"widthRange"`
	MinHeight        float64  `yaml:"minHeight"`
	HeightRange      float64  `yaml:"heightRange"`
	Palette          []string `yaml:"palette"` // 十六进制颜色
}

// HeartsConfig 爱心发射器参数
type HeartsConfig struct {
	Count            int      `yaml:"count"`
	LifetimeMs       int      `yaml:"lifetimeMs"`
	MinDurationMs    int      `yaml:"minDurationMs"`
	DurationJitterMs int      `yaml:"durationJitterMs"`
	SpreadX          float64  `yaml:"spreadX"`
	SpreadY          float64  `yaml:"spreadY"`
	MinSize          float64  `yaml:"minSize"`
	SizeRange        float64  `yaml:"sizeRange"`
	RotationRange    float64  `yaml:"rotationRange"` // 旋转参数总宽度（度）
	Palette          []string `yaml:"palette"`       // 每种爱心字形对应的颜色
}

// LayoutConfig 卡片与控件尺寸
type LayoutConfig struct {
	ContainerMaxWidth float64 `yaml:"containerMaxWidth"`
	ContainerHeight   float64 `yaml:"containerHeight"`
	ContainerMargin   float64 `yaml:"containerMargin"`  // 容器与视口左右边缘的最小距离
	ContainerOffsetY  float64 `yaml:"containerOffsetY"` // 容器中心相对视口中心的下移量
	AffirmWidth       float64 `yaml:"affirmWidth"`
	AffirmHeight      float64 `yaml:"affirmHeight"`
	AffirmAnchorX     float64 `yaml:"affirmAnchorX"` // "是"按钮中心在容器宽度上的比例
	DeclineWidth      float64 `yaml:"declineWidth"`
	DeclineHeight     float64 `yaml:"declineHeight"`
}

// DefaultWidgetConfig 返回默认配置
func DefaultWidgetConfig() *WidgetConfig {
	return &WidgetConfig{
		Attraction: AttractionConfig{
			Threshold:  180,
			MaxBoost:   0.55,
			HoverFloor: 1.25,
		},
		Evasion: EvasionConfig{
			Threshold:          210,
			AmbientCooldownMs:  75,
			ForcedCooldownMs:   25,
			LeapFactor:         2.05,
			LeapBase:           115,
			LeapJitter:         45,
			JitterX:            60,
			JitterY:            40,
			Padding:            12,
			MinAffirmClearance: 90,
			SearchAttempts:     18,
			FallbackOffsetX:    120,
			FallbackOffsetY:    -24,
		},
		Celebration: CelebrationConfig{
			RevealDelayMs: 300,
			PopDurationMs: 600,
		},
		Confetti: ConfettiConfig{
			Count:            32,
			LifetimeMs:       2500,
			MinDurationMs:    1200,
			DurationJitterMs: 1000,
			SpreadX:          300,
			StartYMin:        -50,
			StartYRange:      30,
			MinWidth:         6,
			WidthRange:       8,
			MinHeight:        10,
			HeightRange:      16,
			Palette:          []string{"#ff3b7a", "#ffcc00", "#45d6a4", "#6e77ff", "#ff7aa2"},
		},
		Hearts: HeartsConfig{
			Count:            10,
			LifetimeMs:       1600,
			MinDurationMs:    700,
			DurationJitterMs: 550,
			SpreadX:          40,
			SpreadY:          20,
			MinSize:          16,
			SizeRange:        14,
			RotationRange:    50,
			Palette:          []string{"#ff4f9a", "#ff6fb1", "#e8336d", "#ff8fab", "#f7257a"},
		},
		Layout: LayoutConfig{
			ContainerMaxWidth: 520,
			ContainerHeight:   200,
			ContainerMargin:   24,
			ContainerOffsetY:  40,
			AffirmWidth:       120,
			AffirmHeight:      52,
			AffirmAnchorX:     0.3,
			DeclineWidth:      110,
			DeclineHeight:     48,
		},
	}
}

// AmbientCooldown 环境模式冷却时间
func (c EvasionConfig) AmbientCooldown() time.Duration {
	return time.Duration(c.AmbientCooldownMs) * time.Millisecond
}

// ForcedCooldown 强制模式冷却时间
func (c EvasionConfig) ForcedCooldown() time.Duration {
	return time.Duration(c.ForcedCooldownMs) * time.Millisecond
}

// RevealDelay 结果页显示延迟
func (c CelebrationConfig) RevealDelay() time.Duration {
	return time.Duration(c.RevealDelayMs) * time.Millisecond
}

// PopDuration 弹跳强调持续时间
func (c CelebrationConfig) PopDuration() time.Duration {
	return time.Duration(c.PopDurationMs) * time.Millisecond
}

// Lifetime 彩纸存活时间
func (c ConfettiConfig) Lifetime() time.Duration {
	return time.Duration(c.LifetimeMs) * time.Millisecond
}

// Colors 解析调色板
func (c ConfettiConfig) Colors() ([]colorful.Color, error) {
	return parsePalette(c.Palette)
}

// Lifetime 爱心存活时间
func (c HeartsConfig) Lifetime() time.Duration {
	return time.Duration(c.LifetimeMs) * time.Millisecond
}

// Colors 解析调色板
func (c HeartsConfig) Colors() ([]colorful.Color, error) {
	return parsePalette(c.Palette)
}

// ParseWidgetConfig 解析 YAML 数据，缺省字段使用默认值
func ParseWidgetConfig(data []byte) (*WidgetConfig, error) {
	cfg := DefaultWidgetConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse widget config YAML: %w", err)
	}

	if err := validateWidgetConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid widget config: %w", err)
	}

	return cfg, nil
}

// LoadWidgetConfig 加载配置文件
// 路径存在于嵌入资源中时优先读取嵌入版本，否则从磁盘读取
func LoadWidgetConfig(path string) (*WidgetConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read widget config %s: %w", path, err)
	}

	return ParseWidgetConfig(data)
}

// validateWidgetConfig 验证配置的有效性
func validateWidgetConfig(cfg *WidgetConfig) error {
	a := cfg.Attraction
	if a.Threshold <= 0 {
		return fmt.Errorf("attraction.threshold must be > 0, got %v", a.Threshold)
	}
	if a.MaxBoost < 0 {
		return fmt.Errorf("attraction.maxBoost must be >= 0, got %v", a.MaxBoost)
	}
	if a.HoverFloor < 1 {
		return fmt.Errorf("attraction.hoverFloor must be >= 1, got %v", a.HoverFloor)
	}

	e := cfg.Evasion
	if e.Threshold <= 0 {
		return fmt.Errorf("evasion.threshold must be > 0, got %v", e.Threshold)
	}
	if e.AmbientCooldownMs < 0 || e.ForcedCooldownMs < 0 {
		return fmt.Errorf("evasion cooldowns must be >= 0, got ambient=%d forced=%d",
			e.AmbientCooldownMs, e.ForcedCooldownMs)
	}
	if e.Padding < 0 {
		return fmt.Errorf("evasion.padding must be >= 0, got %v", e.Padding)
	}
	if e.SearchAttempts < 0 {
		return fmt.Errorf("evasion.searchAttempts must be >= 0, got %d", e.SearchAttempts)
	}
	if e.LeapJitter < 0 || e.JitterX < 0 || e.JitterY < 0 {
		return fmt.Errorf("evasion jitter values must be >= 0")
	}

	c := cfg.Celebration
	if c.RevealDelayMs < 0 || c.PopDurationMs < 0 {
		return fmt.Errorf("celebration delays must be >= 0, got reveal=%d pop=%d", c.RevealDelayMs, c.PopDurationMs)
	}

	if cfg.Confetti.Count <= 0 {
		return fmt.Errorf("confetti.count must be > 0, got %d", cfg.Confetti.Count)
	}
	if cfg.Confetti.LifetimeMs <= 0 {
		return fmt.Errorf("confetti.lifetimeMs must be > 0, got %d", cfg.Confetti.LifetimeMs)
	}
	if err := nonNegative("confetti", map[string]float64{
		"minDurationMs":    float64(cfg.Confetti.MinDurationMs),
		"durationJitterMs": float64(cfg.Confetti.DurationJitterMs),
		"spreadX":          cfg.Confetti.SpreadX,
		"startYRange":      cfg.Confetti.StartYRange,
		"minWidth":         cfg.Confetti.MinWidth,
		"widthRange":       cfg.Confetti.WidthRange,
		"minHeight":        cfg.Confetti.MinHeight,
		"heightRange":      cfg.Confetti.HeightRange,
	}); err != nil {
		return err
	}
	if _, err := cfg.Confetti.Colors(); err != nil {
		return fmt.Errorf("confetti.palette: %w", err)
	}

	if cfg.Hearts.Count <= 0 {
		return fmt.Errorf("hearts.count must be > 0, got %d", cfg.Hearts.Count)
	}
	if cfg.Hearts.LifetimeMs <= 0 {
		return fmt.Errorf("hearts.lifetimeMs must be > 0, got %d", cfg.Hearts.LifetimeMs)
	}
	if err := nonNegative("hearts", map[string]float64{
		"minDurationMs":    float64(cfg.Hearts.MinDurationMs),
		"durationJitterMs": float64(cfg.Hearts.DurationJitterMs),
		"spreadX":          cfg.Hearts.SpreadX,
		"spreadY":          cfg.Hearts.SpreadY,
		"minSize":          cfg.Hearts.MinSize,
		"sizeRange":        cfg.Hearts.SizeRange,
		"rotationRange":    cfg.Hearts.RotationRange,
	}); err != nil {
		return err
	}
	if _, err := cfg.Hearts.Colors(); err != nil {
		return fmt.Errorf("hearts.palette: %w", err)
	}

	l := cfg.Layout
	if l.AffirmWidth <= 0 || l.AffirmHeight <= 0 || l.DeclineWidth <= 0 || l.DeclineHeight <= 0 {
		return fmt.Errorf("control sizes must be > 0")
	}
	if l.ContainerHeight < 0 || l.ContainerMaxWidth < 0 || l.ContainerMargin < 0 {
		return fmt.Errorf("container size must be >= 0")
	}
	if l.AffirmAnchorX < 0 || l.AffirmAnchorX > 1 {
		return fmt.Errorf("layout.affirmAnchorX must be within [0, 1], got %v", l.AffirmAnchorX)
	}

	return nil
}

// nonNegative 检查一组字段都不小于 0，按字段名排序报告第一个错误
func nonNegative(section string, fields map[string]float64) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v := fields[name]; v < 0 {
			return fmt.Errorf("%s.%s must be >= 0, got %v", section, name, v)
		}
	}
	return nil
}

// parsePalette 解析十六进制颜色列表，至少需要一种颜色
func parsePalette(hexes []string) ([]colorful.Color, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("palette cannot be empty")
	}
	colors := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", h, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}
