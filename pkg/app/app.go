// Package app 提供挂件应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/logging"
	"github.com/gonewx/yesno/pkg/scenes"
	"github.com/gonewx/yesno/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// DefaultWidth / DefaultHeight 默认窗口尺寸
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 调参配置文件（data/ 开头的路径从嵌入资源读取）
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Width / Height 初始视口尺寸
	Width  int
	Height int
}

// App 是挂件应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	logger       *log.Logger
}

// NewApp 创建并初始化挂件应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	logging.Init(cfg.Verbose)
	logger := logging.For("App")

	if cfg.ConfigPath == "" {
		cfg.ConfigPath = config.DefaultConfigPath
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}

	widgetConfig, err := config.LoadWidgetConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	logger.Debug("config loaded", "path", cfg.ConfigPath)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("random source", "seed", seed)

	scene, err := scenes.NewWidgetScene(widgetConfig, float64(cfg.Width), float64(cfg.Height), rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)
	sceneManager.Resize(float64(cfg.Width), float64(cfg.Height))

	return &App{
		sceneManager: sceneManager,
		logger:       logger,
	}, nil
}

// Update 更新挂件逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏（移动端没有窗口模式）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.sceneManager.HandleInput(utils.ReadPointerFrame())
	a.sceneManager.Update(1.0 / scenes.TicksPerSecond)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 逻辑尺寸与窗口尺寸一致，这里只负责填充底色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 使用窗口的实际尺寸作为逻辑尺寸
// 尺寸变化会传递给场景重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return DefaultWidth, DefaultHeight
	}
	a.sceneManager.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
