package game

import (
	"github.com/charmbracelet/log"
	"github.com/gonewx/yesno/pkg/logging"
	"github.com/gonewx/yesno/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages which scene is active and forwards the game loop to it.
// It ensures only one scene's methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	// 最近一次已知的视口尺寸，切换场景时同步给新场景
	width, height float64
	logger        *log.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{logger: logging.For("SceneManager")}
}

// SwitchTo changes the active scene to the provided scene.
// 若已知视口尺寸，新场景会立即收到一次 Resize。
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if scene != nil && sm.width > 0 && sm.height > 0 {
		scene.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// HandleInput forwards one input frame to the active scene.
func (sm *SceneManager) HandleInput(frame utils.PointerFrame) {
	if sm.currentScene != nil {
		sm.currentScene.HandleInput(frame)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize 记录新的视口尺寸并通知当前场景
// 尺寸没有变化时不做任何事
func (sm *SceneManager) Resize(width, height float64) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	sm.logger.Debug("viewport resized", "width", width, "height", height)
	if sm.currentScene != nil {
		sm.currentScene.Resize(width, height)
	}
}
