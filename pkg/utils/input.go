package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerFrame 是一帧内的原始输入快照
// 统一鼠标与触摸，交给 InputSystem 做边沿检测和命中测试
type PointerFrame struct {
	// 指针位置（视口坐标）
	X, Y float64
	// Pressed 本帧刚按下（鼠标左键或新触摸）
	Pressed bool
	// Released 本帧刚释放
	Released bool
	// Touch 本帧事件来自触摸
	Touch bool
	// TabPressed 本帧按下 Tab（切换键盘焦点）
	TabPressed bool
	// ActivatePressed 本帧按下 Enter 或 Space
	ActivatePressed bool
}

// ReadPointerFrame 从 Ebitengine 读取当前帧的输入状态
// 优先检测触摸，其次是鼠标
func ReadPointerFrame() PointerFrame {
	frame := PointerFrame{}
	frame.TabPressed = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	frame.ActivatePressed = inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)

	// 新触摸
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		frame.X, frame.Y = float64(x), float64(y)
		frame.Pressed = true
		frame.Touch = true
		return frame
	}

	// 触摸抬起：使用上一帧的位置（抬起后当前位置已无效）
	if touchIDs := inpututil.AppendJustReleasedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := inpututil.TouchPositionInPreviousTick(touchIDs[0])
		frame.X, frame.Y = float64(x), float64(y)
		frame.Released = true
		frame.Touch = true
		return frame
	}

	// 持续触摸（拖动）
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		frame.X, frame.Y = float64(x), float64(y)
		frame.Touch = true
		return frame
	}

	x, y := ebiten.CursorPosition()
	frame.X, frame.Y = float64(x), float64(y)
	frame.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	frame.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return frame
}
