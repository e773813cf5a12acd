package game

import (
	"github.com/gonewx/yesno/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the widget.
// Each scene has its own input handling, update and rendering logic.
type Scene interface {
	// HandleInput consumes one frame of raw pointer/keyboard input.
	HandleInput(frame utils.PointerFrame)

	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)

	// Resize is called when the logical viewport size changes.
	Resize(width, height float64)
}
