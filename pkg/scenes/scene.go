package scenes

import (
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/systems"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ Scene                = (*WidgetScene)(nil)
	_ systems.WidgetEvents = (*WidgetScene)(nil)
)
