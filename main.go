// yesno 是一个会躲开指针的"是/否"问答挂件
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          Enable debug logging
//	--config <path>    Widget tuning file (default data/widget.yaml, embedded)
//	--seed <n>         Random seed for reproducible runs (0 = time based)
//	--width <px>       Initial window width
//	--height <px>      Initial window height
//
// Controls:
//
//	Mouse / touch      - Approach "Yes" to grow it, try to catch "No"
//	Tab                - Cycle keyboard focus
//	Enter / Space      - Activate the focused control
//	F11                - Toggle fullscreen
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gonewx/yesno/pkg/app"
	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/embedded"
	"github.com/gonewx/yesno/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", config.DefaultConfigPath, "Widget tuning file")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	widthFlag   = flag.Int("width", app.DefaultWidth, "Initial window width")
	heightFlag  = flag.Int("height", app.DefaultHeight, "Initial window height")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Seed:       *seedFlag,
		Width:      *widthFlag,
		Height:     *heightFlag,
	})
	if err != nil {
		log.Error("初始化失败", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Yes or No?")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(scenes.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Error("运行失败", "err", err)
		os.Exit(1)
	}
}
