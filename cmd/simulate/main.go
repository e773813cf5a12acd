// Package main 无窗口地模拟一次"追逐"过程，用于观察躲避参数的效果
//
// 指针每帧以固定速度追向"否"按钮中心，持续指定时长后点击"是"按钮，
// 然后等待庆祝粒子全部消失。整个过程使用虚拟时钟，不需要图形环境。
//
// Usage:
//
//	go run ./cmd/simulate [flags]
//
// Flags:
//
//	--seconds <n>   Chase duration (default 5)
//	--speed <px>    Pointer speed per tick (default 12)
//	--seed <n>      Random seed (default 1)
//	--config <path> Widget tuning file
//	--verbose       Print every dodge
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gonewx/yesno/pkg/components"
	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/gonewx/yesno/pkg/logging"
	"github.com/gonewx/yesno/pkg/scenes"
	"github.com/gonewx/yesno/pkg/systems"
	"github.com/gonewx/yesno/pkg/utils"
	"github.com/jbeda/geom"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

var (
	secondsFlag = flag.Float64("seconds", 5, "Chase duration in seconds")
	speedFlag   = flag.Float64("speed", 12, "Pointer speed in pixels per tick")
	seedFlag    = flag.Int64("seed", 1, "Random seed")
	configFlag  = flag.String("config", "data/widget.yaml", "Widget tuning file")
	verboseFlag = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()
	logging.Init(*verboseFlag)

	cfg, err := config.LoadWidgetConfig(*configFlag)
	if err != nil {
		fmt.Printf("❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}

	scene, err := scenes.NewWidgetScene(cfg, screenWidth, screenHeight, rand.New(rand.NewSource(*seedFlag)))
	if err != nil {
		fmt.Printf("❌ 场景创建失败: %v\n", err)
		os.Exit(1)
	}

	const dt = 1.0 / scenes.TicksPerSecond
	ticks := int(*secondsFlag * scenes.TicksPerSecond)
	state := scene.State()
	em := scene.EntityManager()

	pointer := geom.Coord{X: screenWidth / 2, Y: screenHeight / 2}
	scene.HandleInput(utils.PointerFrame{X: pointer.X, Y: pointer.Y})

	dodges := 0
	caught := 0
	last := declineTopLeft(em, state.DeclineID)

	for i := 0; i < ticks; i++ {
		target := utils.RectCenter(systems.ControlViewportBounds(em, state, state.DeclineID))
		pointer = step(pointer, target, *speedFlag)

		frame := utils.PointerFrame{X: pointer.X, Y: pointer.Y}
		if pointer.DistanceFrom(target) < 1 {
			// 追上了就按下去
			frame.Pressed = true
			caught++
		}
		scene.HandleInput(frame)
		scene.Update(dt)

		if pos := declineTopLeft(em, state.DeclineID); pos != last {
			dodges++
			if *verboseFlag {
				fmt.Printf("  t=%-8v 否 → (%.0f, %.0f)\n", scene.Scheduler().Now().Round(time.Millisecond), pos.X, pos.Y)
			}
			last = pos
		}
	}

	fmt.Printf("追逐 %.1fs：躲避 %d 次，按下 %d 次\n", *secondsFlag, dodges, caught)

	// 点击"是"
	yes := utils.RectCenter(systems.ControlViewportBounds(em, state, state.AffirmID))
	scene.HandleInput(utils.PointerFrame{X: yes.X, Y: yes.Y})
	scene.HandleInput(utils.PointerFrame{X: yes.X, Y: yes.Y, Pressed: true})
	scene.HandleInput(utils.PointerFrame{X: yes.X, Y: yes.Y, Released: true})
	if !state.Accepted {
		fmt.Println("❌ 点击\"是\"没有生效")
		os.Exit(1)
	}

	peak := 0
	for i := 0; i < 4*scenes.TicksPerSecond; i++ {
		scene.Update(dt)
		if n := scene.ParticleCount(); n > peak {
			peak = n
		}
	}
	fmt.Printf("庆祝：粒子峰值 %d，剩余 %d\n", peak, scene.ParticleCount())
}

// step 让指针朝目标移动最多 speed 像素
func step(from, to geom.Coord, speed float64) geom.Coord {
	d := from.DistanceFrom(to)
	if d <= speed {
		return to
	}
	return from.Plus(to.Minus(from).Times(speed / d))
}

func declineTopLeft(em *ecs.EntityManager, id ecs.EntityID) geom.Coord {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return geom.Coord{}
	}
	return geom.Coord{X: pos.X, Y: pos.Y}
}
