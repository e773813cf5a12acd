// Package main 校验挂件调参文件
//
// Usage:
//
//	go run ./cmd/validate_config [path]
//
// 默认校验 data/widget.yaml。解析规则与运行时完全一致（缺省字段取默认值）。
package main

import (
	"fmt"
	"os"

	"github.com/gonewx/yesno/pkg/config"
)

func main() {
	path := config.DefaultConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadWidgetConfig(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s 格式正确\n", path)
	fmt.Printf("   吸引阈值: %.0fpx，最大额外缩放 %.2f，悬停下限 %.2f\n",
		cfg.Attraction.Threshold, cfg.Attraction.MaxBoost, cfg.Attraction.HoverFloor)
	fmt.Printf("   躲避阈值: %.0fpx，冷却 %v / %v（环境/强制），搜索 %d 次\n",
		cfg.Evasion.Threshold, cfg.Evasion.AmbientCooldown(), cfg.Evasion.ForcedCooldown(), cfg.Evasion.SearchAttempts)
	fmt.Printf("   彩纸: %d 个，%d 种颜色，存活 %v\n",
		cfg.Confetti.Count, len(cfg.Confetti.Palette), cfg.Confetti.Lifetime())
	fmt.Printf("   爱心: %d 个，%d 种颜色，存活 %v\n",
		cfg.Hearts.Count, len(cfg.Hearts.Palette), cfg.Hearts.Lifetime())

	if def := config.DefaultWidgetConfig(); cfg.Evasion.Threshold != def.Evasion.Threshold ||
		cfg.Attraction.Threshold != def.Attraction.Threshold {
		fmt.Printf("⚠️  阈值与默认值不同（吸引 %.0f，躲避 %.0f）\n", def.Attraction.Threshold, def.Evasion.Threshold)
	}
}
