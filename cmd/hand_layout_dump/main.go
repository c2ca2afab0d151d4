// Package main 手牌布局检查工具
//
// 读取手牌配置，验证后打印每个手牌在 1..N 张牌时的槽位、
// 自动整理半径和最终朝向，不需要打开窗口。
//
// Usage:
//
//	go run ./cmd/hand_layout_dump [flags]
//
// Flags:
//
//	--config <path>   手牌配置文件（默认 data/hands.yaml）
//	--cards <n>       每个手牌最多打印的牌数（默认 5）
//	--hand <name>     只打印指定手牌
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/systems"
	"github.com/decker502/cardhand/pkg/utils"
)

var (
	configFlag = flag.String("config", "data/hands.yaml", "Hands config file")
	cardsFlag  = flag.Int("cards", 5, "Maximum number of cards to lay out per hand")
	handFlag   = flag.String("hand", "", "Only dump the hand with this name")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadHandsConfig(*configFlag)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 配置有效: %d 个手牌, 生成点 (%.2f, %.2f), 补间 %.2fs\n",
		len(cfg.Hands), cfg.Spawn.X, cfg.Spawn.Y, cfg.AddDuration)

	if *cardsFlag < 1 {
		fmt.Printf("❌ --cards 必须 >= 1\n")
		os.Exit(1)
	}

	found := false
	for _, entry := range cfg.Hands {
		if *handFlag != "" && entry.Name != *handFlag {
			continue
		}
		found = true
		dumpHand(entry, *cardsFlag)
	}

	if !found {
		fmt.Printf("❌ 未找到手牌 %q\n", *handFlag)
		os.Exit(1)
	}
}

// dumpHand 打印一个手牌在 1..maxCards 张牌时的布局
func dumpHand(entry config.HandEntry, maxCards int) {
	origin := utils.Vec3{X: entry.X, Y: entry.Y}
	focus := entry.Layout.FocusPoint(origin)

	fmt.Printf("\n=== %s 原点 (%.2f, %.2f) 焦点 (%.2f, %.2f) ===\n",
		entry.Name, origin.X, origin.Y, focus.X, focus.Y)

	for n := 1; n <= maxCards; n++ {
		layout := entry.Layout
		slots := systems.ComputeSlots(&layout, n)

		fmt.Printf("N=%d  半径 h=%.4f v=%.4f\n", n, layout.HorizontalRadius, layout.VerticalRadius)
		for i, slot := range slots {
			pos := origin.Add(slot.Offset)
			rotation := utils.FocusRotation(pos, focus, layout.RotationModifier)
			fmt.Printf("  [%d] 角度 %7.2f°  位置 (%7.4f, %7.4f, %6.3f)  朝向 %8.3f°\n",
				i, slot.Angle, pos.X, pos.Y, pos.Z, rotation)
		}
	}
}
