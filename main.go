// Package main 手牌椭圆布局演示程序
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose         输出详细日志（包括每次布局完成事件）
//	--config <path>   从磁盘读取手牌配置，默认使用嵌入的 data/hands.yaml
//	--debug-update    启动时开启逐帧平滑布局
//	--debug-gizmo     启动时开启调试图形
//
// Controls:
//
//	Click "Add card"  - 在生成点创建卡牌并加入对应手牌
//	G                 - 切换调试图形
//	D                 - 切换逐帧平滑布局
//	M                 - 切换提示音
//	F11               - 切换全屏
//	Escape            - 退出
package main

import (
	"flag"
	"log"

	"github.com/decker502/cardhand/pkg/app"
	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag     = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag      = flag.String("config", "", "Load hands config from this path instead of the embedded one")
	debugUpdateFlag = flag.Bool("debug-update", false, "Start with per-frame smoothed layout on all hands")
	debugGizmoFlag  = flag.Bool("debug-gizmo", false, "Start with layout gizmos on all hands")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		ConfigPath:  *configFlag,
		DebugUpdate: *debugUpdateFlag,
		DebugGizmo:  *debugGizmoFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Card Hand Layout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(gameApp.StartFullscreen())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
