// Package app 提供手牌演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/embedded"
	"github.com/decker502/cardhand/pkg/game"
	"github.com/decker502/cardhand/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultHandsConfigPath 嵌入资源中的手牌场景配置
const DefaultHandsConfigPath = "data/hands.yaml"

// settingsAppName gdata 存储使用的应用名
const settingsAppName = "cardhand"

// 布局完成提示音参数
const (
	cardPlacedToneHz      = 880.0
	cardPlacedToneSeconds = 0.06
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的手牌场景配置，为空则使用嵌入的 data/hands.yaml
	ConfigPath string
	// DebugUpdate 启动时对所有手牌开启逐帧平滑布局
	DebugUpdate bool
	// DebugGizmo 启动时对所有手牌开启调试图形
	DebugGizmo bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	handsConfig, err := loadHandsConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] 加载 %d 个手牌配置", len(handsConfig.Hands))

	// 设置存储打不开时退化为内存设置
	gdataManager, err := game.OpenSettingsStorage(settingsAppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	// 命令行开关覆盖已保存的设置
	if cfg.DebugUpdate {
		settingsManager.SetDebugUpdate(true)
	}
	if cfg.DebugGizmo {
		settingsManager.SetDebugGizmo(true)
	}

	// 初始化音频：布局完成提示音为合成音，不依赖资源文件
	audioManager := game.NewAudioManager(audio.NewContext(game.AudioSampleRate), settingsManager)
	audioManager.RegisterSound(game.SoundCardPlaced, game.GenerateTone(game.AudioSampleRate, cardPlacedToneHz, cardPlacedToneSeconds))
	log.Printf("[App] AudioManager initialized")

	handScene := scenes.NewHandScene(handsConfig, settingsManager)
	handScene.SetAudioManager(audioManager)

	// 字体加载失败时退回调试字体
	fontManager, err := game.NewDefaultFontManager()
	if err != nil {
		log.Printf("[App] Warning: %v (using debug font)", err)
	} else {
		handScene.SetFontManager(fontManager)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(handScene)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadHandsConfig 从磁盘或嵌入资源加载手牌场景配置
func loadHandsConfig(path string) (*config.HandsConfig, error) {
	if path != "" {
		handsConfig, err := config.LoadHandsConfig(path)
		if err != nil {
			return nil, fmt.Errorf("手牌配置加载失败: %w", err)
		}
		return handsConfig, nil
	}

	data, err := embedded.ReadFile(DefaultHandsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("手牌配置读取失败: %w", err)
	}
	handsConfig, err := config.ParseHandsConfig(data)
	if err != nil {
		return nil, fmt.Errorf("手牌配置解析失败: %w", err)
	}
	return handsConfig, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭或按下 Escape 时保存设置后退出
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settingsManager.SetFullscreen(true)
}

// Shutdown 保存当前场景状态
func (a *App) Shutdown() {
	a.sceneManager.SaveOnExit()
	log.Printf("[App] Shutdown")
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// StartFullscreen 返回是否应以全屏启动（上次退出时的状态）
func (a *App) StartFullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
