package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/decker502/cardhand/pkg/entities"
	"github.com/decker502/cardhand/pkg/game"
	"github.com/decker502/cardhand/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var backgroundColor = color.RGBA{R: 24, G: 80, B: 48, A: 255}

// CardImageFunc 为第 index 张新卡牌生成卡面，返回 nil 表示不绘制
type CardImageFunc func(label string, index int) *ebiten.Image

// 界面字号
const (
	buttonFontSize = 14.0
	cardFontSize   = 20.0
)

// HandScene 手牌演示场景
//
// 每个手牌配一个"添加卡牌"按钮：点击后在生成点创建卡牌并加入对应手牌，
// 手牌布局完成时输出日志。
//
// 按键：
//   - G: 切换调试图形
//   - D: 切换逐帧平滑布局
//   - M: 切换提示音
type HandScene struct {
	entityManager *ecs.EntityManager
	settings      *game.SettingsManager
	audioManager  *game.AudioManager
	config        *config.HandsConfig

	tweenSystem        *systems.TweenSystem
	layoutSystem       *systems.HandLayoutSystem
	buttonSystem       *systems.ButtonSystem
	cardRenderSystem   *systems.CardRenderSystem
	gizmoRenderSystem  *systems.HandGizmoRenderSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	hands     []ecs.EntityID
	cardCount int
	cardImage CardImageFunc
	cardFont  *text.GoTextFace

	// 最近一次布局完成事件，用于界面提示
	lastChangedHand string
	changedEvents   int
}

// NewHandScene 创建手牌演示场景
//
// 参数：
//   - cfg: 手牌场景配置（已验证）
//   - settings: 查看设置，可为 nil
func NewHandScene(cfg *config.HandsConfig, settings *game.SettingsManager) *HandScene {
	em := ecs.NewEntityManager()
	tweenSystem := systems.NewTweenSystem(em)

	s := &HandScene{
		entityManager:      em,
		settings:           settings,
		config:             cfg,
		tweenSystem:        tweenSystem,
		layoutSystem:       systems.NewHandLayoutSystem(em, tweenSystem),
		buttonSystem:       systems.NewButtonSystem(em),
		cardRenderSystem:   systems.NewCardRenderSystem(em),
		gizmoRenderSystem:  systems.NewHandGizmoRenderSystem(em),
		buttonRenderSystem: systems.NewButtonRenderSystem(em),
		hands:              make([]ecs.EntityID, 0, len(cfg.Hands)),
	}
	s.cardImage = s.defaultCardImage

	var viewer *game.ViewerSettings
	if settings != nil {
		viewer = settings.GetSettings()
	}

	for i, entry := range cfg.Hands {
		if viewer != nil {
			entry.Layout.DebugUpdate = entry.Layout.DebugUpdate || viewer.DebugUpdate
			entry.Layout.DebugGizmo = entry.Layout.DebugGizmo || viewer.DebugGizmo
		}
		hand := entities.NewHandEntity(em, entry)
		s.hands = append(s.hands, hand)

		index := i
		entities.NewAddCardButton(em,
			20, 20+float64(i)*(entities.AddCardButtonHeight+10),
			fmt.Sprintf("Add card: %s", entry.Name),
			func() {
				if err := s.AddCardToHand(index); err != nil {
					log.Printf("[HandScene] 添加卡牌失败: %v", err)
				}
			})

		log.Printf("[HandScene] 创建手牌 %q 原点 (%.2f, %.2f)", entry.Name, entry.X, entry.Y)
	}

	s.layoutSystem.OnHandChanged(s.onHandChanged)
	return s
}

// defaultCardImage 默认卡面：按序号循环配色
func (s *HandScene) defaultCardImage(label string, index int) *ebiten.Image {
	return entities.NewCardImage(label, entities.CardColor(index), s.cardFont)
}

// SetFontManager 设置按钮和卡面文字使用的字体，nil 时使用调试字体
func (s *HandScene) SetFontManager(fm *game.FontManager) {
	if fm == nil {
		s.cardFont = nil
		s.buttonRenderSystem.SetFont(nil)
		return
	}
	s.cardFont = fm.Face(cardFontSize)
	s.buttonRenderSystem.SetFont(fm.Face(buttonFontSize))
}

// SetCardImageFunc 替换卡面生成函数，nil 表示新卡牌不带图像
func (s *HandScene) SetCardImageFunc(fn CardImageFunc) {
	s.cardImage = fn
}

// SetAudioManager 设置布局完成提示音的播放器，nil 表示静音
func (s *HandScene) SetAudioManager(am *game.AudioManager) {
	s.audioManager = am
}

// Hands 返回场景中的手牌实体，顺序与配置一致
func (s *HandScene) Hands() []ecs.EntityID {
	return s.hands
}

// EntityManager 返回场景的实体管理器
func (s *HandScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// AddCardToHand 在生成点创建一张卡牌并加入第 index 个手牌
func (s *HandScene) AddCardToHand(index int) error {
	if index < 0 || index >= len(s.hands) {
		return fmt.Errorf("hand index %d out of range [0, %d)", index, len(s.hands))
	}

	s.cardCount++
	label := fmt.Sprintf("#%d", s.cardCount)
	card := entities.NewCardEntity(s.entityManager, label, s.config.Spawn)
	if s.cardImage != nil {
		if img := s.cardImage(label, s.cardCount-1); img != nil {
			entities.AttachCardSprite(s.entityManager, card, img)
		}
	}

	return s.layoutSystem.AddCard(s.hands[index], card, s.config.AddDuration)
}

// onHandChanged 布局完成事件
func (s *HandScene) onHandChanged(hand ecs.EntityID) {
	name := fmt.Sprintf("%d", hand)
	if handComp, ok := ecs.GetComponent[*components.HandComponent](s.entityManager, hand); ok {
		name = handComp.Name
	}
	s.lastChangedHand = name
	s.changedEvents++
	log.Printf("[HandScene] Card added: %s", name)

	if s.audioManager != nil {
		s.audioManager.PlaySound(game.SoundCardPlaced)
	}
}

// ToggleSound 切换提示音
func (s *HandScene) ToggleSound() {
	if s.settings == nil {
		return
	}
	enabled := !s.settings.GetSettings().SoundEnabled
	s.settings.SetSoundEnabled(enabled)
	log.Printf("[HandScene] SoundEnabled = %v", enabled)
}

// ToggleDebugGizmo 切换所有手牌的调试图形
func (s *HandScene) ToggleDebugGizmo() {
	enabled := !s.anyHand(func(l *config.HandLayoutConfig) bool { return l.DebugGizmo })
	s.forEachHand(func(_ ecs.EntityID, h *components.HandComponent) {
		h.Layout.DebugGizmo = enabled
	})
	if s.settings != nil {
		s.settings.SetDebugGizmo(enabled)
	}
	log.Printf("[HandScene] DebugGizmo = %v", enabled)
}

// ToggleDebugUpdate 切换所有手牌的逐帧平滑布局
// 关闭时对每个手牌补一次正常布局，使卡牌回到补间路径并触发完成事件
func (s *HandScene) ToggleDebugUpdate() {
	enabled := !s.anyHand(func(l *config.HandLayoutConfig) bool { return l.DebugUpdate })
	s.forEachHand(func(hand ecs.EntityID, h *components.HandComponent) {
		h.Layout.DebugUpdate = enabled
		if !enabled {
			if err := s.layoutSystem.RecomputeLayout(hand, s.config.AddDuration); err != nil {
				log.Printf("[HandScene] 重新布局失败: %v", err)
			}
		}
	})
	if s.settings != nil {
		s.settings.SetDebugUpdate(enabled)
	}
	log.Printf("[HandScene] DebugUpdate = %v", enabled)
}

func (s *HandScene) anyHand(pred func(*config.HandLayoutConfig) bool) bool {
	found := false
	s.forEachHand(func(_ ecs.EntityID, h *components.HandComponent) {
		if pred(&h.Layout) {
			found = true
		}
	})
	return found
}

func (s *HandScene) forEachHand(fn func(ecs.EntityID, *components.HandComponent)) {
	for _, hand := range s.hands {
		if handComp, ok := ecs.GetComponent[*components.HandComponent](s.entityManager, hand); ok {
			fn(hand, handComp)
		}
	}
}

// Update 读取输入并推进所有系统
func (s *HandScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.ToggleDebugGizmo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		s.ToggleDebugUpdate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.ToggleSound()
	}
	s.buttonSystem.Update(deltaTime)

	s.step(deltaTime)
}

// step 推进布局和补间（不读取输入）
func (s *HandScene) step(deltaTime float64) {
	s.layoutSystem.Update(deltaTime)
	s.tweenSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *HandScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.gizmoRenderSystem.Draw(screen)
	s.cardRenderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)

	hint := "G: gizmo  D: debug update  M: sound  F11: fullscreen"
	if s.lastChangedHand != "" {
		hint = fmt.Sprintf("%s\nlast layout: %s (%d)", hint, s.lastChangedHand, s.changedEvents)
	}
	ebitenutil.DebugPrintAt(screen, hint, 20, config.GameWindowHeight-40)
}

// SaveOnExit 保存查看设置
func (s *HandScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[HandScene] 保存设置失败: %v", err)
		return false
	}
	return true
}
