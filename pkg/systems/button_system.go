package systems

import (
	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测鼠标悬停（更新按钮状态为 UIHovered）
//   - 检测鼠标点击（释放时触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 读取鼠标状态并更新按钮
func (s *ButtonSystem) Update(deltaTime float64) {
	mouseX, mouseY := ebiten.CursorPosition()
	s.HandlePointer(
		float64(mouseX), float64(mouseY),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	)
}

// HandlePointer 根据指针位置和按键状态更新按钮状态并触发回调
func (s *ButtonSystem) HandlePointer(x, y float64, pressed, released bool) {
	entities := ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !button.Contains(x, y) {
			button.State = components.UINormal
			continue
		}

		switch {
		case pressed:
			button.State = components.UIClicked
		case released:
			// 释放瞬间触发回调
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}
}
