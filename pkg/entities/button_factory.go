package entities

import (
	"image/color"

	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/ecs"
)

const (
	// AddCardButtonWidth 添加卡牌按钮宽度（像素）
	AddCardButtonWidth = 140.0
	// AddCardButtonHeight 添加卡牌按钮高度（像素）
	AddCardButtonHeight = 32.0
)

// NewAddCardButton 创建"添加卡牌"按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角（屏幕坐标）
//   - text: 按钮文字
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewAddCardButton(em *ecs.EntityManager, x, y float64, text string, onClick func()) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		X:           x,
		Y:           y,
		Width:       AddCardButtonWidth,
		Height:      AddCardButtonHeight,
		Text:        text,
		NormalColor: color.RGBA{R: 60, G: 60, B: 80, A: 255},
		HoverColor:  color.RGBA{R: 90, G: 90, B: 130, A: 255},
		State:       components.UINormal,
		Enabled:     true,
		OnClick:     onClick,
	})

	return entity
}
