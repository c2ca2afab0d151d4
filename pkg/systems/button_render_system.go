package systems

import (
	"image/color"

	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugFontWidth/debugFontHeight ebitenutil 调试字体的字符尺寸（像素）
const (
	debugFontWidth  = 6
	debugFontHeight = 16
)

var buttonTextColor = color.White

// ButtonRenderSystem 按钮渲染系统
// 绘制纯色按钮背景和居中文字
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace // 按钮文字字体，nil 时使用调试字体
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// SetFont 设置按钮文字字体
func (s *ButtonRenderSystem) SetFont(face *text.GoTextFace) {
	s.font = face
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)

		bg := button.NormalColor
		if button.State == components.UIHovered || button.State == components.UIClicked {
			bg = button.HoverColor
		}
		vector.DrawFilledRect(screen, float32(button.X), float32(button.Y), float32(button.Width), float32(button.Height), bg, true)

		if s.font != nil {
			textWidth, textHeight := text.Measure(button.Text, s.font, 0)
			op := &text.DrawOptions{}
			op.GeoM.Translate(button.X+(button.Width-textWidth)/2, button.Y+(button.Height-textHeight)/2)
			op.ColorScale.ScaleWithColor(buttonTextColor)
			text.Draw(screen, button.Text, s.font, op)
			continue
		}

		// 降级：调试字体
		textX := button.X + (button.Width-float64(len(button.Text)*debugFontWidth))/2
		textY := button.Y + (button.Height-debugFontHeight)/2
		ebitenutil.DebugPrintAt(screen, button.Text, int(textX), int(textY))
	}
}
