package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 图像以中心为锚点绘制，宽高按世界单位缩放
type SpriteComponent struct {
	Image *ebiten.Image

	// Width, Height 显示尺寸（世界单位）
	Width, Height float64
}
