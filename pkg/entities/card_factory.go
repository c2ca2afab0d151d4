package entities

import (
	"image/color"

	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/decker502/cardhand/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 卡面图像尺寸（像素），绘制时按 CardWorldWidth/CardWorldHeight 缩放
const (
	cardImageWidth  = 100
	cardImageHeight = 150
	cardBorderWidth = 4
)

// cardPalette 卡面底色，按序号循环使用
var cardPalette = []color.RGBA{
	{R: 231, G: 76, B: 60, A: 255},
	{R: 52, G: 152, B: 219, A: 255},
	{R: 46, G: 204, B: 113, A: 255},
	{R: 241, G: 196, B: 15, A: 255},
	{R: 155, G: 89, B: 182, A: 255},
}

// NewCardEntity 创建卡牌实体（不含图像）
//
// 卡牌在 spawn 位置生成，尚未属于任何手牌。
//
// 参数：
//   - em: 实体管理器
//   - label: 卡面文字
//   - spawn: 生成位置（世界坐标）
//
// 返回：
//   - 卡牌实体ID
func NewCardEntity(em *ecs.EntityManager, label string, spawn utils.Vec3) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.TransformComponent{
		X: spawn.X,
		Y: spawn.Y,
		Z: spawn.Z,
	})

	ecs.AddComponent(em, entity, &components.CardComponent{
		Hand:  ecs.InvalidEntity,
		Label: label,
	})

	return entity
}

// AttachCardSprite 为卡牌挂上卡面图像
func AttachCardSprite(em *ecs.EntityManager, card ecs.EntityID, image *ebiten.Image) {
	ecs.AddComponent(em, card, &components.SpriteComponent{
		Image:  image,
		Width:  config.CardWorldWidth,
		Height: config.CardWorldHeight,
	})
}

// CardColor 返回第 index 张卡牌的底色
func CardColor(index int) color.RGBA {
	if index < 0 {
		index = -index
	}
	return cardPalette[index%len(cardPalette)]
}

// NewCardImage 绘制卡面：白色边框、纯色底、左上角文字
// face 为 nil 时文字使用调试字体
func NewCardImage(label string, fill color.RGBA, face *text.GoTextFace) *ebiten.Image {
	img := ebiten.NewImage(cardImageWidth, cardImageHeight)
	img.Fill(color.White)
	vector.DrawFilledRect(img,
		cardBorderWidth, cardBorderWidth,
		cardImageWidth-2*cardBorderWidth, cardImageHeight-2*cardBorderWidth,
		fill, false)
	if face == nil {
		ebitenutil.DebugPrintAt(img, label, cardBorderWidth+4, cardBorderWidth+2)
		return img
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cardBorderWidth+4, cardBorderWidth+2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(img, label, face, op)
	return img
}
