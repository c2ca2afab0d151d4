package systems

import (
	"sort"

	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/decker502/cardhand/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// CardRenderSystem 卡牌渲染系统
//
// 职责：
//   - 按深度从远到近绘制卡牌（Z 越小越靠前，因此后加入的牌盖住前面的牌）
//   - 按 TransformComponent.Rotation 旋转卡面
type CardRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewCardRenderSystem 创建卡牌渲染系统
func NewCardRenderSystem(em *ecs.EntityManager) *CardRenderSystem {
	return &CardRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有卡牌
func (s *CardRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.drawOrder() {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Image == nil {
			continue
		}
		screen.DrawImage(sprite.Image, cardDrawOptions(transform, sprite))
	}
}

// drawOrder 返回卡牌绘制顺序：Z 大（远）的先画，Z 相同按实体ID
func (s *CardRenderSystem) drawOrder() []ecs.EntityID {
	entities := ecs.GetEntitiesWith3[*components.CardComponent, *components.TransformComponent, *components.SpriteComponent](s.entityManager)

	depth := make(map[ecs.EntityID]float64, len(entities))
	for _, id := range entities {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		depth[id] = transform.Z
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return depth[entities[i]] > depth[entities[j]]
	})
	return entities
}

// cardDrawOptions 计算卡牌的绘制变换
// 世界坐标 Y 轴向上、逆时针为正；屏幕 Y 轴向下，因此旋转取反
func cardDrawOptions(transform *components.TransformComponent, sprite *components.SpriteComponent) *ebiten.DrawImageOptions {
	bounds := sprite.Image.Bounds()
	imgW := float64(bounds.Dx())
	imgH := float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-imgW/2, -imgH/2)
	op.GeoM.Scale(sprite.Width*config.PixelsPerUnit/imgW, sprite.Height*config.PixelsPerUnit/imgH)
	op.GeoM.Rotate(-transform.Rotation * utils.Deg2Rad)

	sx, sy := config.WorldToScreen(transform.X, transform.Y)
	op.GeoM.Translate(sx, sy)
	op.Filter = ebiten.FilterLinear
	return op
}
