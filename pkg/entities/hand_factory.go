package entities

import (
	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/ecs"
)

// NewHandEntity 创建手牌实体
//
// 参数：
//   - em: 实体管理器
//   - entry: 手牌配置（名称、原点、布局）
//
// 返回：
//   - 手牌实体ID
func NewHandEntity(em *ecs.EntityManager, entry config.HandEntry) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.TransformComponent{
		X: entry.X,
		Y: entry.Y,
	})

	ecs.AddComponent(em, entity, &components.HandComponent{
		Name:   entry.Name,
		Cards:  make([]ecs.EntityID, 0),
		Layout: entry.Layout,
	})

	return entity
}
