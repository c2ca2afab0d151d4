package components

import (
	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/ecs"
)

// HandComponent 手牌组件
//
// 手牌原点由同一实体上的 TransformComponent 提供。
// Cards 按加入顺序排列，第 i 张牌占据第 i 个角度槽位；同一张牌重复加入会出现多次。
type HandComponent struct {
	// Name 手牌名称，用于日志
	Name string

	// Cards 有序的卡牌实体列表
	Cards []ecs.EntityID

	// Layout 椭圆布局参数
	// 自动整理模式下 HorizontalRadius/VerticalRadius 会在每次布局时被重写
	Layout config.HandLayoutConfig
}
