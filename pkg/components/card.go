package components

import "github.com/decker502/cardhand/pkg/ecs"

// CardComponent 标记实体为一张卡牌
// 卡牌由外部创建，手牌只负责排列，不负责销毁
type CardComponent struct {
	// Hand 当前所属的手牌，InvalidEntity 表示不在任何手牌中
	Hand ecs.EntityID

	// Label 显示在卡面上的文字
	Label string
}
