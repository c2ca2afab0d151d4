package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/decker502/cardhand/pkg/utils"
)

var (
	// ErrInvalidCard 卡牌实体无效（ID为0、已被删除或没有 TransformComponent）
	ErrInvalidCard = errors.New("invalid card handle")

	// ErrInvalidHand 手牌实体无效（缺少 HandComponent 或 TransformComponent）
	ErrInvalidHand = errors.New("invalid hand handle")
)

// HandChangedHandler 手牌布局完成事件的订阅者，只接收手牌实体
type HandChangedHandler func(hand ecs.EntityID)

// Slot 单张卡牌的目标槽位
type Slot struct {
	// Angle 椭圆上的角度（度）
	Angle float64
	// Offset 相对手牌原点的偏移（Z 为深度）
	Offset utils.Vec3
}

// HandLayoutSystem 手牌椭圆布局系统
//
// 两种互斥的布局策略：
//   - 事件驱动（默认）：AddCard 启动一次布局，卡牌并行补间到槽位，
//     全部到位后一次性设置朝向，再触发一次 OnHandChanged
//   - 调试模式（Layout.DebugUpdate）：Update 每帧重新计算布局并平滑逼近，不触发事件
type HandLayoutSystem struct {
	entityManager *ecs.EntityManager
	tweenSystem   *TweenSystem
	handlers      []HandChangedHandler
}

// NewHandLayoutSystem 创建手牌布局系统
func NewHandLayoutSystem(em *ecs.EntityManager, tweenSystem *TweenSystem) *HandLayoutSystem {
	return &HandLayoutSystem{
		entityManager: em,
		tweenSystem:   tweenSystem,
		handlers:      make([]HandChangedHandler, 0),
	}
}

// OnHandChanged 订阅布局完成事件，按订阅顺序调用
func (s *HandLayoutSystem) OnHandChanged(handler HandChangedHandler) {
	if handler == nil {
		return
	}
	s.handlers = append(s.handlers, handler)
}

// AddCard 把卡牌加入手牌并启动重新布局
//
// 卡牌追加到序列末尾并挂到手牌下（同一张牌重复加入会出现两次）。
// 如果卡牌属于另一个手牌，会从原手牌的序列中移除，原手牌不重新布局。
// 调试模式下不启动补间，由 Update 逐帧逼近。
//
// 参数：
//   - hand: 手牌实体
//   - card: 卡牌实体
//   - duration: 补间时长（秒）
//
// 返回：
//   - error: ErrInvalidHand / ErrInvalidCard
func (s *HandLayoutSystem) AddCard(hand, card ecs.EntityID, duration float64) error {
	handComp, _, err := s.getHand(hand)
	if err != nil {
		return err
	}

	if card == ecs.InvalidEntity || card == hand {
		return fmt.Errorf("add card %d to hand %q: %w", card, handComp.Name, ErrInvalidCard)
	}
	cardTransform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, card)
	if !ok {
		return fmt.Errorf("add card %d to hand %q: %w", card, handComp.Name, ErrInvalidCard)
	}

	cardComp, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, card)
	if !ok {
		cardComp = &components.CardComponent{}
		ecs.AddComponent(s.entityManager, card, cardComp)
	}

	// 从原手牌移除
	if cardComp.Hand != ecs.InvalidEntity && cardComp.Hand != hand {
		s.detachFromHand(cardComp.Hand, card)
	}

	cardComp.Hand = hand
	cardTransform.Parent = hand
	handComp.Cards = append(handComp.Cards, card)

	log.Printf("[HandLayoutSystem] 手牌 %q 加入卡牌 %d，当前 %d 张", handComp.Name, card, len(handComp.Cards))

	if !handComp.Layout.DebugUpdate {
		return s.RecomputeLayout(hand, duration)
	}
	return nil
}

// detachFromHand 从手牌序列中移除卡牌的所有出现
func (s *HandLayoutSystem) detachFromHand(hand, card ecs.EntityID) {
	handComp, ok := ecs.GetComponent[*components.HandComponent](s.entityManager, hand)
	if !ok {
		return
	}

	kept := handComp.Cards[:0]
	for _, id := range handComp.Cards {
		if id != card {
			kept = append(kept, id)
		}
	}
	handComp.Cards = kept

	log.Printf("[HandLayoutSystem] 卡牌 %d 离开手牌 %q", card, handComp.Name)
}

// RecomputeLayout 重新计算手牌布局并启动一次布局过程
//
// 流程：
//  1. 自动整理模式下按牌数重写半径
//  2. 计算每张牌的槽位
//  3. 所有卡牌并行补间到 原点+槽位
//  4. 全部到位后，每张牌的朝向一次性对准焦点（不做补间）
//  5. 触发一次 OnHandChanged
func (s *HandLayoutSystem) RecomputeLayout(hand ecs.EntityID, duration float64) error {
	handComp, handTransform, err := s.getHand(hand)
	if err != nil {
		return err
	}

	origin := handTransform.Position()
	slots := ComputeSlots(&handComp.Layout, len(handComp.Cards))

	moves := make([]MoveTween, len(slots))
	for i, slot := range slots {
		moves[i] = MoveTween{
			Entity: handComp.Cards[i],
			Target: origin.Add(slot.Offset),
		}
	}

	s.tweenSystem.StartGroup(moves, duration, func() {
		s.completeLayout(hand)
	})
	return nil
}

// completeLayout 补间组完成回调：设置朝向并广播事件
func (s *HandLayoutSystem) completeLayout(hand ecs.EntityID) {
	handComp, handTransform, err := s.getHand(hand)
	if err != nil {
		log.Printf("[HandLayoutSystem] 布局完成时手牌 %d 已失效: %v", hand, err)
		return
	}

	s.snapRotations(handComp, handTransform.Position())

	for _, handler := range s.handlers {
		handler(hand)
	}
}

// snapRotations 把每张牌的朝向立即设置为对准焦点的角度
func (s *HandLayoutSystem) snapRotations(handComp *components.HandComponent, origin utils.Vec3) {
	focus := handComp.Layout.FocusPoint(origin)
	for _, card := range handComp.Cards {
		transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, card)
		if !ok {
			continue
		}
		transform.Rotation = utils.FocusRotation(transform.Position(), focus, handComp.Layout.RotationModifier)
	}
}

// Update 调试模式：每帧重新布局并指数平滑逼近目标
//
// lerp 因子为 10 * deltaTime（钳制到 1）。朝向按平滑后的新位置计算，
// 用同一因子做最短弧插值。此路径从不触发 OnHandChanged。
func (s *HandLayoutSystem) Update(deltaTime float64) {
	factor := utils.Clamp01(config.DebugSmoothingSpeed * deltaTime)

	hands := ecs.GetEntitiesWith2[*components.HandComponent, *components.TransformComponent](s.entityManager)
	for _, hand := range hands {
		handComp, _ := ecs.GetComponent[*components.HandComponent](s.entityManager, hand)
		if !handComp.Layout.DebugUpdate {
			continue
		}
		handTransform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, hand)

		origin := handTransform.Position()
		focus := handComp.Layout.FocusPoint(origin)
		slots := ComputeSlots(&handComp.Layout, len(handComp.Cards))

		for i, slot := range slots {
			transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, handComp.Cards[i])
			if !ok {
				continue
			}

			next := utils.LerpVec3(transform.Position(), origin.Add(slot.Offset), factor)
			transform.SetPosition(next)

			target := utils.FocusRotation(next, focus, handComp.Layout.RotationModifier)
			transform.Rotation = utils.SlerpAngle(transform.Rotation, target, factor)
		}
	}
}

// getHand 获取手牌的组件
func (s *HandLayoutSystem) getHand(hand ecs.EntityID) (*components.HandComponent, *components.TransformComponent, error) {
	handComp, ok := ecs.GetComponent[*components.HandComponent](s.entityManager, hand)
	if !ok {
		return nil, nil, fmt.Errorf("hand %d: %w", hand, ErrInvalidHand)
	}
	handTransform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, hand)
	if !ok {
		return nil, nil, fmt.Errorf("hand %d: %w", hand, ErrInvalidHand)
	}
	return handComp, handTransform, nil
}

// ComputeSlots 计算 n 张牌的槽位
//
// 自动整理模式下会把按牌数计算出的半径写回 layout。
// n == 1 时唯一的牌位于 StartAngle。
func ComputeSlots(layout *config.HandLayoutConfig, n int) []Slot {
	if layout.AutomaticOrganizeHand {
		layout.HorizontalRadius = utils.AutoRadius(n, layout.MaxHorizontalRadius, layout.HorizontalRadiusGapModifier)
		layout.VerticalRadius = utils.AutoRadius(n, layout.MaxVerticalRadius, layout.VerticalRadiusGapModifier)
	}

	angles := utils.SlotAngles(n, layout.StartAngle, layout.EndAngle)
	slots := make([]Slot, n)
	for i, angle := range angles {
		slots[i] = Slot{
			Angle:  angle,
			Offset: utils.EllipseSlot(i, angle, layout.HorizontalRadius, layout.VerticalRadius),
		}
	}
	return slots
}
