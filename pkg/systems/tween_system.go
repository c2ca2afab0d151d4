package systems

import (
	"log"

	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/decker502/cardhand/pkg/utils"
)

// GroupID 补间组标识
type GroupID uint64

// MoveTween 单个位置补间：把实体移动到 Target
type MoveTween struct {
	Entity ecs.EntityID
	Target utils.Vec3

	start utils.Vec3
	done  bool
}

// tweenGroup 一组同时开始、同时结束的补间
// 所有成员完成后 onComplete 只调用一次
type tweenGroup struct {
	id         GroupID
	moves      []MoveTween
	duration   float64
	elapsed    float64
	onComplete func()
}

// TweenSystem 补间调度器
//
// 职责：
//   - StartGroup 启动一组并行的位置补间（启动时记录起点）
//   - Update 每帧推进所有组，按启动顺序写入 TransformComponent
//   - 组内全部补间结束后触发一次完成回调，然后移除该组
//
// 多个组作用于同一张卡牌时不互相取消，后启动的组在同一帧内最后写入，因此生效。
type TweenSystem struct {
	entityManager *ecs.EntityManager
	groups        []*tweenGroup
	nextID        GroupID
	easing        utils.EasingFunc
}

// NewTweenSystem 创建补间调度器，默认使用 EaseOutQuad 曲线
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{
		entityManager: em,
		groups:        make([]*tweenGroup, 0),
		nextID:        1,
		easing:        utils.EaseOutQuad,
	}
}

// SetEasing 设置补间曲线，nil 表示线性
func (s *TweenSystem) SetEasing(easing utils.EasingFunc) {
	if easing == nil {
		easing = utils.EaseLinear
	}
	s.easing = easing
}

// StartGroup 启动一组并行补间
//
// 参数：
//   - moves: 各实体的目标位置
//   - duration: 补间时长（秒），<= 0 时在下一次 Update 直接到达目标
//   - onComplete: 全部补间完成后调用一次，可为 nil
//
// 返回：
//   - GroupID: 组标识
func (s *TweenSystem) StartGroup(moves []MoveTween, duration float64, onComplete func()) GroupID {
	group := &tweenGroup{
		id:         s.nextID,
		moves:      make([]MoveTween, len(moves)),
		duration:   duration,
		onComplete: onComplete,
	}
	s.nextID++

	for i, m := range moves {
		group.moves[i] = MoveTween{Entity: m.Entity, Target: m.Target}
		if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, m.Entity); ok {
			group.moves[i].start = transform.Position()
		} else {
			// 实体不存在，视为已完成
			group.moves[i].done = true
		}
	}

	s.groups = append(s.groups, group)
	return group.id
}

// ActiveGroups 返回尚未完成的组数量
func (s *TweenSystem) ActiveGroups() int {
	return len(s.groups)
}

// Update 推进所有补间组
func (s *TweenSystem) Update(deltaTime float64) {
	if len(s.groups) == 0 {
		return
	}

	// 先推进全部组，再统一触发完成回调：
	// 回调中可能启动新的组，新组从下一帧开始推进
	completed := make([]*tweenGroup, 0)
	remaining := s.groups[:0]
	for _, group := range s.groups {
		if s.advance(group, deltaTime) {
			completed = append(completed, group)
		} else {
			remaining = append(remaining, group)
		}
	}
	// 清空尾部引用，避免已完成的组无法被回收
	for i := len(remaining); i < len(s.groups); i++ {
		s.groups[i] = nil
	}
	s.groups = remaining

	for _, group := range completed {
		log.Printf("[TweenSystem] 补间组 %d 完成 (%d 个补间)", group.id, len(group.moves))
		if group.onComplete != nil {
			group.onComplete()
		}
	}
}

// advance 推进单个组，返回该组是否全部完成
func (s *TweenSystem) advance(group *tweenGroup, deltaTime float64) bool {
	group.elapsed += deltaTime

	progress := 1.0
	if group.duration > 0 {
		progress = utils.Clamp01(group.elapsed / group.duration)
	}
	eased := s.easing(progress)

	allDone := true
	for i := range group.moves {
		move := &group.moves[i]
		if move.done {
			continue
		}

		transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, move.Entity)
		if !ok {
			// 补间过程中实体被删除
			move.done = true
			continue
		}

		if progress >= 1 {
			transform.SetPosition(move.Target)
			move.done = true
			continue
		}

		transform.SetPosition(utils.LerpVec3Unclamped(move.start, move.Target, eased))
		allDone = false
	}

	return allDone
}
