package components

import (
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/decker502/cardhand/pkg/utils"
)

// TransformComponent 存储实体在世界坐标系中的位置和朝向
//
// 坐标单位为世界单位，Y 轴向上，Z 轴为前向轴（Z 越小越靠近观察者）。
// Rotation 是绕前向轴的旋转角（度，逆时针为正）。
type TransformComponent struct {
	X, Y, Z float64

	// Rotation 绕前向轴的旋转角（度）
	Rotation float64

	// Parent 父实体，InvalidEntity 表示没有父实体
	// 只记录层级关系，位置仍然是世界坐标
	Parent ecs.EntityID
}

// Position 以向量形式返回位置
func (t *TransformComponent) Position() utils.Vec3 {
	return utils.Vec3{X: t.X, Y: t.Y, Z: t.Z}
}

// SetPosition 以向量形式设置位置
func (t *TransformComponent) SetPosition(p utils.Vec3) {
	t.X, t.Y, t.Z = p.X, p.Y, p.Z
}
