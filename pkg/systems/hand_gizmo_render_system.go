package systems

import (
	"image/color"

	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/decker502/cardhand/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	gizmoFocusColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	gizmoEllipseColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// HandGizmoRenderSystem 手牌调试绘制（Layout.DebugGizmo）
//
// 绘制内容：
//   - 焦点位置（红色圆点）
//   - 每张牌到焦点的连线
//   - 椭圆上 50 个采样点（绿色）
type HandGizmoRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewHandGizmoRenderSystem 创建手牌调试绘制系统
func NewHandGizmoRenderSystem(em *ecs.EntityManager) *HandGizmoRenderSystem {
	return &HandGizmoRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有开启了 DebugGizmo 的手牌
func (s *HandGizmoRenderSystem) Draw(screen *ebiten.Image) {
	hands := ecs.GetEntitiesWith2[*components.HandComponent, *components.TransformComponent](s.entityManager)
	for _, hand := range hands {
		handComp, _ := ecs.GetComponent[*components.HandComponent](s.entityManager, hand)
		if !handComp.Layout.DebugGizmo {
			continue
		}
		handTransform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, hand)
		s.drawHand(screen, handComp, handTransform.Position())
	}
}

func (s *HandGizmoRenderSystem) drawHand(screen *ebiten.Image, handComp *components.HandComponent, origin utils.Vec3) {
	focus := handComp.Layout.FocusPoint(origin)
	fx, fy := config.WorldToScreen(focus.X, focus.Y)
	vector.DrawFilledCircle(screen, float32(fx), float32(fy), float32(config.GizmoFocusRadius*config.PixelsPerUnit), gizmoFocusColor, true)

	for _, card := range handComp.Cards {
		transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, card)
		if !ok {
			continue
		}
		cx, cy := config.WorldToScreen(transform.X, transform.Y)
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(fx), float32(fy), 1, gizmoFocusColor, true)
	}

	for _, p := range GizmoEllipsePoints(&handComp.Layout, origin) {
		px, py := config.WorldToScreen(p.X, p.Y)
		vector.DrawFilledCircle(screen, float32(px), float32(py), float32(config.GizmoPointRadius*config.PixelsPerUnit), gizmoEllipseColor, true)
	}
}

// GizmoEllipsePoints 返回椭圆上的调试采样点（世界坐标）
// 从 StartAngle 开始，步长 (EndAngle-StartAngle)/50，共 50 个点
func GizmoEllipsePoints(layout *config.HandLayoutConfig, origin utils.Vec3) []utils.Vec3 {
	step := (layout.EndAngle - layout.StartAngle) / config.GizmoEllipseSamples
	points := make([]utils.Vec3, config.GizmoEllipseSamples)
	for i := range points {
		angle := layout.StartAngle + float64(i)*step
		points[i] = origin.Add(utils.EllipsePoint(angle, layout.HorizontalRadius, layout.VerticalRadius))
	}
	return points
}
