package config

// 窗口与渲染布局常量
//
// 手牌几何使用"世界单位"（与手牌半径同一量纲），渲染时乘以 PixelsPerUnit 转换为像素。
// 世界坐标原点位于屏幕中心，Y 轴向上。
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 640

	// PixelsPerUnit 每个世界单位对应的像素数
	PixelsPerUnit = 100.0

	// CardWorldWidth 卡牌宽度（世界单位）
	CardWorldWidth = 0.5

	// CardWorldHeight 卡牌高度（世界单位）
	CardWorldHeight = 0.75

	// GizmoFocusRadius 焦点调试圆半径（世界单位）
	GizmoFocusRadius = 0.3

	// GizmoPointRadius 椭圆采样点半径（世界单位）
	GizmoPointRadius = 0.05

	// GizmoEllipseSamples 椭圆调试采样点数量
	GizmoEllipseSamples = 50

	// DebugSmoothingSpeed 调试模式下每秒的指数平滑系数（lerp 因子 = 速度 * deltaTime）
	DebugSmoothingSpeed = 10.0

	// DefaultAddCardDuration 添加卡牌时的默认补间时长（秒）
	DefaultAddCardDuration = 0.3
)

// WorldToScreen 将世界坐标转换为屏幕像素坐标
func WorldToScreen(x, y float64) (float64, float64) {
	sx := GameWindowWidth/2.0 + x*PixelsPerUnit
	sy := GameWindowHeight/2.0 - y*PixelsPerUnit
	return sx, sy
}

// ScreenToWorld 将屏幕像素坐标转换为世界坐标
func ScreenToWorld(sx, sy float64) (float64, float64) {
	x := (sx - GameWindowWidth/2.0) / PixelsPerUnit
	y := (GameWindowHeight/2.0 - sy) / PixelsPerUnit
	return x, y
}
