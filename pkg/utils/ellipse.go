package utils

import "math"

// 手牌椭圆布局的纯函数
//
// 所有函数都是 (i, N, 配置) 的确定性函数，没有隐藏状态。
// 角度单位统一为度。

const (
	// Deg2Rad 角度转弧度
	Deg2Rad = math.Pi / 180.0
	// Rad2Deg 弧度转角度
	Rad2Deg = 180.0 / math.Pi

	// SlotScale 椭圆参数方程的固定缩放系数
	SlotScale = 0.1
	// SlotDepthStep 每张牌的深度偏移，后加入的牌更靠近观察者
	SlotDepthStep = 0.01
)

// SlotAngles 计算 n 张牌的均匀角度序列
//
//	angle_i = start + i * (end - start) / (n - 1)
//
// n == 0 返回空切片；n == 1 时步长无定义，唯一的牌放在 start。
func SlotAngles(n int, start, end float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	angles := make([]float64, n)
	if n == 1 {
		angles[0] = start
		return angles
	}
	step := (end - start) / float64(n-1)
	for i := range angles {
		angles[i] = start + float64(i)*step
	}
	return angles
}

// AutoRadius 自动整理模式下的半径
//
//	radius = min(maxRadius, n * (maxRadius / (maxRadius * gapModifier)))
//
// 注意：gapModifier 越大半径越小，公式保持原样。
func AutoRadius(n int, maxRadius, gapModifier float64) float64 {
	gap := maxRadius / (maxRadius * gapModifier)
	radius := float64(n) * gap
	if radius >= maxRadius {
		radius = maxRadius
	}
	return radius
}

// EllipseSlot 计算第 i 张牌相对手牌原点的槽位
//
//	x = 0.1 * h * cos(angle), y = 0.1 * v * sin(angle), z = -0.01 * i
func EllipseSlot(i int, angleDeg, horizontalRadius, verticalRadius float64) Vec3 {
	rad := angleDeg * Deg2Rad
	return Vec3{
		X: SlotScale * horizontalRadius * math.Cos(rad),
		Y: SlotScale * verticalRadius * math.Sin(rad),
		Z: -SlotDepthStep * float64(i),
	}
}

// EllipsePoint 椭圆上给定角度的点（深度为0），用于调试绘制
func EllipsePoint(angleDeg, horizontalRadius, verticalRadius float64) Vec3 {
	return EllipseSlot(0, angleDeg, horizontalRadius, verticalRadius)
}

// FocusRotation 计算牌朝向焦点的旋转角（度）
//
//	angle = atan2(focus.y - pos.y, focus.x - pos.x) * rad2deg - rotationModifier
func FocusRotation(pos, focus Vec3, rotationModifier float64) float64 {
	dir := focus.Sub(pos)
	return math.Atan2(dir.Y, dir.X)*Rad2Deg - rotationModifier
}

// NormalizeAngle 将角度规范到 (-180, 180]
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

// SlerpAngle 绕单一轴的球面插值，走最短弧
// 对于同轴旋转，四元数 slerp 等价于沿最短方向按比例插值角度。
// t 被钳制到 [0, 1]；t=1 时精确返回 to。
func SlerpAngle(from, to, t float64) float64 {
	t = Clamp01(t)
	if t == 1 {
		return to
	}
	delta := NormalizeAngle(to - from)
	return from + delta*t
}
