package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// TestSlotAnglesArithmetic 验证 N>=2 时角度序列为等差数列
func TestSlotAnglesArithmetic(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		start, end float64
		expected   []float64
	}{
		{"两张牌", 2, 0, 180, []float64{0, 180}},
		{"三张牌", 3, 0, 180, []float64{0, 90, 180}},
		{"五张牌逆向", 5, 120, 60, []float64{120, 105, 90, 75, 60}},
		{"起止相同", 3, 45, 45, []float64{45, 45, 45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlotAngles(tt.n, tt.start, tt.end)
			if len(got) != len(tt.expected) {
				t.Fatalf("SlotAngles 返回 %d 个角度, 期望 %d", len(got), len(tt.expected))
			}
			for i := range got {
				if !almostEqual(got[i], tt.expected[i]) {
					t.Errorf("angle[%d] = %v, 期望 %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

// TestSlotAnglesStrictlyMonotonic 起止角不同时角度严格单调
func TestSlotAnglesStrictlyMonotonic(t *testing.T) {
	for n := 2; n <= 20; n++ {
		angles := SlotAngles(n, 10, 170)
		for i := 1; i < n; i++ {
			if angles[i] <= angles[i-1] {
				t.Fatalf("n=%d: angle[%d]=%v 不大于 angle[%d]=%v", n, i, angles[i], i-1, angles[i-1])
			}
		}
		if !almostEqual(angles[n-1], 170) {
			t.Errorf("n=%d: 最后一个角度 = %v, 期望 170", n, angles[n-1])
		}
	}
}

// TestSlotAnglesDegenerate 测试 N=0 与 N=1 的退化情况
func TestSlotAnglesDegenerate(t *testing.T) {
	if got := SlotAngles(0, 0, 180); len(got) != 0 {
		t.Errorf("SlotAngles(0) = %v, 期望空切片", got)
	}

	got := SlotAngles(1, 30, 180)
	if len(got) != 1 || got[0] != 30 {
		t.Errorf("SlotAngles(1) = %v, 期望 [30]", got)
	}
	if math.IsNaN(got[0]) || math.IsInf(got[0], 0) {
		t.Error("单张牌的角度不应为 NaN/Inf")
	}
}

// TestAutoRadius 测试自动整理半径公式
func TestAutoRadius(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		max, gap float64
		expected float64
	}{
		{"10张牌水平半径", 10, 50, 0.75, 10.0 / 0.75},
		{"达到上限", 100, 50, 0.75, 50},
		{"垂直半径被上限截断", 3, 1, 0.5, 1},
		{"零张牌", 0, 50, 0.75, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutoRadius(tt.n, tt.max, tt.gap)
			if !almostEqual(got, tt.expected) {
				t.Errorf("AutoRadius(%d, %v, %v) = %v, 期望 %v", tt.n, tt.max, tt.gap, got, tt.expected)
			}
		})
	}

	// 10 张牌的示例结果约为 13.33
	if got := AutoRadius(10, 50, 0.75); math.Abs(got-13.33) > 0.01 {
		t.Errorf("AutoRadius(10, 50, 0.75) = %v, 期望约 13.33", got)
	}
}

// TestAutoRadiusShrinksWithGap gapModifier 越大半径越小
func TestAutoRadiusShrinksWithGap(t *testing.T) {
	small := AutoRadius(5, 50, 0.5)
	large := AutoRadius(5, 50, 1.5)
	if large >= small {
		t.Errorf("gap=1.5 的半径 %v 应小于 gap=0.5 的半径 %v", large, small)
	}
}

// TestEllipseSlot 测试两张牌 0°/180° 的槽位
func TestEllipseSlot(t *testing.T) {
	first := EllipseSlot(0, 0, 5, 3)
	second := EllipseSlot(1, 180, 5, 3)

	if !almostEqual(first.X, 0.5) || !almostEqual(first.Y, 0) || !almostEqual(first.Z, 0) {
		t.Errorf("slot[0] = %+v, 期望 (0.5, 0, 0)", first)
	}
	if !almostEqual(second.X, -0.5) || !almostEqual(second.Y, 0) || !almostEqual(second.Z, -0.01) {
		t.Errorf("slot[1] = %+v, 期望 (-0.5, 0, -0.01)", second)
	}

	top := EllipseSlot(2, 90, 5, 3)
	if !almostEqual(top.X, 0) || !almostEqual(top.Y, 0.3) {
		t.Errorf("slot at 90° = %+v, 期望 (0, 0.3)", top)
	}
}

// TestEllipseSlotDepthDecreasing 深度随索引严格递减
func TestEllipseSlotDepthDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for i := 0; i < 30; i++ {
		z := EllipseSlot(i, 45, 5, 3).Z
		if !almostEqual(z, -0.01*float64(i)) {
			t.Errorf("slot[%d].Z = %v, 期望 %v", i, z, -0.01*float64(i))
		}
		if z >= prev {
			t.Fatalf("slot[%d].Z = %v 未严格递减", i, z)
		}
		prev = z
	}
}

// TestEllipseSlotDeterministic 相同输入产生相同输出
func TestEllipseSlotDeterministic(t *testing.T) {
	a := EllipseSlot(3, 37.5, 7, 2)
	b := EllipseSlot(3, 37.5, 7, 2)
	if a != b {
		t.Errorf("EllipseSlot 不确定: %+v != %+v", a, b)
	}
}

// TestFocusRotation 测试朝向焦点的旋转角
func TestFocusRotation(t *testing.T) {
	focus := Vec3{X: 0, Y: -5}

	tests := []struct {
		name     string
		pos      Vec3
		modifier float64
		expected float64
	}{
		// 正上方的牌指向正下方的焦点: atan2(-5.3, 0) = -90°, 减去 -90 得 0
		{"正上方", Vec3{X: 0, Y: 0.3}, -90, 0},
		// 右侧: atan2(-5, -0.5)
		{"右侧", Vec3{X: 0.5, Y: 0}, -90, math.Atan2(-5, -0.5)*Rad2Deg + 90},
		{"无修正", Vec3{X: -0.5, Y: 0}, 0, math.Atan2(-5, 0.5) * Rad2Deg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FocusRotation(tt.pos, focus, tt.modifier)
			if !almostEqual(got, tt.expected) {
				t.Errorf("FocusRotation(%+v) = %v, 期望 %v", tt.pos, got, tt.expected)
			}
		})
	}
}

// TestNormalizeAngle 测试角度规范化
func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		input, expected float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{720, 0},
		{-540, 180},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.input); !almostEqual(got, tt.expected) {
			t.Errorf("NormalizeAngle(%v) = %v, 期望 %v", tt.input, got, tt.expected)
		}
	}
}

// TestSlerpAngle 测试最短弧插值
func TestSlerpAngle(t *testing.T) {
	tests := []struct {
		name        string
		from, to, t float64
		expected    float64
	}{
		{"起点", 10, 50, 0, 10},
		{"中点", 10, 50, 0.5, 30},
		{"终点精确", 10, 50, 1, 50},
		{"跨越180走短弧", 170, -170, 0.5, 180},
		{"超出钳制", 0, 90, 2, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlerpAngle(tt.from, tt.to, tt.t)
			if !almostEqual(got, tt.expected) {
				t.Errorf("SlerpAngle(%v, %v, %v) = %v, 期望 %v", tt.from, tt.to, tt.t, got, tt.expected)
			}
		})
	}
}

// TestLerpVec3 测试向量插值的钳制行为
func TestLerpVec3(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 10, Y: -10, Z: 1}

	mid := LerpVec3(a, b, 0.5)
	if mid != (Vec3{X: 5, Y: -5, Z: 0.5}) {
		t.Errorf("LerpVec3(0.5) = %+v", mid)
	}
	if over := LerpVec3(a, b, 1.7); over != b {
		t.Errorf("LerpVec3(1.7) = %+v, 期望钳制到 %+v", over, b)
	}
	if got := b.Sub(a).Add(a); got != b {
		t.Errorf("Sub/Add 不对称: %+v", got)
	}
	if l := (Vec3{X: 3, Y: 4}).Length(); !almostEqual(l, 5) {
		t.Errorf("Length = %v, 期望 5", l)
	}
}
