package components

import "image/color"

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 按钮使用屏幕坐标，位置为左上角。
type ButtonComponent struct {
	// X, Y 左上角位置（屏幕像素）
	X, Y float64

	// Width, Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// Text 按钮上显示的文字
	Text string

	// NormalColor 正常状态背景色
	NormalColor color.RGBA
	// HoverColor 悬停/按下状态背景色
	HoverColor color.RGBA

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调函数（鼠标在按钮内释放时触发）
	OnClick func()
}

// Contains 判断屏幕坐标是否落在按钮范围内
func (b *ButtonComponent) Contains(x, y float64) bool {
	return x >= b.X &&
		x <= b.X+b.Width &&
		y >= b.Y &&
		y <= b.Y+b.Height
}
