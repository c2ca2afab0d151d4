package config

import (
	"fmt"
	"math"

	"github.com/decker502/cardhand/pkg/utils"
	"gopkg.in/yaml.v3"
)

// HandLayoutConfig 手牌椭圆布局配置
//
// 字段与可调参数一一对应，YAML 中缺失的键使用 DefaultHandLayoutConfig 的值。
type HandLayoutConfig struct {
	// AutomaticOrganizeHand 自动整理：半径随牌数变化，而不是固定值
	AutomaticOrganizeHand bool `yaml:"automaticOrganizeHand"`

	// HorizontalRadius 椭圆水平半径（自动整理时每次布局都会被重写）
	HorizontalRadius float64 `yaml:"horizontalRadius"`
	// MaxHorizontalRadius 自动整理时水平半径的上限
	MaxHorizontalRadius float64 `yaml:"maxHorizontalRadius"`
	// HorizontalRadiusGapModifier 水平间距修正
	HorizontalRadiusGapModifier float64 `yaml:"horizontalRadiusGapModifier"`

	// VerticalRadius 椭圆垂直半径
	VerticalRadius float64 `yaml:"verticalRadius"`
	// MaxVerticalRadius 自动整理时垂直半径的上限
	MaxVerticalRadius float64 `yaml:"maxVerticalRadius"`
	// VerticalRadiusGapModifier 垂直间距修正
	VerticalRadiusGapModifier float64 `yaml:"verticalRadiusGapModifier"`

	// StartAngle 第一张牌的角度（度）
	StartAngle float64 `yaml:"startAngle"`
	// EndAngle 最后一张牌的角度（度）
	EndAngle float64 `yaml:"endAngle"`

	// AngleFocusOffset 焦点偏移，焦点 = 手牌原点 - AngleFocusOffset
	AngleFocusOffset utils.Vec3 `yaml:"angleFocusOffset"`
	// RotationModifier 朝向角的修正量（度），最终角度 = atan2 - RotationModifier
	RotationModifier float64 `yaml:"rotationModifier"`

	// DebugUpdate 每帧平滑逼近目标布局，不走补间，也不触发完成事件
	DebugUpdate bool `yaml:"debugUpdate"`
	// DebugGizmo 绘制焦点、连线和椭圆采样点
	DebugGizmo bool `yaml:"debugGizmo"`
}

// DefaultHandLayoutConfig 返回默认布局配置
func DefaultHandLayoutConfig() HandLayoutConfig {
	return HandLayoutConfig{
		AutomaticOrganizeHand:       false,
		HorizontalRadius:            5,
		MaxHorizontalRadius:         50,
		HorizontalRadiusGapModifier: 0.75,
		VerticalRadius:              3,
		MaxVerticalRadius:           1,
		VerticalRadiusGapModifier:   0.5,
		StartAngle:                  0,
		EndAngle:                    180,
		AngleFocusOffset:            utils.Vec3{X: 0, Y: -5, Z: 0},
		RotationModifier:            -90,
	}
}

// UnmarshalYAML 先填充默认值再解码，使缺失的键保持默认
func (c *HandLayoutConfig) UnmarshalYAML(value *yaml.Node) error {
	type rawHandLayoutConfig HandLayoutConfig
	raw := rawHandLayoutConfig(DefaultHandLayoutConfig())
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*c = HandLayoutConfig(raw)
	return nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 所有数值必须是有限值
//   - 半径不能为负
//   - 自动整理用到的上限和间距修正必须为正（公式中作为除数）
func (c *HandLayoutConfig) Validate() error {
	values := []struct {
		name  string
		value float64
	}{
		{"horizontalRadius", c.HorizontalRadius},
		{"maxHorizontalRadius", c.MaxHorizontalRadius},
		{"horizontalRadiusGapModifier", c.HorizontalRadiusGapModifier},
		{"verticalRadius", c.VerticalRadius},
		{"maxVerticalRadius", c.MaxVerticalRadius},
		{"verticalRadiusGapModifier", c.VerticalRadiusGapModifier},
		{"startAngle", c.StartAngle},
		{"endAngle", c.EndAngle},
		{"angleFocusOffset.x", c.AngleFocusOffset.X},
		{"angleFocusOffset.y", c.AngleFocusOffset.Y},
		{"angleFocusOffset.z", c.AngleFocusOffset.Z},
		{"rotationModifier", c.RotationModifier},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", v.name, v.value)
		}
	}

	if c.HorizontalRadius < 0 {
		return fmt.Errorf("horizontalRadius must not be negative, got %.3f", c.HorizontalRadius)
	}
	if c.VerticalRadius < 0 {
		return fmt.Errorf("verticalRadius must not be negative, got %.3f", c.VerticalRadius)
	}

	if c.AutomaticOrganizeHand {
		if c.MaxHorizontalRadius <= 0 {
			return fmt.Errorf("maxHorizontalRadius must be positive, got %.3f", c.MaxHorizontalRadius)
		}
		if c.MaxVerticalRadius <= 0 {
			return fmt.Errorf("maxVerticalRadius must be positive, got %.3f", c.MaxVerticalRadius)
		}
		if c.HorizontalRadiusGapModifier <= 0 {
			return fmt.Errorf("horizontalRadiusGapModifier must be positive, got %.3f", c.HorizontalRadiusGapModifier)
		}
		if c.VerticalRadiusGapModifier <= 0 {
			return fmt.Errorf("verticalRadiusGapModifier must be positive, got %.3f", c.VerticalRadiusGapModifier)
		}
	}

	return nil
}

// FocusPoint 返回给定手牌原点对应的焦点位置
func (c *HandLayoutConfig) FocusPoint(origin utils.Vec3) utils.Vec3 {
	return origin.Sub(c.AngleFocusOffset)
}
