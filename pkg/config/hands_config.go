package config

import (
	"fmt"
	"os"

	"github.com/decker502/cardhand/pkg/utils"
	"gopkg.in/yaml.v3"
)

// HandsConfig 演示场景配置
//
// 描述场景中有哪些手牌、新卡牌的生成位置和添加卡牌的补间时长。
//
// 配置文件位置: data/hands.yaml
type HandsConfig struct {
	// Hands 手牌列表，至少一个
	Hands []HandEntry `yaml:"hands"`

	// Spawn 新卡牌生成位置（世界坐标）
	Spawn utils.Vec3 `yaml:"spawn"`

	// AddDuration 添加卡牌时的补间时长（秒）
	AddDuration float64 `yaml:"addDuration"`
}

// HandEntry 单个手牌的配置
type HandEntry struct {
	// Name 手牌名称，用于日志和事件输出
	Name string `yaml:"name"`

	// X, Y 手牌原点（世界坐标）
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Layout 椭圆布局参数
	Layout HandLayoutConfig `yaml:"layout"`
}

// UnmarshalYAML 没有 layout 键时使用默认布局
func (e *HandEntry) UnmarshalYAML(value *yaml.Node) error {
	type rawHandEntry HandEntry
	raw := rawHandEntry{Layout: DefaultHandLayoutConfig()}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*e = HandEntry(raw)
	return nil
}

// LoadHandsConfig 从磁盘加载手牌场景配置
//
// 参数:
//   - path: 配置文件路径（如 "data/hands.yaml"）
//
// 返回:
//   - *HandsConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadHandsConfig(path string) (*HandsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hands config: %w", err)
	}
	return ParseHandsConfig(data)
}

// ParseHandsConfig 解析 YAML 格式的手牌场景配置（用于嵌入资源）
func ParseHandsConfig(data []byte) (*HandsConfig, error) {
	cfg := HandsConfig{AddDuration: DefaultAddCardDuration}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hands config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hands config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 至少配置一个手牌
//   - 手牌名称非空且不重复
//   - 每个手牌的布局配置有效
//   - 补间时长不为负
func (c *HandsConfig) Validate() error {
	if len(c.Hands) == 0 {
		return fmt.Errorf("at least one hand is required")
	}

	seen := make(map[string]bool, len(c.Hands))
	for i := range c.Hands {
		hand := &c.Hands[i]
		if hand.Name == "" {
			return fmt.Errorf("hands[%d]: name is required", i)
		}
		if seen[hand.Name] {
			return fmt.Errorf("hands[%d]: duplicate name %q", i, hand.Name)
		}
		seen[hand.Name] = true

		if err := hand.Layout.Validate(); err != nil {
			return fmt.Errorf("hand %q: %w", hand.Name, err)
		}
	}

	if c.AddDuration < 0 {
		return fmt.Errorf("addDuration must not be negative, got %.3f", c.AddDuration)
	}

	return nil
}
