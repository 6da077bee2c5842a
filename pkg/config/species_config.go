package config

import (
	"fmt"

	"github.com/gonewx/flappyjungle/pkg/embedded"
	"github.com/gonewx/flappyjungle/pkg/types"
	"gopkg.in/yaml.v3"
)

// 物种落点类型
const (
	PlacementGround = "ground" // 贴地生成
	PlacementAir    = "air"    // 空中随机高度生成
)

// SpeciesStats 单个敌人物种的生成属性
type SpeciesStats struct {
	Width       int     `yaml:"width"`       // 固定宽度（像素）
	MinHeight   int     `yaml:"minHeight"`   // 随机高度下限（像素）
	MaxHeight   int     `yaml:"maxHeight"`   // 随机高度上限（像素）
	Placement   string  `yaml:"placement"`   // ground 或 air
	MinY        int     `yaml:"minY"`        // 空中生成的Y下限（仅 air）
	MaxY        int     `yaml:"maxY"`        // 空中生成的Y上限（仅 air）
	BaseSpeed   float64 `yaml:"baseSpeed"`   // 基础水平速度（像素/秒）
	SpeedJitter float64 `yaml:"speedJitter"` // 速度随机增量上限
	BobAmpMin   float64 `yaml:"bobAmpMin"`   // 摆动幅度下限
	BobAmpMax   float64 `yaml:"bobAmpMax"`   // 摆动幅度上限
	BobSpeedMin float64 `yaml:"bobSpeedMin"` // 摆动速度下限
	BobSpeedMax float64 `yaml:"bobSpeedMax"` // 摆动速度上限
}

// SpeciesConfig 全部敌人物种的属性配置
type SpeciesConfig struct {
	Species map[string]SpeciesStats `yaml:"species"` // 物种键名 -> 属性
}

// LoadSpeciesConfig 从嵌入资源加载物种属性配置
func LoadSpeciesConfig(path string) (*SpeciesConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read species config: %w", err)
	}
	return ParseSpeciesConfig(data)
}

// ParseSpeciesConfig 解析并校验物种属性配置
func ParseSpeciesConfig(data []byte) (*SpeciesConfig, error) {
	var cfg SpeciesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse species config YAML: %w", err)
	}

	if err := validateSpeciesConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid species config: %w", err)
	}

	return &cfg, nil
}

// Stats 返回指定物种的属性
func (c *SpeciesConfig) Stats(species types.EnemySpecies) (SpeciesStats, bool) {
	stats, ok := c.Species[species.String()]
	return stats, ok
}

// validateSpeciesConfig 验证配置的有效性
// 四个物种必须齐全，否则均匀抽取无法覆盖所有区间
func validateSpeciesConfig(cfg *SpeciesConfig) error {
	required := []types.EnemySpecies{
		types.SpeciesSnake, types.SpeciesEagle, types.SpeciesCrocodile, types.SpeciesOwl,
	}
	for _, sp := range required {
		stats, ok := cfg.Species[sp.String()]
		if !ok {
			return fmt.Errorf("missing species %q", sp)
		}
		if stats.Width <= 0 {
			return fmt.Errorf("species %q: width must be > 0, got %d", sp, stats.Width)
		}
		if stats.MinHeight <= 0 || stats.MaxHeight < stats.MinHeight {
			return fmt.Errorf("species %q: invalid height range [%d, %d]", sp, stats.MinHeight, stats.MaxHeight)
		}
		switch stats.Placement {
		case PlacementGround:
		case PlacementAir:
			if stats.MaxY < stats.MinY {
				return fmt.Errorf("species %q: invalid Y range [%d, %d]", sp, stats.MinY, stats.MaxY)
			}
		default:
			return fmt.Errorf("species %q: unknown placement %q", sp, stats.Placement)
		}
		if stats.BaseSpeed <= 0 {
			return fmt.Errorf("species %q: baseSpeed must be > 0, got %v", sp, stats.BaseSpeed)
		}
		if stats.SpeedJitter < 0 {
			return fmt.Errorf("species %q: speedJitter must be >= 0, got %v", sp, stats.SpeedJitter)
		}
		if stats.BobAmpMax < stats.BobAmpMin || stats.BobSpeedMax < stats.BobSpeedMin {
			return fmt.Errorf("species %q: invalid bobbing ranges", sp)
		}
	}
	return nil
}
