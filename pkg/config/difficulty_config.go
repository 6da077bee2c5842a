package config

import (
	"fmt"

	"github.com/gonewx/flappyjungle/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DifficultyPreset 离散难度档位
// 在按分数连续增长的难度系数之上，独立缩放刷怪频率、敌人速度和重力
type DifficultyPreset struct {
	Name       string  `yaml:"name"`       // 档位显示名称
	SpawnRate  float64 `yaml:"spawnRate"`  // 刷怪频率系数
	EnemySpeed float64 `yaml:"enemySpeed"` // 敌人速度系数
	Gravity    float64 `yaml:"gravity"`    // 重力系数
}

// DifficultyConfig 难度档位配置
type DifficultyConfig struct {
	Presets      []DifficultyPreset `yaml:"presets"`      // 可循环切换的档位列表
	DefaultIndex int                `yaml:"defaultIndex"` // 初始档位下标
}

// LoadDifficultyConfig 从嵌入资源加载难度档位配置
func LoadDifficultyConfig(path string) (*DifficultyConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty config: %w", err)
	}
	return ParseDifficultyConfig(data)
}

// ParseDifficultyConfig 解析并校验难度档位配置
func ParseDifficultyConfig(data []byte) (*DifficultyConfig, error) {
	var cfg DifficultyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty config YAML: %w", err)
	}

	if err := validateDifficultyConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid difficulty config: %w", err)
	}

	return &cfg, nil
}

// validateDifficultyConfig 验证配置的有效性
func validateDifficultyConfig(cfg *DifficultyConfig) error {
	if len(cfg.Presets) == 0 {
		return fmt.Errorf("presets cannot be empty")
	}

	for i, p := range cfg.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset %d: name cannot be empty", i)
		}
		if p.SpawnRate <= 0 {
			return fmt.Errorf("preset %q: spawnRate must be > 0, got %v", p.Name, p.SpawnRate)
		}
		if p.EnemySpeed <= 0 {
			return fmt.Errorf("preset %q: enemySpeed must be > 0, got %v", p.Name, p.EnemySpeed)
		}
		if p.Gravity <= 0 {
			return fmt.Errorf("preset %q: gravity must be > 0, got %v", p.Name, p.Gravity)
		}
	}

	if cfg.DefaultIndex < 0 || cfg.DefaultIndex >= len(cfg.Presets) {
		return fmt.Errorf("defaultIndex out of range: %d (have %d presets)", cfg.DefaultIndex, len(cfg.Presets))
	}

	return nil
}
