package config

import (
	"fmt"

	"github.com/gonewx/flappyjungle/pkg/embedded"
	"github.com/gonewx/flappyjungle/pkg/types"
	"gopkg.in/yaml.v3"
)

// ThemeStage 主题序列中的一个阶段
// 达到 Threshold 分数后切换到该主题并应用其难度系数
type ThemeStage struct {
	Theme           string  `yaml:"theme"`           // 主题名称（sunny / rainy）
	Threshold       int     `yaml:"threshold"`       // 触发分数阈值
	SpawnBoost      float64 `yaml:"spawnBoost"`      // 刷怪频率系数
	EnemySpeedBoost float64 `yaml:"enemySpeedBoost"` // 敌人速度系数
	Raindrops       int     `yaml:"raindrops"`       // 雨滴池大小（0 表示清空）
}

// ThemeConfig 主题阶段序列配置
type ThemeConfig struct {
	Stages []ThemeStage `yaml:"stages"`
}

// LoadThemeConfig 从嵌入资源加载主题序列配置
func LoadThemeConfig(path string) (*ThemeConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme config: %w", err)
	}
	return ParseThemeConfig(data)
}

// ParseThemeConfig 解析并校验主题序列配置
func ParseThemeConfig(data []byte) (*ThemeConfig, error) {
	var cfg ThemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme config YAML: %w", err)
	}

	if err := validateThemeConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid theme config: %w", err)
	}

	return &cfg, nil
}

// validateThemeConfig 验证配置的有效性
// 阈值必须严格递增，保证阶段只会单向前进
func validateThemeConfig(cfg *ThemeConfig) error {
	prev := -1
	for i, stage := range cfg.Stages {
		if _, ok := types.ParseTheme(stage.Theme); !ok {
			return fmt.Errorf("stage %d: unknown theme %q", i, stage.Theme)
		}
		if stage.Threshold <= prev {
			return fmt.Errorf("stage %d: threshold %d must be greater than previous %d", i, stage.Threshold, prev)
		}
		if stage.SpawnBoost <= 0 || stage.EnemySpeedBoost <= 0 {
			return fmt.Errorf("stage %d: boosts must be > 0", i)
		}
		if stage.Raindrops < 0 {
			return fmt.Errorf("stage %d: raindrops must be >= 0, got %d", i, stage.Raindrops)
		}
		prev = stage.Threshold
	}
	return nil
}
