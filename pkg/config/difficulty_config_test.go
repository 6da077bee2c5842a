package config

import (
	"testing"
)

// TestParseDifficultyConfig 测试难度档位配置的解析
func TestParseDifficultyConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		validYAML := `presets:
  - name: Easy
    spawnRate: 0.8
    enemySpeed: 0.85
    gravity: 0.9
  - name: Normal
    spawnRate: 1.0
    enemySpeed: 1.0
    gravity: 1.0
defaultIndex: 1
`
		cfg, err := ParseDifficultyConfig([]byte(validYAML))
		if err != nil {
			t.Fatalf("ParseDifficultyConfig() failed: %v", err)
		}

		if len(cfg.Presets) != 2 {
			t.Fatalf("Expected 2 presets, got %d", len(cfg.Presets))
		}
		if cfg.Presets[0].Name != "Easy" {
			t.Errorf("Preset 0 name: got %q, want \"Easy\"", cfg.Presets[0].Name)
		}
		if cfg.Presets[0].SpawnRate != 0.8 {
			t.Errorf("Preset 0 spawnRate: got %v, want 0.8", cfg.Presets[0].SpawnRate)
		}
		if cfg.DefaultIndex != 1 {
			t.Errorf("DefaultIndex: got %d, want 1", cfg.DefaultIndex)
		}
	})

	t.Run("empty presets rejected", func(t *testing.T) {
		if _, err := ParseDifficultyConfig([]byte("presets: []\ndefaultIndex: 0\n")); err == nil {
			t.Error("Expected error for empty presets")
		}
	})

	t.Run("non-positive spawnRate rejected", func(t *testing.T) {
		badYAML := `presets:
  - name: Broken
    spawnRate: 0
    enemySpeed: 1.0
    gravity: 1.0
defaultIndex: 0
`
		if _, err := ParseDifficultyConfig([]byte(badYAML)); err == nil {
			t.Error("Expected error for spawnRate = 0")
		}
	})

	t.Run("defaultIndex out of range rejected", func(t *testing.T) {
		badYAML := `presets:
  - name: Normal
    spawnRate: 1.0
    enemySpeed: 1.0
    gravity: 1.0
defaultIndex: 5
`
		if _, err := ParseDifficultyConfig([]byte(badYAML)); err == nil {
			t.Error("Expected error for out-of-range defaultIndex")
		}
	})

	t.Run("malformed YAML rejected", func(t *testing.T) {
		if _, err := ParseDifficultyConfig([]byte("presets: [unclosed")); err == nil {
			t.Error("Expected error for malformed YAML")
		}
	})
}
