package systems

import (
	"math/rand"

	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
)

// 测试共用的配置构造函数
// 数值与嵌入的默认配置保持一致，便于对照公式验证

func testDifficultyConfig() *config.DifficultyConfig {
	return &config.DifficultyConfig{
		Presets: []config.DifficultyPreset{
			{Name: "Easy", SpawnRate: 0.8, EnemySpeed: 0.85, Gravity: 0.9},
			{Name: "Normal", SpawnRate: 1.0, EnemySpeed: 1.0, Gravity: 1.0},
			{Name: "Hard", SpawnRate: 1.2, EnemySpeed: 1.15, Gravity: 1.05},
		},
		DefaultIndex: 1,
	}
}

func testSpeciesConfig() *config.SpeciesConfig {
	return &config.SpeciesConfig{
		Species: map[string]config.SpeciesStats{
			"snake": {
				Width: 40, MinHeight: 18, MaxHeight: 26,
				Placement: config.PlacementGround,
				BaseSpeed: 120, SpeedJitter: 60,
			},
			"eagle": {
				Width: 44, MinHeight: 26, MaxHeight: 34,
				Placement: config.PlacementAir, MinY: 60, MaxY: 380,
				BaseSpeed: 180, SpeedJitter: 80,
				BobAmpMin: 10, BobAmpMax: 30, BobSpeedMin: 2, BobSpeedMax: 5,
			},
			"crocodile": {
				Width: 70, MinHeight: 24, MaxHeight: 32,
				Placement: config.PlacementGround,
				BaseSpeed: 90, SpeedJitter: 40,
			},
			"owl": {
				Width: 36, MinHeight: 28, MaxHeight: 36,
				Placement: config.PlacementAir, MinY: 80, MaxY: 420,
				BaseSpeed: 140, SpeedJitter: 50,
				BobAmpMin: 20, BobAmpMax: 45, BobSpeedMin: 1.5, BobSpeedMax: 4,
			},
		},
	}
}

func testThemeConfig() *config.ThemeConfig {
	return &config.ThemeConfig{
		Stages: []config.ThemeStage{
			{Theme: "rainy", Threshold: 500, SpawnBoost: 1.25, EnemySpeedBoost: 1.15, Raindrops: 120},
			{Theme: "sunny", Threshold: 1500, SpawnBoost: 1.0, EnemySpeedBoost: 1.0, Raindrops: 0},
		},
	}
}

// newTestSession 创建测试用会话，固定种子保证可重复
func newTestSession() (*game.GameSession, *rand.Rand) {
	return game.NewGameSession(testDifficultyConfig(), 0), rand.New(rand.NewSource(42))
}
