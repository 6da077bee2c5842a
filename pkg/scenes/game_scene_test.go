package scenes

import (
	"math/rand"
	"testing"

	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
	"github.com/gonewx/flappyjungle/pkg/types"
)

// newTestScene 构造无窗口环境下可运行的测试场景
// 渲染相关的状态是惰性初始化的，只要不调用 Draw 就不需要显示环境
func newTestScene(t *testing.T) *GameScene {
	t.Helper()

	difficulty := &config.DifficultyConfig{
		Presets: []config.DifficultyPreset{
			{Name: "Normal", SpawnRate: 1.0, EnemySpeed: 1.0, Gravity: 1.0},
		},
		DefaultIndex: 0,
	}
	species := &config.SpeciesConfig{
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
	themes := &config.ThemeConfig{
		Stages: []config.ThemeStage{
			{Theme: "rainy", Threshold: 500, SpawnBoost: 1.25, EnemySpeedBoost: 1.15, Raindrops: 120},
		},
	}

	sceneManager := game.NewSceneManager()
	highScores := game.NewHighScoreManager(nil)
	rng := rand.New(rand.NewSource(42))

	return NewGameScene(game.NewResourceManager(), sceneManager, highScores, difficulty, species, themes, rng)
}

// TestNewGameScene 测试场景装配后的初始状态
func TestNewGameScene(t *testing.T) {
	s := newTestScene(t)
	sess := s.Session()

	if sess == nil {
		t.Fatal("Session() returned nil")
	}
	if sess.Phase != types.PhaseRunning {
		t.Errorf("Phase: got %v, want PhaseRunning", sess.Phase)
	}
	// 天气系统在装配时生成云层
	if len(sess.Clouds) == 0 || len(sess.BGClouds) == 0 {
		t.Errorf("Clouds not seeded: %d foreground, %d background", len(sess.Clouds), len(sess.BGClouds))
	}
}

// TestUpdateAdvancesSimulation 测试 Running 状态下模拟推进
func TestUpdateAdvancesSimulation(t *testing.T) {
	s := newTestScene(t)
	sess := s.Session()
	startY := sess.Bird.Y

	s.Update(1.0 / 60.0)

	if sess.Elapsed != 1.0/60.0 {
		t.Errorf("Elapsed: got %v, want %v", sess.Elapsed, 1.0/60.0)
	}
	// 重力生效，小鸟下落
	if sess.Bird.Y <= startY {
		t.Errorf("Bird Y should increase under gravity: got %v, started at %v", sess.Bird.Y, startY)
	}
}

// TestUpdatePausedFreezesSimulation 测试暂停状态下模拟冻结
func TestUpdatePausedFreezesSimulation(t *testing.T) {
	s := newTestScene(t)
	sess := s.Session()

	s.Update(1.0 / 60.0)
	sess.Phase = types.PhasePaused

	birdY := sess.Bird.Y
	elapsed := sess.Elapsed
	score := sess.Score

	for i := 0; i < 10; i++ {
		s.Update(1.0 / 60.0)
	}

	if sess.Bird.Y != birdY {
		t.Errorf("Bird Y changed while paused: got %v, want %v", sess.Bird.Y, birdY)
	}
	if sess.Elapsed != elapsed {
		t.Errorf("Elapsed advanced while paused: got %v, want %v", sess.Elapsed, elapsed)
	}
	if sess.Score != score {
		t.Errorf("Score changed while paused: got %d, want %d", sess.Score, score)
	}
}

// TestUpdateGameOverFreezesSimulation 测试游戏结束状态下模拟冻结、分数保留
func TestUpdateGameOverFreezesSimulation(t *testing.T) {
	s := newTestScene(t)
	sess := s.Session()

	sess.Score = 700
	sess.Phase = types.PhaseGameOver

	for i := 0; i < 10; i++ {
		s.Update(1.0 / 60.0)
	}

	if sess.Score != 700 {
		t.Errorf("Score changed in game over: got %d, want 700", sess.Score)
	}
	if len(sess.Enemies) != 0 {
		t.Errorf("Enemies spawned in game over: got %d", len(sess.Enemies))
	}
	if sess.Elapsed != 0 {
		t.Errorf("Elapsed advanced in game over: got %v", sess.Elapsed)
	}
}

// TestSaveOnExit 测试退出时保存最高分
func TestSaveOnExit(t *testing.T) {
	s := newTestScene(t)
	s.Session().Score = 900

	if !s.SaveOnExit() {
		t.Error("SaveOnExit should succeed in degraded storage mode")
	}
	if s.highScores.HighScore() != 900 {
		t.Errorf("HighScore after exit save: got %d, want 900", s.highScores.HighScore())
	}
}
