package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/flappyjungle/pkg/components"
	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
	"github.com/gonewx/flappyjungle/pkg/types"
)

// ProgressionSystem 管理分数驱动的进度状态
//
// 职责：
//   - 每帧从分数重新推导连续难度系数（连续而非阶梯式）
//   - 连击窗口倒计时，超时清零连击
//   - 按分数阈值单向推进主题阶段，应用主题的刷怪/速度系数，
//     并在进入雨天时生成固定大小的雨滴池（离开雨天时清空）
type ProgressionSystem struct {
	session *game.GameSession
	themes  *config.ThemeConfig
	rng     *rand.Rand
}

// NewProgressionSystem 创建进度系统
func NewProgressionSystem(session *game.GameSession, themes *config.ThemeConfig, rng *rand.Rand) *ProgressionSystem {
	return &ProgressionSystem{
		session: session,
		themes:  themes,
		rng:     rng,
	}
}

// Update 推进一帧进度状态
func (s *ProgressionSystem) Update(deltaTime float64) {
	sess := s.session

	// 连续难度：每帧由分数精确推导
	sess.DifficultyMultiplier = 1.0 + float64(sess.Score)/config.ScoreDifficultyDivisor

	s.checkThemeTransition()

	// 连击窗口倒计时
	sess.ComboTimer -= deltaTime
	if sess.ComboTimer <= 0 {
		sess.Combo = 0
	}
}

// checkThemeTransition 检查并应用主题阶段切换
//
// 阶段指针只前进不回退，因此每个阈值只会触发一次；
// 分数保持在阈值之上不会重复触发（雨滴池不会被重复生成）
func (s *ProgressionSystem) checkThemeTransition() {
	sess := s.session
	if sess.ThemeStage >= len(s.themes.Stages) {
		return
	}

	stage := s.themes.Stages[sess.ThemeStage]
	if sess.Score < stage.Threshold {
		return
	}

	theme, _ := types.ParseTheme(stage.Theme)
	sess.Theme = theme
	sess.ThemeSpawnBoost = stage.SpawnBoost
	sess.ThemeSpeedBoost = stage.EnemySpeedBoost

	if stage.Raindrops > 0 {
		s.fillRaindropPool(stage.Raindrops)
	} else {
		sess.Raindrops = nil
	}

	sess.ThemeStage++
	log.Printf("[Progression] Theme stage %d: %s (spawn x%.2f, speed x%.2f)",
		sess.ThemeStage, stage.Theme, stage.SpawnBoost, stage.EnemySpeedBoost)
}

// fillRaindropPool 生成固定大小的雨滴池
// 初始高度分布在画布上方一个屏幕的范围内，避免同时落地
func (s *ProgressionSystem) fillRaindropPool(count int) {
	drops := make([]*components.Raindrop, 0, count)
	for i := 0; i < count; i++ {
		drops = append(drops, &components.Raindrop{
			X: s.rng.Float64() * config.GameWindowWidth,
			Y: -s.rng.Float64() * config.GameWindowHeight,
			V: 200 + s.rng.Float64()*200,
		})
	}
	s.session.Raindrops = drops
}
