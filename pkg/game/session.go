package game

import (
	"github.com/gonewx/flappyjungle/pkg/components"
	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/types"
)

// GameSession 持有一局游戏的全部可变状态
//
// 架构说明：
//   - 所有可变集合（子弹、敌人、粒子、雨滴、云层）由 GameSession 独占所有，
//     实体之间不互相引用，碰撞结算通过遍历查找
//   - 没有全局单例，会话实例由 GameScene 创建并显式传入各系统
//   - 单线程协作式执行，只在更新循环中修改，无需加锁
type GameSession struct {
	// 角色：两个角色常驻，同一时刻只有一个激活
	Bird       *components.Player
	Snake      *components.Player
	ActiveKind types.PlayerKind

	// 活动实体集合
	Projectiles []*components.Projectile
	Enemies     []*components.Enemy
	Particles   []*components.Particle
	Raindrops   []*components.Raindrop

	// 背景装饰（前景云和远景云）
	Clouds   []*components.Cloud
	BGClouds []*components.Cloud

	// 进度状态
	Score                int
	Combo                int
	ComboTimer           float64 // 连击剩余窗口（秒）
	DifficultyIndex      int     // 当前离散难度档位下标
	DifficultyMultiplier float64 // 连续难度系数 = 1 + score/5000
	HighScore            int

	// 主题状态
	Theme           types.Theme
	ThemeStage      int // 主题序列的下一个待触发阶段下标，只前进不回退
	ThemeSpawnBoost float64
	ThemeSpeedBoost float64

	// 循环状态
	Phase         types.GamePhase
	Elapsed       float64 // 累计模拟时间（秒），冷却以此为基准
	SpawnTimer    float64 // 刷怪计时器
	LastShot      float64 // 上次主武器射击的模拟时刻
	LastSpecial   float64 // 上次特殊攻击的模拟时刻
	CameraShake   float64 // 当前相机抖动强度
	QuitRequested bool    // 请求退出进程
}

// NewGameSession 创建一局新游戏的会话
// 初始状态：小鸟角色激活、晴天主题、Running 阶段
func NewGameSession(difficulty *config.DifficultyConfig, highScore int) *GameSession {
	s := &GameSession{
		Bird: &components.Player{
			Entity: components.NewEntity(config.PlayerSpawnX, config.PlayerSpawnY, 34, 24, 0, 0),
			Kind:   types.PlayerBird,
		},
		Snake: &components.Player{
			Entity: components.NewEntity(config.PlayerSpawnX, config.PlayerSpawnY, 40, 20, 0, 0),
			Kind:   types.PlayerSnake,
		},
		ActiveKind:           types.PlayerBird,
		DifficultyIndex:      difficulty.DefaultIndex,
		DifficultyMultiplier: 1.0,
		HighScore:            highScore,
		Theme:                types.ThemeSunny,
		ThemeSpawnBoost:      1.0,
		ThemeSpeedBoost:      1.0,
		Phase:                types.PhaseRunning,
		// 负值保证开局第一次射击/特殊攻击不被冷却拦截
		LastShot:    -10.0,
		LastSpecial: -10.0,
	}
	return s
}

// ActivePlayer 返回当前激活的角色
func (s *GameSession) ActivePlayer() *components.Player {
	if s.ActiveKind == types.PlayerSnake {
		return s.Snake
	}
	return s.Bird
}

// ToggleCharacter 在小鸟和蛇之间切换角色
// 切换不保留速度，角色归位到出生点
func (s *GameSession) ToggleCharacter() {
	if s.ActiveKind == types.PlayerBird {
		s.ActiveKind = types.PlayerSnake
	} else {
		s.ActiveKind = types.PlayerBird
	}
	s.ActivePlayer().ResetTo(config.PlayerSpawnX, config.PlayerSpawnY)
}

// TogglePause 在 Running 和 Paused 之间切换
// GameOver 状态下无效
func (s *GameSession) TogglePause() {
	switch s.Phase {
	case types.PhaseRunning:
		s.Phase = types.PhasePaused
	case types.PhasePaused:
		s.Phase = types.PhaseRunning
	}
}

// TriggerShake 触发相机抖动
func (s *GameSession) TriggerShake(intensity float64) {
	s.CameraShake = intensity
}

// PrimaryProjectileCount 返回当前在场的主武器子弹数
// 特殊攻击的子弹不计入弹药上限
func (s *GameSession) PrimaryProjectileCount() int {
	n := 0
	for _, p := range s.Projectiles {
		if p.IsPrimary() {
			n++
		}
	}
	return n
}

// SpecialReady 返回特殊攻击是否已冷却完毕
func (s *GameSession) SpecialReady() bool {
	return s.Elapsed-s.LastSpecial >= config.SpecialCooldown
}

// SpecialCooldownRemaining 返回特殊攻击剩余冷却时间（秒），就绪时为 0
func (s *GameSession) SpecialCooldownRemaining() float64 {
	remaining := config.SpecialCooldown - (s.Elapsed - s.LastSpecial)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset 重新开始一局
//
// 清空所有瞬态集合，归零分数/连击/抖动，角色归位，连续难度回到基线。
// 主题阶段和对应的雨滴池刻意保留（阶段只前进不回退）。
// 返回本局是否刷新了最高分（调用方负责持久化）。
func (s *GameSession) Reset() bool {
	newRecord := false
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		newRecord = true
	}

	s.Projectiles = s.Projectiles[:0]
	s.Enemies = s.Enemies[:0]
	s.Particles = s.Particles[:0]

	s.Score = 0
	s.Combo = 0
	s.ComboTimer = 0
	s.SpawnTimer = 0
	s.CameraShake = 0
	s.DifficultyMultiplier = 1.0

	s.Bird.ResetTo(config.PlayerSpawnX, config.PlayerSpawnY)
	s.Snake.ResetTo(config.PlayerSpawnX, config.PlayerSpawnY)

	s.Phase = types.PhaseRunning
	return newRecord
}
