// Package scenes 实现具体的游戏场景
package scenes

import (
	"log"
	"math/rand"

	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
	"github.com/gonewx/flappyjungle/pkg/systems"
	"github.com/gonewx/flappyjungle/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// birdAnimInterval 小鸟拍翅动画帧间隔（秒）
const birdAnimInterval = 0.12

// GameScene 游戏主场景
//
// 持有一局游戏的会话和全部系统，负责按固定顺序驱动每帧更新：
// 输入 → 物理积分 → 刷怪 → 战斗结算 → 进度 → 粒子 → 相机 → 天气。
// Paused 和 GameOver 状态下跳过输入之外的所有更新，但仍然渲染。
type GameScene struct {
	session      *game.GameSession
	resources    *game.ResourceManager
	sceneManager *game.SceneManager
	highScores   *game.HighScoreManager
	difficulty   *config.DifficultyConfig

	input       *systems.InputSystem
	physics     *systems.PhysicsSystem
	weapons     *systems.WeaponSystem
	spawner     *systems.SpawnSystem
	combat      *systems.CombatSystem
	progression *systems.ProgressionSystem
	particles   *systems.ParticleSystem
	weather     *systems.WeatherSystem
	camera      *systems.CameraSystem

	// 渲染状态
	skyImage      *ebiten.Image // 预渲染的天空渐变（首帧惰性构建）
	birdFrame     int
	birdAnimTimer float64
}

// NewGameScene 创建游戏场景并装配全部系统
func NewGameScene(
	resources *game.ResourceManager,
	sceneManager *game.SceneManager,
	highScores *game.HighScoreManager,
	difficulty *config.DifficultyConfig,
	species *config.SpeciesConfig,
	themes *config.ThemeConfig,
	rng *rand.Rand,
) *GameScene {
	session := game.NewGameSession(difficulty, highScores.HighScore())

	particles := systems.NewParticleSystem(session, rng)
	weapons := systems.NewWeaponSystem(session)

	s := &GameScene{
		session:      session,
		resources:    resources,
		sceneManager: sceneManager,
		highScores:   highScores,
		difficulty:   difficulty,
		input:        systems.NewInputSystem(session, weapons, difficulty, highScores),
		physics:      systems.NewPhysicsSystem(session, difficulty),
		weapons:      weapons,
		spawner:      systems.NewSpawnSystem(session, species, difficulty, rng),
		combat:       systems.NewCombatSystem(session, particles),
		progression:  systems.NewProgressionSystem(session, themes, rng),
		particles:    particles,
		weather:      systems.NewWeatherSystem(session, rng),
		camera:       systems.NewCameraSystem(session, rng),
	}

	log.Printf("[GameScene] New session (high score %d)", session.HighScore)
	return s
}

// Session 返回场景持有的游戏会话
func (s *GameScene) Session() *game.GameSession {
	return s.session
}

// Update 推进一帧
// deltaTime 已由 App 钳制到步长上限
func (s *GameScene) Update(deltaTime float64) {
	s.input.Update(deltaTime)

	// 暂停和结束状态跳过模拟，仍然渲染
	if s.session.Phase != types.PhaseRunning {
		return
	}

	// 冷却以累计模拟时间为基准，暂停期间不计入
	s.session.Elapsed += deltaTime

	s.physics.Update(deltaTime)
	s.spawner.Update(deltaTime)
	s.combat.Update(deltaTime)
	s.progression.Update(deltaTime)
	s.particles.Update(deltaTime)
	s.camera.Update(deltaTime)
	s.weather.Update(deltaTime)

	s.updateAnimation(deltaTime)
}

// updateAnimation 推进小鸟拍翅动画帧
// 帧序号同时驱动精灵轮换和程序化绘制的翅膀摆动
func (s *GameScene) updateAnimation(dt float64) {
	if s.session.ActiveKind != types.PlayerBird {
		return
	}
	s.birdAnimTimer += dt
	if s.birdAnimTimer > birdAnimInterval {
		s.birdAnimTimer = 0
		s.birdFrame = (s.birdFrame + 1) % 3
	}
}

// Draw 渲染整个场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	offX, offY := s.camera.Offset()
	s.drawWorld(screen, offX, offY)

	s.drawHUD(screen)
}

// SaveOnExit 在窗口关闭时保存最高分
// 当前局分数超过纪录时写回，保证中途退出不丢纪录
func (s *GameScene) SaveOnExit() bool {
	if err := s.highScores.Save(s.session.Score); err != nil {
		log.Printf("[GameScene] Warning: failed to save high score on exit: %v", err)
		return false
	}
	return true
}
