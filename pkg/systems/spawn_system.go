package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/flappyjungle/pkg/components"
	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
	"github.com/gonewx/flappyjungle/pkg/types"
)

// 刷怪间隔参数
const (
	// spawnBaseMin 基础间隔下限（秒）
	spawnBaseMin = 0.6
	// spawnBaseStart 零分时的基础间隔（秒）
	spawnBaseStart = 1.2
	// spawnScoreDivisor 分数每增加多少使基础间隔减少 1 秒
	spawnScoreDivisor = 1000.0
	// spawnIntervalFloor 最终间隔的硬下限（秒），防止高难度下刷怪失控
	spawnIntervalFloor = 0.18
)

// SpawnSystem 按概率和计时刷出敌人
//
// 每帧累加刷怪计时器，超过按分数和难度推算的间隔时刷出一只敌人并清零计时器。
// 物种由单次均匀抽取决定，四个物种各占 1/4 区间，
// 各物种的尺寸、落点、速度、摆动参数来自 species 配置。
type SpawnSystem struct {
	session    *game.GameSession
	species    *config.SpeciesConfig
	difficulty *config.DifficultyConfig
	rng        *rand.Rand
}

// NewSpawnSystem 创建刷怪系统
// rng 由调用方注入，便于测试时使用固定种子
func NewSpawnSystem(session *game.GameSession, species *config.SpeciesConfig, difficulty *config.DifficultyConfig, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{
		session:    session,
		species:    species,
		difficulty: difficulty,
		rng:        rng,
	}
}

// Update 推进刷怪计时器，到期时刷出一只敌人
func (s *SpawnSystem) Update(deltaTime float64) {
	s.session.SpawnTimer += deltaTime
	if s.session.SpawnTimer > s.spawnInterval() {
		s.session.SpawnTimer = 0
		s.SpawnEnemy()
	}
}

// spawnInterval 计算当前刷怪间隔（秒）
//
// base = max(0.6, 1.2 - score/1000)
// interval = max(0.18, base / (preset.spawnRate * themeSpawnBoost))
func (s *SpawnSystem) spawnInterval() float64 {
	sess := s.session
	base := math.Max(spawnBaseMin, spawnBaseStart-float64(sess.Score)/spawnScoreDivisor)
	rateMul := s.difficulty.Presets[sess.DifficultyIndex].SpawnRate * sess.ThemeSpawnBoost
	return math.Max(spawnIntervalFloor, base/rateMul)
}

// SpawnEnemy 立即刷出一只随机物种的敌人
func (s *SpawnSystem) SpawnEnemy() {
	species := s.rollSpecies()
	stats, ok := s.species.Stats(species)
	if !ok {
		log.Printf("[Spawn] ERROR: no stats for species %v", species)
		return
	}

	h := stats.MinHeight + s.rng.Intn(stats.MaxHeight-stats.MinHeight+1)
	var y float64
	if stats.Placement == config.PlacementGround {
		y = float64(config.GameWindowHeight - config.GroundOffset - h)
	} else {
		y = float64(stats.MinY + s.rng.Intn(stats.MaxY-stats.MinY+1))
	}

	speed := stats.BaseSpeed + s.rng.Float64()*stats.SpeedJitter
	vx := -speed * s.speedFactor()

	enemy := &components.Enemy{
		Entity:   components.NewEntity(config.GameWindowWidth, y, stats.Width, h, vx, 0),
		Species:  species,
		BaseY:    y,
		BobAmp:   stats.BobAmpMin + s.rng.Float64()*(stats.BobAmpMax-stats.BobAmpMin),
		BobSpeed: stats.BobSpeedMin + s.rng.Float64()*(stats.BobSpeedMax-stats.BobSpeedMin),
	}
	s.session.Enemies = append(s.session.Enemies, enemy)
}

// rollSpecies 单次均匀抽取，按四等分区间选择物种
func (s *SpawnSystem) rollSpecies() types.EnemySpecies {
	t := s.rng.Float64()
	switch {
	case t < 0.25:
		return types.SpeciesSnake
	case t < 0.50:
		return types.SpeciesEagle
	case t < 0.75:
		return types.SpeciesCrocodile
	default:
		return types.SpeciesOwl
	}
}

// speedFactor 计算敌人速度的总缩放系数
// 连续难度的影响衰减至 30%，再叠加档位和主题系数
func (s *SpawnSystem) speedFactor() float64 {
	sess := s.session
	preset := s.difficulty.Presets[sess.DifficultyIndex]
	return (1.0 + (sess.DifficultyMultiplier-1.0)*0.3) * preset.EnemySpeed * sess.ThemeSpeedBoost
}
