package systems

import (
	"log"

	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
	"github.com/gonewx/flappyjungle/pkg/types"
)

// 战斗结算参数
const (
	// KillBaseScore 单次击杀的基础分
	KillBaseScore = 100
	// ComboScoreStep 每层额外连击的得分加成系数
	ComboScoreStep = 0.2
	// DeathShakeIntensity 玩家被撞时的相机抖动强度
	DeathShakeIntensity = 8.0
	// KillShakeIntensity 击杀敌人时的相机抖动强度
	KillShakeIntensity = 3.0
)

// CombatSystem 碰撞检测与结算
//
// 每帧在帧首集合的快照上结算：
//   - 敌人与激活角色相交 → 立即进入 GameOver（单点生命，无血量缓冲），
//     连击清零并触发强相机抖动；本帧剩余的子弹命中仍照常结算
//   - 敌人与子弹相交 → 按插入顺序扫描：子弹被它命中的第一只敌人消耗；
//     每只敌人无论被几发子弹命中，击杀只记一次（一次连击、一次计分、
//     一次爆裂），多余命中只消耗子弹
//
// 幸存集合在结算完成后整体替换，保证同帧多重命中语义确定
type CombatSystem struct {
	session   *game.GameSession
	particles *ParticleSystem
}

// NewCombatSystem 创建战斗结算系统
func NewCombatSystem(session *game.GameSession, particles *ParticleSystem) *CombatSystem {
	return &CombatSystem{
		session:   session,
		particles: particles,
	}
}

// Update 结算本帧所有碰撞
func (s *CombatSystem) Update(deltaTime float64) {
	sess := s.session
	player := sess.ActivePlayer()

	enemies := sess.Enemies
	projectiles := sess.Projectiles
	killed := make([]bool, len(enemies))
	consumed := make([]bool, len(projectiles))

	for i, enemy := range enemies {
		if enemy.Intersects(&player.Entity) {
			sess.Phase = types.PhaseGameOver
			sess.Combo = 0
			sess.TriggerShake(DeathShakeIntensity)
			log.Printf("[Combat] Player hit by %v, game over at score %d", enemy.Species, sess.Score)
		}

		for j, proj := range projectiles {
			if consumed[j] {
				continue
			}
			if !enemy.Intersects(&proj.Entity) {
				continue
			}
			consumed[j] = true
			if killed[i] {
				continue
			}
			killed[i] = true
			s.creditKill(i)
		}
	}

	s.filterKilled(killed, consumed)
}

// creditKill 结算一次击杀：连击、计分、爆裂粒子、相机抖动
// 得分 = floor(100 * (1 + (combo-1) * 0.2))
func (s *CombatSystem) creditKill(enemyIndex int) {
	sess := s.session
	enemy := sess.Enemies[enemyIndex]

	sess.Combo++
	sess.ComboTimer = config.ComboWindow
	multiplier := 1.0 + float64(sess.Combo-1)*ComboScoreStep
	sess.Score += int(KillBaseScore * multiplier)

	s.particles.SpawnBurst(enemy.CenterX(), enemy.CenterY(), SpeciesColor(enemy.Species), BurstParticleCount)
	sess.TriggerShake(KillShakeIntensity)
}

// filterKilled 用幸存者替换敌人和子弹集合
func (s *CombatSystem) filterKilled(killed, consumed []bool) {
	sess := s.session

	enemies := sess.Enemies[:0]
	for i, e := range sess.Enemies {
		if !killed[i] {
			enemies = append(enemies, e)
		}
	}
	sess.Enemies = enemies

	projectiles := sess.Projectiles[:0]
	for j, p := range sess.Projectiles {
		if !consumed[j] {
			projectiles = append(projectiles, p)
		}
	}
	sess.Projectiles = projectiles
}
