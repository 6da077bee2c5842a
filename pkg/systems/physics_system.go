package systems

import (
	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
)

// PhysicsSystem 处理每帧的运动积分
//
// 职责：
//   - 对激活角色施加重力并钳制在可活动区域内
//   - 推进所有子弹并回收过期/出界的子弹
//   - 推进所有敌人（水平移动 + 正弦摆动）并回收飞出左边界的敌人
//
// 架构说明：
//   - 集合采用快照过滤：在帧首集合上计算幸存者，帧末整体替换，
//     避免遍历中删除导致的迭代失效
type PhysicsSystem struct {
	session    *game.GameSession
	difficulty *config.DifficultyConfig
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(session *game.GameSession, difficulty *config.DifficultyConfig) *PhysicsSystem {
	return &PhysicsSystem{
		session:    session,
		difficulty: difficulty,
	}
}

// Update 推进一帧物理模拟
// deltaTime 已由调用方钳制到步长上限
func (s *PhysicsSystem) Update(deltaTime float64) {
	s.updatePlayer(deltaTime)
	s.updateProjectiles(deltaTime)
	s.updateEnemies(deltaTime)
}

// updatePlayer 对激活角色施加重力并钳制边界
// 重力按当前难度档位的重力系数缩放
func (s *PhysicsSystem) updatePlayer(dt float64) {
	player := s.session.ActivePlayer()
	preset := s.difficulty.Presets[s.session.DifficultyIndex]

	player.VY += config.Gravity * preset.Gravity * dt
	player.Y += player.VY * dt

	if player.Y < 0 {
		player.Y = 0
		player.VY = 0
	}
	floor := float64(config.GameWindowHeight - config.GroundOffset - player.H)
	if player.Y > floor {
		player.Y = floor
		player.VY = 0
	}
}

// updateProjectiles 推进子弹并回收
// Venom/SpecialVenom 到达存活时限后过期；所有子弹飞出右边界后回收
func (s *PhysicsSystem) updateProjectiles(dt float64) {
	survivors := s.session.Projectiles[:0]
	for _, p := range s.session.Projectiles {
		p.Update(dt)
		p.Age += dt
		if p.Expired() {
			continue
		}
		if p.X > config.GameWindowWidth {
			continue
		}
		survivors = append(survivors, p)
	}
	s.session.Projectiles = survivors
}

// updateEnemies 推进敌人并回收
// 摆动相位先推进（更新垂直位置），再做水平积分
func (s *PhysicsSystem) updateEnemies(dt float64) {
	survivors := s.session.Enemies[:0]
	for _, e := range s.session.Enemies {
		e.Bob(dt)
		e.Update(dt)
		if e.X+float64(e.W) < 0 {
			continue
		}
		survivors = append(survivors, e)
	}
	s.session.Enemies = survivors
}
