package systems

import (
	"math/rand"

	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
)

// CameraSystem 管理相机抖动
//
// 抖动强度由战斗和特殊攻击触发，按固定速率衰减到零；
// 渲染时每帧在 [-强度, +强度] 内随机取偏移量叠加到世界绘制变换上
type CameraSystem struct {
	session *game.GameSession
	rng     *rand.Rand
}

// NewCameraSystem 创建相机系统
func NewCameraSystem(session *game.GameSession, rng *rand.Rand) *CameraSystem {
	return &CameraSystem{
		session: session,
		rng:     rng,
	}
}

// Update 衰减抖动强度
func (s *CameraSystem) Update(deltaTime float64) {
	shake := s.session.CameraShake - config.CameraShakeDecay*deltaTime
	if shake < 0 {
		shake = 0
	}
	s.session.CameraShake = shake
}

// Offset 采样当前帧的抖动偏移量
// 无抖动时返回 (0, 0)
func (s *CameraSystem) Offset() (float64, float64) {
	shake := s.session.CameraShake
	if shake <= 0 {
		return 0, 0
	}
	dx := (s.rng.Float64()*2 - 1) * shake
	dy := (s.rng.Float64()*2 - 1) * shake
	return dx, dy
}
