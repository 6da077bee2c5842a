package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/flappyjungle/pkg/components"
	"github.com/gonewx/flappyjungle/pkg/game"
)

// 爆裂粒子参数
const (
	// BurstParticleCount 每次击杀生成的粒子数
	BurstParticleCount = 6
	// burstSpeedMin 粒子初速下限（像素/秒）
	burstSpeedMin = 80.0
	// burstSpeedMax 粒子初速上限（像素/秒）
	burstSpeedMax = 200.0
	// burstLifetime 爆裂粒子存活时间（秒）
	burstLifetime = 0.5
	// burstSize 爆裂粒子绘制半径（像素）
	burstSize = 4.0
	// sparkleChance 粒子使用高亮火花颜色的概率
	sparkleChance = 0.3
)

// sparkleColor 火花粒子的高亮颜色
var sparkleColor = color.RGBA{R: 255, G: 255, B: 200, A: 255}

// ParticleSystem 管理纯装饰性的爆裂粒子
// 粒子不参与碰撞，只影响画面
type ParticleSystem struct {
	session *game.GameSession
	rng     *rand.Rand
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(session *game.GameSession, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		session: session,
		rng:     rng,
	}
}

// SpawnBurst 在 (x, y) 处生成一簇向四周飞散的粒子
// 粒子方向均匀随机，约三成使用高亮火花颜色
func (s *ParticleSystem) SpawnBurst(x, y float64, clr color.RGBA, count int) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := burstSpeedMin + s.rng.Float64()*(burstSpeedMax-burstSpeedMin)
		pColor := clr
		if s.rng.Float64() < sparkleChance {
			pColor = sparkleColor
		}
		s.session.Particles = append(s.session.Particles, &components.Particle{
			X:        x,
			Y:        y,
			VX:       speed * math.Cos(angle),
			VY:       speed * math.Sin(angle),
			Color:    pColor,
			Lifetime: burstLifetime,
			Size:     burstSize,
		})
	}
}

// Update 推进所有粒子并回收寿终的粒子
func (s *ParticleSystem) Update(deltaTime float64) {
	survivors := s.session.Particles[:0]
	for _, p := range s.session.Particles {
		if p.Update(deltaTime) {
			survivors = append(survivors, p)
		}
	}
	s.session.Particles = survivors
}
