package systems

import (
	"math"

	"github.com/gonewx/flappyjungle/pkg/components"
	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
	"github.com/gonewx/flappyjungle/pkg/types"
)

// 武器参数常量
const (
	// BirdShotSpeed 小鸟普通子弹速度（像素/秒）
	BirdShotSpeed = 420.0
	// SnakeConeSpeed 蛇毒液锥形弹速度（像素/秒）
	SnakeConeSpeed = 380.0
	// SnakeConeLifetime 蛇毒液弹存活时间（秒）
	SnakeConeLifetime = 3.0
	// BirdSpecialSpeed 小鸟特殊攻击扇形弹速度（像素/秒）
	BirdSpecialSpeed = 450.0
	// SnakeSpecialSpeed 蛇特殊攻击环形弹速度（像素/秒）
	SnakeSpecialSpeed = 250.0
	// SnakeSpecialLifetime 蛇特殊攻击环形弹存活时间（秒）
	SnakeSpecialLifetime = 2.0
	// SnakeSpecialPellets 蛇特殊攻击的环形弹数量
	SnakeSpecialPellets = 8
	// SpecialShakeIntensity 特殊攻击触发的相机抖动强度
	SpecialShakeIntensity = 6.0
)

// 蛇毒液锥形弹的发射角度（弧度）：直线、上偏、下偏
var snakeConeAngles = [3]float64{0, -0.3, 0.3}

// 小鸟特殊攻击的扇形角度（弧度）
var birdFanAngles = [5]float64{-0.4, -0.2, 0, 0.2, 0.4}

// WeaponSystem 处理两种角色的主武器射击和特殊攻击
//
// 两套独立冷却：主武器 0.28 秒，特殊攻击 3 秒。
// 冷却以累计模拟时间为基准，不依赖帧计数，对帧率波动稳健。
// 被冷却或弹药上限拦截的射击尝试是静默 no-op，不报错。
type WeaponSystem struct {
	session *game.GameSession
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(session *game.GameSession) *WeaponSystem {
	return &WeaponSystem{session: session}
}

// TryFirePrimary 尝试发射主武器
//
// 冷却未到或在场主武器子弹已达上限时不发射，返回 false。
// 小鸟发射单发直线子弹；蛇发射三发锥形毒液弹（三发共占一次冷却，
// 但会各自占用一个弹药位）。
func (s *WeaponSystem) TryFirePrimary() bool {
	sess := s.session
	if sess.Elapsed-sess.LastShot < config.PrimaryCooldown {
		return false
	}
	if sess.PrimaryProjectileCount() >= config.MaxPrimaryProjectiles {
		return false
	}

	switch sess.ActiveKind {
	case types.PlayerSnake:
		s.fireSnakeCone()
	default:
		s.fireBirdShot()
	}
	sess.LastShot = sess.Elapsed
	return true
}

// fireBirdShot 小鸟：单发直线子弹
func (s *WeaponSystem) fireBirdShot() {
	bird := s.session.Bird
	x := bird.X + float64(bird.W)
	y := bird.Y + float64(bird.H)/2 - 4
	s.session.Projectiles = append(s.session.Projectiles, &components.Projectile{
		Entity: components.NewEntity(x, y, 8, 8, BirdShotSpeed, 0),
		Kind:   types.ProjectileNormal,
	})
}

// fireSnakeCone 蛇：固定角度的三发锥形毒液弹
func (s *WeaponSystem) fireSnakeCone() {
	snake := s.session.Snake
	x := snake.X + float64(snake.W)
	y := snake.Y + float64(snake.H)/2
	for _, angle := range snakeConeAngles {
		vx := SnakeConeSpeed * math.Cos(angle)
		vy := SnakeConeSpeed * math.Sin(angle)
		s.session.Projectiles = append(s.session.Projectiles, &components.Projectile{
			Entity:   components.NewEntity(x, y, 6, 6, vx, vy),
			Kind:     types.ProjectileVenom,
			Lifetime: SnakeConeLifetime,
		})
	}
}

// TrySpecialAttack 尝试发动特殊攻击
//
// 独立于主武器冷却和弹药上限。成功发动时总是伴随相机抖动。
func (s *WeaponSystem) TrySpecialAttack() bool {
	sess := s.session
	if sess.Elapsed-sess.LastSpecial < config.SpecialCooldown {
		return false
	}

	switch sess.ActiveKind {
	case types.PlayerSnake:
		s.specialSnakeRing()
	default:
		s.specialBirdFan()
	}
	sess.LastSpecial = sess.Elapsed
	sess.TriggerShake(SpecialShakeIntensity)
	return true
}

// specialBirdFan 小鸟特殊攻击：五发扇形弹
func (s *WeaponSystem) specialBirdFan() {
	bird := s.session.Bird
	x := bird.X + float64(bird.W)
	y := bird.Y + float64(bird.H)/2
	for _, angle := range birdFanAngles {
		vx := BirdSpecialSpeed * math.Cos(angle)
		vy := BirdSpecialSpeed * math.Sin(angle)
		s.session.Projectiles = append(s.session.Projectiles, &components.Projectile{
			Entity: components.NewEntity(x, y, 8, 8, vx, vy),
			Kind:   types.ProjectileSpecial,
		})
	}
}

// specialSnakeRing 蛇特殊攻击：以蛇为圆心的八发环形毒液弹
func (s *WeaponSystem) specialSnakeRing() {
	snake := s.session.Snake
	cx := snake.CenterX()
	cy := snake.CenterY()
	for i := 0; i < SnakeSpecialPellets; i++ {
		angle := 2 * math.Pi * float64(i) / SnakeSpecialPellets
		vx := SnakeSpecialSpeed * math.Cos(angle)
		vy := SnakeSpecialSpeed * math.Sin(angle)
		s.session.Projectiles = append(s.session.Projectiles, &components.Projectile{
			Entity:   components.NewEntity(cx, cy, 7, 7, vx, vy),
			Kind:     types.ProjectileSpecialVenom,
			Lifetime: SnakeSpecialLifetime,
		})
	}
}
