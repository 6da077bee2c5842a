package components

import "image/color"

// Particle 纯装饰性的短命粒子（击杀爆裂效果）
// 不参与任何碰撞检测
type Particle struct {
	X, Y     float64
	VX, VY   float64 // 速度（像素/秒）
	Color    color.RGBA
	Age      float64 // 已存活时间（秒）
	Lifetime float64 // 总存活时间（秒）
	Size     float64 // 绘制半径（像素）
}

// Update 推进粒子运动和年龄，返回粒子是否仍然存活
func (p *Particle) Update(dt float64) bool {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Age += dt
	return p.Age < p.Lifetime
}

// AlphaFactor 返回随年龄线性衰减的不透明度系数 [0, 1]
func (p *Particle) AlphaFactor() float64 {
	if p.Age >= p.Lifetime {
		return 0
	}
	return 1.0 - p.Age/p.Lifetime
}
