package components

import "github.com/gonewx/flappyjungle/pkg/types"

// Projectile 玩家发射的子弹
//
// Lifetime 为 0 表示没有时限（Normal/Special 类型），只在飞出屏幕右侧后回收；
// Venom/SpecialVenom 类型在 Age 达到 Lifetime 后过期，即使仍在屏幕内
type Projectile struct {
	Entity
	Kind     types.ProjectileKind
	Age      float64 // 已存活时间（秒）
	Lifetime float64 // 最大存活时间（秒），0 表示无时限
}

// Expired 返回子弹是否已按时限过期
func (p *Projectile) Expired() bool {
	return p.Lifetime > 0 && p.Age >= p.Lifetime
}

// IsPrimary 返回子弹是否由主武器发射
// 主武器弹药上限只统计主武器子弹，特殊攻击的子弹不占用弹药位
func (p *Projectile) IsPrimary() bool {
	return p.Kind == types.ProjectileNormal || p.Kind == types.ProjectileVenom
}
