package components

import (
	"testing"

	"github.com/gonewx/flappyjungle/pkg/types"
)

// TestProjectileExpired 测试存活时限的过期判定
func TestProjectileExpired(t *testing.T) {
	t.Run("no lifetime never expires", func(t *testing.T) {
		p := &Projectile{
			Entity: NewEntity(0, 0, 8, 8, 420, 0),
			Kind:   types.ProjectileNormal,
		}
		p.Age = 999
		if p.Expired() {
			t.Error("Projectile without lifetime should never expire by age")
		}
	})

	t.Run("expires after lifetime", func(t *testing.T) {
		p := &Projectile{
			Entity:   NewEntity(0, 0, 6, 6, 380, 0),
			Kind:     types.ProjectileVenom,
			Lifetime: 3.0,
		}
		p.Age = 2.9
		if p.Expired() {
			t.Error("Projectile should not expire before its lifetime")
		}
		p.Age = 3.0
		if !p.Expired() {
			t.Error("Projectile should expire at its lifetime")
		}
	})
}

// TestProjectileIsPrimary 测试主武器子弹的弹药位判定
func TestProjectileIsPrimary(t *testing.T) {
	cases := []struct {
		kind types.ProjectileKind
		want bool
	}{
		{types.ProjectileNormal, true},
		{types.ProjectileVenom, true},
		{types.ProjectileSpecial, false},
		{types.ProjectileSpecialVenom, false},
	}
	for _, c := range cases {
		p := &Projectile{Kind: c.kind}
		if got := p.IsPrimary(); got != c.want {
			t.Errorf("IsPrimary(%v): got %v, want %v", c.kind, got, c.want)
		}
	}
}

// TestParticleUpdate 测试粒子的运动和寿命
func TestParticleUpdate(t *testing.T) {
	p := &Particle{X: 100, Y: 100, VX: 40, VY: -20, Lifetime: 0.5}

	if !p.Update(0.25) {
		t.Fatal("Particle should survive before lifetime")
	}
	if p.X != 110 || p.Y != 95 {
		t.Errorf("Position: got (%v, %v), want (110, 95)", p.X, p.Y)
	}
	// 不透明度线性衰减到一半
	if f := p.AlphaFactor(); f != 0.5 {
		t.Errorf("AlphaFactor at half life: got %v, want 0.5", f)
	}

	if p.Update(0.25) {
		t.Error("Particle should die at end of lifetime")
	}
	if f := p.AlphaFactor(); f != 0 {
		t.Errorf("AlphaFactor after death: got %v, want 0", f)
	}
}

// TestPlayerResetTo 测试角色归位清零速度
func TestPlayerResetTo(t *testing.T) {
	p := &Player{
		Entity: NewEntity(200, 400, 34, 24, 0, 300),
		Kind:   types.PlayerBird,
	}
	p.ResetTo(60, 320)

	if p.X != 60 || p.Y != 320 {
		t.Errorf("Position: got (%v, %v), want (60, 320)", p.X, p.Y)
	}
	if p.VX != 0 || p.VY != 0 {
		t.Errorf("Velocity: got (%v, %v), want (0, 0)", p.VX, p.VY)
	}
	if !p.Alive {
		t.Error("Player should be alive after reset")
	}
}
