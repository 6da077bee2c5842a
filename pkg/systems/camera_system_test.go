package systems

import (
	"math"
	"testing"

	"github.com/gonewx/flappyjungle/pkg/config"
)

// TestShakeDecay 测试抖动强度按固定速率衰减到零
func TestShakeDecay(t *testing.T) {
	sess, rng := newTestSession()
	cs := NewCameraSystem(sess, rng)

	sess.TriggerShake(8.0)

	cs.Update(0.1)
	want := 8.0 - config.CameraShakeDecay*0.1
	if math.Abs(sess.CameraShake-want) > 1e-9 {
		t.Errorf("Shake after decay: got %v, want %v", sess.CameraShake, want)
	}

	// 衰减不会越过零变成负数
	cs.Update(10.0)
	if sess.CameraShake != 0 {
		t.Errorf("Shake after full decay: got %v, want 0", sess.CameraShake)
	}
}

// TestShakeOffset 测试抖动偏移量的采样范围
func TestShakeOffset(t *testing.T) {
	sess, rng := newTestSession()
	cs := NewCameraSystem(sess, rng)

	t.Run("zero shake gives zero offset", func(t *testing.T) {
		dx, dy := cs.Offset()
		if dx != 0 || dy != 0 {
			t.Errorf("Offset without shake: got (%v, %v), want (0, 0)", dx, dy)
		}
	})

	t.Run("offset bounded by intensity", func(t *testing.T) {
		sess.TriggerShake(6.0)
		for i := 0; i < 100; i++ {
			dx, dy := cs.Offset()
			if math.Abs(dx) > 6.0 || math.Abs(dy) > 6.0 {
				t.Fatalf("Offset (%v, %v) exceeds intensity 6.0", dx, dy)
			}
		}
	})
}
