package app

import (
	"testing"

	"github.com/gonewx/flappyjungle/pkg/config"
)

// TestClampDelta 测试单帧步长的钳制
func TestClampDelta(t *testing.T) {
	cases := []struct {
		dt   float64
		want float64
	}{
		{1.0 / 60.0, 1.0 / 60.0},
		{config.MaxDeltaTime, config.MaxDeltaTime},
		{0.2, config.MaxDeltaTime},
		{10.0, config.MaxDeltaTime},
	}
	for _, c := range cases {
		if got := clampDelta(c.dt); got != c.want {
			t.Errorf("clampDelta(%v): got %v, want %v", c.dt, got, c.want)
		}
	}
}

// TestLayout 测试逻辑画布尺寸固定不变
func TestLayout(t *testing.T) {
	a := &App{}

	w, h := a.Layout(1920, 1080)
	if w != config.GameWindowWidth || h != config.GameWindowHeight {
		t.Errorf("Layout(1920, 1080): got (%d, %d), want (%d, %d)",
			w, h, config.GameWindowWidth, config.GameWindowHeight)
	}

	// 任意外部尺寸都返回相同的逻辑尺寸
	w2, h2 := a.Layout(100, 100)
	if w2 != w || h2 != h {
		t.Errorf("Layout should be size-independent: got (%d, %d) and (%d, %d)", w, h, w2, h2)
	}
}
