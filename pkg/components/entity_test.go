package components

import (
	"math"
	"testing"
)

// TestEntityUpdate 测试按速度的运动积分
func TestEntityUpdate(t *testing.T) {
	e := NewEntity(100, 200, 10, 10, 50, -30)

	e.Update(0.5)

	if e.X != 125 {
		t.Errorf("X: got %v, want 125", e.X)
	}
	if e.Y != 185 {
		t.Errorf("Y: got %v, want 185", e.Y)
	}

	// 再推进一帧，位置继续累加
	e.Update(0.5)
	if e.X != 150 {
		t.Errorf("X after second update: got %v, want 150", e.X)
	}
}

// TestEntityIntersects 测试 AABB 相交检测
func TestEntityIntersects(t *testing.T) {
	t.Run("overlapping", func(t *testing.T) {
		a := NewEntity(0, 0, 10, 10, 0, 0)
		b := NewEntity(5, 5, 10, 10, 0, 0)
		if !a.Intersects(&b) {
			t.Error("Expected overlapping entities to intersect")
		}
		if !b.Intersects(&a) {
			t.Error("Intersects should be symmetric")
		}
	})

	t.Run("separated", func(t *testing.T) {
		a := NewEntity(0, 0, 10, 10, 0, 0)
		b := NewEntity(100, 100, 10, 10, 0, 0)
		if a.Intersects(&b) {
			t.Error("Expected distant entities not to intersect")
		}
	})

	t.Run("touching edges count as intersecting", func(t *testing.T) {
		// a 的右边缘恰好等于 b 的左边缘
		a := NewEntity(0, 0, 10, 10, 0, 0)
		b := NewEntity(10, 0, 10, 10, 0, 0)
		if !a.Intersects(&b) {
			t.Error("Expected edge-touching entities to intersect")
		}
	})

	t.Run("separated on one axis only", func(t *testing.T) {
		a := NewEntity(0, 0, 10, 10, 0, 0)
		b := NewEntity(5, 50, 10, 10, 0, 0)
		if a.Intersects(&b) {
			t.Error("Expected entities separated on Y axis not to intersect")
		}
	})
}

// TestEntityCenter 测试中心坐标计算
func TestEntityCenter(t *testing.T) {
	e := NewEntity(10, 20, 8, 6, 0, 0)
	if e.CenterX() != 14 {
		t.Errorf("CenterX: got %v, want 14", e.CenterX())
	}
	if e.CenterY() != 23 {
		t.Errorf("CenterY: got %v, want 23", e.CenterY())
	}
}

// TestEnemyBob 测试正弦摆动更新垂直位置
func TestEnemyBob(t *testing.T) {
	e := &Enemy{
		Entity:   NewEntity(400, 300, 40, 25, -100, 0),
		BaseY:    300,
		BobAmp:   10,
		BobSpeed: math.Pi / 2, // 1 秒后相位为 π/2，sin = 1
	}

	e.Bob(1.0)

	if math.Abs(e.Y-310) > 1e-9 {
		t.Errorf("Y after bob: got %v, want 310", e.Y)
	}
	// BaseY 固定不变
	if e.BaseY != 300 {
		t.Errorf("BaseY changed: got %v, want 300", e.BaseY)
	}
}

// TestEnemyBobDisabled 测试摆动参数为零时不改变位置
func TestEnemyBobDisabled(t *testing.T) {
	e := &Enemy{
		Entity: NewEntity(400, 300, 40, 25, -100, 0),
		BaseY:  300,
	}
	e.Bob(1.0)
	if e.Y != 300 {
		t.Errorf("Y with zero bob: got %v, want 300", e.Y)
	}
}
