package components

import (
	"math"

	"github.com/gonewx/flappyjungle/pkg/types"
)

// Enemy 从屏幕右侧刷出、向左移动的敌人
//
// 垂直位置每帧由 BaseY + sin(BobPhase) * BobAmp 推导，
// BaseY 在生成时固定不变，摆动只影响当前位置和碰撞盒
type Enemy struct {
	Entity
	Species  types.EnemySpecies
	BaseY    float64 // 生成时的基准Y坐标
	BobAmp   float64 // 摆动幅度（像素）
	BobSpeed float64 // 摆动速度（弧度/秒）
	BobPhase float64 // 摆动相位累加器
}

// Bob 推进摆动相位并更新垂直位置
func (e *Enemy) Bob(dt float64) {
	if e.BobAmp == 0 || e.BobSpeed == 0 {
		return
	}
	e.BobPhase += e.BobSpeed * dt
	e.Y = e.BaseY + math.Sin(e.BobPhase)*e.BobAmp
}
