package components

import "github.com/gonewx/flappyjungle/pkg/types"

// Player 可操控角色
// 两个角色（小鸟和蛇）在整局游戏中常驻，同一时刻只有一个处于激活状态
type Player struct {
	Entity
	Kind types.PlayerKind
}

// ResetTo 将角色归位到出生点并清零速度
// 角色切换和重新开始时调用，不保留任何动量
func (p *Player) ResetTo(x, y float64) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
	p.Alive = true
}
