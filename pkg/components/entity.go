package components

// Entity 是玩家、子弹、敌人共享的运动实体
// 坐标为左上角像素坐标，速度单位为 像素/秒
//
// 这是一个纯数据结构，除基本的运动积分和 AABB 相交检测外不包含任何行为，
// 具体语义由持有它的子系统决定
type Entity struct {
	X, Y   float64 // 左上角位置（像素）
	W, H   int     // 尺寸（像素）
	VX, VY float64 // 速度（像素/秒）
	Alive  bool    // 是否存活
}

// NewEntity 创建一个存活的实体
func NewEntity(x, y float64, w, h int, vx, vy float64) Entity {
	return Entity{X: x, Y: y, W: w, H: h, VX: vx, VY: vy, Alive: true}
}

// Update 按速度推进位置
func (e *Entity) Update(dt float64) {
	e.X += e.VX * dt
	e.Y += e.VY * dt
}

// Intersects 检测两个实体的轴对齐边界框是否重叠
// 使用严格的 < / > 分离判断，因此边缘恰好接触也算相交
func (e *Entity) Intersects(other *Entity) bool {
	return !(e.X+float64(e.W) < other.X || e.X > other.X+float64(other.W) ||
		e.Y+float64(e.H) < other.Y || e.Y > other.Y+float64(other.H))
}

// CenterX 返回实体中心的X坐标
func (e *Entity) CenterX() float64 {
	return e.X + float64(e.W)/2
}

// CenterY 返回实体中心的Y坐标
func (e *Entity) CenterY() float64 {
	return e.Y + float64(e.H)/2
}
