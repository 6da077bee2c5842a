package components

// Cloud 背景装饰云层
// 向左漂移，飘出左边界后回绕到右侧并重新随机尺寸和位置
type Cloud struct {
	X, Y  float64
	W, H  int
	VX    float64 // 漂移速度（像素/秒，负值向左）
	Alpha uint8   // 不透明度
}

// Raindrop 雨天主题的雨滴
// 固定大小的雨滴池循环使用，落出底边后回绕到顶部
type Raindrop struct {
	X, Y float64
	V    float64 // 下落速度（像素/秒）
}
