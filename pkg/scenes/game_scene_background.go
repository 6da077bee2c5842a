package scenes

import (
	"image/color"

	"github.com/gonewx/flappyjungle/pkg/components"
	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 背景配色
var (
	skyTopColor    = color.RGBA{R: 135, G: 206, B: 250, A: 255}
	skyBottomColor = color.RGBA{R: 60, G: 150, B: 210, A: 255}
	groundTopColor = color.RGBA{R: 40, G: 110, B: 55, A: 255}
	groundBotColor = color.RGBA{R: 18, G: 75, B: 30, A: 255}
)

// drawBackground 绘制天空渐变、远景云和地面
func (s *GameScene) drawBackground(screen *ebiten.Image) {
	if s.skyImage == nil {
		s.skyImage = buildSkyGradient()
	}
	screen.DrawImage(s.skyImage, nil)

	for _, c := range s.session.BGClouds {
		drawCloud(screen, c, color.RGBA{R: 200, G: 220, B: 255, A: c.Alpha})
	}

	drawGround(screen)
}

// buildSkyGradient 预渲染整幅天空的垂直渐变
// 逐行插值一次性画到离屏图像，避免每帧重算产生色带接缝
func buildSkyGradient() *ebiten.Image {
	img := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	for y := 0; y < config.GameWindowHeight; y++ {
		t := float64(y) / float64(config.GameWindowHeight-1)
		clr := lerpRGBA(skyTopColor, skyBottomColor, t)
		vector.DrawFilledRect(img, 0, float32(y), config.GameWindowWidth, 1, clr, false)
	}
	return img
}

// drawGround 绘制底部的分层地面渐变
func drawGround(screen *ebiten.Image) {
	const steps = 6
	const groundTop = config.GameWindowHeight - config.GroundOffset
	bandH := float32(float64(config.GroundOffset) / steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		clr := lerpRGBA(groundTopColor, groundBotColor, t)
		y := float32(groundTop) + float32(i)*bandH
		vector.DrawFilledRect(screen, 0, y, config.GameWindowWidth, bandH+1, clr, false)
	}
}

// drawCloud 用三个交叠的椭圆（以圆近似）拼出一朵云
func drawCloud(screen *ebiten.Image, c *components.Cloud, clr color.RGBA) {
	w := float64(c.W)
	h := float32(c.H)
	r := h / 2
	cy := float32(c.Y) + r
	vector.DrawFilledCircle(screen, float32(c.X+w*0.3), cy, r*1.1, clr, true)
	vector.DrawFilledCircle(screen, float32(c.X+w*0.55), cy-r*0.3, r*1.2, clr, true)
	vector.DrawFilledCircle(screen, float32(c.X+w*0.75), cy, r, clr, true)
}

// lerpRGBA 在两个颜色之间线性插值
func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: uint8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: uint8(float64(a.B)*(1-t) + float64(b.B)*t),
		A: 255,
	}
}
