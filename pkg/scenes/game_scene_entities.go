package scenes

import (
	"image/color"

	"github.com/gonewx/flappyjungle/pkg/game"
	"github.com/gonewx/flappyjungle/pkg/systems"
	"github.com/gonewx/flappyjungle/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 实体配色
var (
	birdBodyColor   = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	birdBeakColor   = color.RGBA{R: 255, G: 180, B: 40, A: 255}
	birdWingColor   = color.RGBA{R: 230, G: 160, B: 40, A: 255}
	snakeBodyColor  = color.RGBA{R: 50, G: 180, B: 80, A: 255}
	snakeHeadColor  = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	normalShotColor = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	venomShotColor  = color.RGBA{R: 100, G: 220, B: 80, A: 255}
	birdSpecColor   = color.RGBA{R: 255, G: 100, B: 50, A: 255}
	snakeSpecColor  = color.RGBA{R: 150, G: 255, B: 100, A: 255}
	rainColor       = color.RGBA{R: 180, G: 200, B: 230, A: 180}
	shadowColor     = color.RGBA{R: 0, G: 0, B: 0, A: 100}
)

// drawWorld 绘制全部游戏实体，整体叠加相机抖动偏移
// 渲染只读取实体状态，不做任何修改
func (s *GameScene) drawWorld(screen *ebiten.Image, offX, offY float64) {
	s.drawPlayer(screen, offX, offY)
	s.drawRain(screen, offX, offY)
	s.drawProjectiles(screen, offX, offY)
	s.drawEnemies(screen, offX, offY)
	s.drawParticles(screen, offX, offY)

	for _, c := range s.session.Clouds {
		drawCloud(screen, c, color.RGBA{R: 255, G: 255, B: 255, A: c.Alpha})
	}
}

// drawPlayer 绘制激活角色
// 优先使用精灵图，缺失时退回程序化绘制
func (s *GameScene) drawPlayer(screen *ebiten.Image, offX, offY float64) {
	player := s.session.ActivePlayer()
	x := player.X + offX
	y := player.Y + offY
	w := float64(player.W)
	h := float64(player.H)

	drawShadow(screen, x, y, w, h)

	if player.Kind == types.PlayerBird {
		frames := []string{game.SpriteBird0, game.SpriteBird1, game.SpriteBird2}
		if img := s.resources.GetImage(frames[s.birdFrame]); img != nil {
			drawSprite(screen, img, x, y, w, h)
			return
		}
		s.drawBirdShape(screen, x, y, w, h)
		return
	}

	if img := s.resources.GetImage(game.SpritePlayerSnake); img != nil {
		drawSprite(screen, img, x, y, w, h)
		return
	}
	drawSnakeShape(screen, x, y, w, h)
}

// drawBirdShape 程序化绘制小鸟：圆角身体、眼睛、喙和摆动的翅膀
func (s *GameScene) drawBirdShape(screen *ebiten.Image, x, y, w, h float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), birdBodyColor, false)

	// 眼睛（白底黑瞳）
	eyeX := float32(x + w*0.58)
	eyeY := float32(y + h*0.3)
	vector.DrawFilledCircle(screen, eyeX, eyeY, float32(h/8), color.White, true)
	vector.DrawFilledCircle(screen, eyeX+1, eyeY-1, float32(h/16), color.Black, true)

	// 喙
	vector.DrawFilledRect(screen, float32(x+w), float32(y+h/2-3), 7, 6, birdBeakColor, false)

	// 翅膀按动画帧上下摆动
	wingOffset := float32(-4)
	if s.birdFrame%2 == 1 {
		wingOffset = 3
	}
	vector.DrawFilledRect(screen, float32(x+w*0.2), float32(y+h*0.35)+wingOffset, float32(w*0.4), float32(h*0.3), birdWingColor, false)
}

// drawSnakeShape 程序化绘制蛇：分段身体加头部和眼睛
func drawSnakeShape(screen *ebiten.Image, x, y, w, h float64) {
	const segments = 3
	segW := w / segments
	for i := 0; i < segments; i++ {
		segX := x + float64(i)*segW
		segY := y + float64(i%2)*2 // 波浪形错位
		clr := snakeBodyColor
		if i == 0 {
			clr = snakeHeadColor
		}
		vector.DrawFilledRect(screen, float32(segX), float32(segY), float32(segW-1), float32(h), clr, false)
	}

	// 眼睛
	eyeX := float32(x + segW*0.6)
	eyeY := float32(y + h*0.3)
	vector.DrawFilledCircle(screen, eyeX, eyeY, float32(h/6), color.White, true)
	vector.DrawFilledCircle(screen, eyeX+1, eyeY-1, float32(h/12), color.Black, true)

	// 舌头
	tx := float32(x + w)
	ty := float32(y + h/2)
	vector.StrokeLine(screen, tx, ty, tx+6, ty-2, 2, color.RGBA{R: 255, G: 100, B: 100, A: 255}, false)
	vector.StrokeLine(screen, tx, ty, tx+6, ty+2, 2, color.RGBA{R: 255, G: 100, B: 100, A: 255}, false)
}

// drawEnemies 绘制所有敌人
func (s *GameScene) drawEnemies(screen *ebiten.Image, offX, offY float64) {
	for _, e := range s.session.Enemies {
		x := e.X + offX
		y := e.Y + offY
		w := float64(e.W)
		h := float64(e.H)

		drawShadow(screen, x, y, w, h)

		if img := s.resources.GetImage(e.Species.String()); img != nil {
			drawSprite(screen, img, x, y, w, h)
			continue
		}

		clr := systems.SpeciesColor(e.Species)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
		// 朝向玩家一侧的眼睛
		vector.DrawFilledCircle(screen, float32(x+w*0.2), float32(y+h*0.3), float32(h/8), color.White, true)
	}
}

// drawProjectiles 绘制所有子弹
// Venom/Special 类型带一圈颜色更淡的光晕
func (s *GameScene) drawProjectiles(screen *ebiten.Image, offX, offY float64) {
	for _, p := range s.session.Projectiles {
		cx := float32(p.CenterX() + offX)
		cy := float32(p.CenterY() + offY)
		r := float32(p.W) / 2

		var clr color.RGBA
		switch p.Kind {
		case types.ProjectileVenom:
			clr = venomShotColor
		case types.ProjectileSpecial:
			clr = birdSpecColor
		case types.ProjectileSpecialVenom:
			clr = snakeSpecColor
		default:
			clr = normalShotColor
		}

		if p.Kind != types.ProjectileNormal {
			glow := clr
			glow.A = 110
			vector.DrawFilledCircle(screen, cx, cy, r+3, glow, true)
		}
		vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
	}
}

// drawParticles 绘制爆裂粒子，随年龄淡出
func (s *GameScene) drawParticles(screen *ebiten.Image, offX, offY float64) {
	for _, p := range s.session.Particles {
		clr := p.Color
		clr.A = uint8(255 * p.AlphaFactor())
		vector.DrawFilledCircle(screen, float32(p.X+offX), float32(p.Y+offY), float32(p.Size), clr, true)
	}
}

// drawRain 雨天主题绘制雨滴斜线
func (s *GameScene) drawRain(screen *ebiten.Image, offX, offY float64) {
	if s.session.Theme != types.ThemeRainy {
		return
	}
	for _, rd := range s.session.Raindrops {
		x := float32(rd.X + offX)
		y := float32(rd.Y + offY)
		vector.StrokeLine(screen, x, y, x+2, y+10, 1, rainColor, false)
	}
}

// drawShadow 在实体脚下绘制椭圆阴影（以扁圆近似）
func drawShadow(screen *ebiten.Image, x, y, w, h float64) {
	vector.DrawFilledCircle(screen, float32(x+w/2), float32(y+h)-2, float32(w)/2-4, shadowColor, true)
}

// drawSprite 将精灵图缩放到实体尺寸后绘制
func drawSprite(screen *ebiten.Image, img *ebiten.Image, x, y, w, h float64) {
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
