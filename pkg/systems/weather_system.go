package systems

import (
	"math/rand"

	"github.com/gonewx/flappyjungle/pkg/components"
	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
	"github.com/gonewx/flappyjungle/pkg/types"
)

// 云层数量
const (
	foregroundClouds = 6
	backgroundClouds = 3
)

// WeatherSystem 管理背景装饰的云层漂移和雨天的雨滴下落
//
// 云层和雨滴都是循环使用的固定池：云飘出左边界后回绕到右侧并重新随机，
// 雨滴落出底边后回绕到画布上方
type WeatherSystem struct {
	session *game.GameSession
	rng     *rand.Rand
}

// NewWeatherSystem 创建天气系统并初始化云层
func NewWeatherSystem(session *game.GameSession, rng *rand.Rand) *WeatherSystem {
	s := &WeatherSystem{
		session: session,
		rng:     rng,
	}
	s.seedClouds()
	return s
}

// seedClouds 生成初始云层
// 前景云较小较快，远景云更大更慢更暗
func (s *WeatherSystem) seedClouds() {
	sess := s.session
	for i := 0; i < foregroundClouds; i++ {
		sess.Clouds = append(sess.Clouds, &components.Cloud{
			X:     s.rng.Float64() * config.GameWindowWidth,
			Y:     30 + s.rng.Float64()*float64(config.GameWindowHeight/2-30),
			W:     80 + s.rng.Intn(101),
			H:     30 + s.rng.Intn(31),
			VX:    -(10 + s.rng.Float64()*30),
			Alpha: uint8(140 + s.rng.Intn(116)),
		})
	}
	for i := 0; i < backgroundClouds; i++ {
		sess.BGClouds = append(sess.BGClouds, &components.Cloud{
			X:     s.rng.Float64() * config.GameWindowWidth,
			Y:     10 + s.rng.Float64()*float64(config.GameWindowHeight/3-10),
			W:     150 + s.rng.Intn(131),
			H:     50 + s.rng.Intn(51),
			VX:    -(2 + s.rng.Float64()*8),
			Alpha: uint8(80 + s.rng.Intn(61)),
		})
	}
}

// Update 推进云层漂移和雨滴下落
func (s *WeatherSystem) Update(deltaTime float64) {
	s.updateClouds(s.session.Clouds, deltaTime, false)
	s.updateClouds(s.session.BGClouds, deltaTime, true)

	if s.session.Theme == types.ThemeRainy {
		s.updateRain(deltaTime)
	}
}

// updateClouds 漂移云层，出界后回绕到右侧并重新随机尺寸和位置
func (s *WeatherSystem) updateClouds(clouds []*components.Cloud, dt float64, background bool) {
	for _, c := range clouds {
		c.X += c.VX * dt
		if c.X+float64(c.W) >= -20 {
			continue
		}
		if background {
			c.X = config.GameWindowWidth + float64(20+s.rng.Intn(181))
			c.Y = 10 + s.rng.Float64()*float64(config.GameWindowHeight/3-10)
			c.W = 150 + s.rng.Intn(131)
			c.H = 50 + s.rng.Intn(51)
		} else {
			c.X = config.GameWindowWidth + float64(10+s.rng.Intn(111))
			c.Y = 20 + s.rng.Float64()*float64(config.GameWindowHeight/2-20)
			c.W = 80 + s.rng.Intn(101)
			c.H = 30 + s.rng.Intn(31)
		}
	}
}

// updateRain 雨滴下落，落出底边后回收到画布上方的随机位置
func (s *WeatherSystem) updateRain(dt float64) {
	for _, rd := range s.session.Raindrops {
		rd.Y += rd.V * dt
		if rd.Y > config.GameWindowHeight {
			rd.Y = -s.rng.Float64()*config.GameWindowHeight*0.5 - 5
			rd.X = s.rng.Float64() * config.GameWindowWidth
		}
	}
}
