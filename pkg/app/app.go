// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置和精灵资源、
// 打开存档存储、装配场景管理器，并实现 ebiten.Game 主循环。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
	"github.com/gonewx/flappyjungle/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	session                  *game.GameSession
	verbose                  bool
	lastUpdate               time.Time
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载游戏配置
	difficulty, err := config.LoadDifficultyConfig("assets/config/difficulty.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load difficulty config: %w", err)
	}
	species, err := config.LoadSpeciesConfig("assets/config/species.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load species config: %w", err)
	}
	themes, err := config.LoadThemeConfig("assets/config/themes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load theme config: %w", err)
	}
	log.Printf("[App] Configs loaded: %d difficulty presets, %d species, %d theme stages",
		len(difficulty.Presets), len(species.Species), len(themes.Stages))

	// 创建资源管理器并预加载精灵（缺失的精灵退回程序化绘制）
	resourceManager := game.NewResourceManager()
	resourceManager.LoadSprites()

	// 打开跨平台存档存储
	// 失败时降级为纯内存模式，不阻断启动
	gdataManager, err := gdata.Open(gdata.Config{AppName: "flappyjungle"})
	if err != nil {
		log.Printf("[App] Warning: persistent storage unavailable: %v (high score will not be saved)", err)
		gdataManager = nil
	}
	highScores := game.NewHighScoreManager(gdataManager)
	log.Printf("[App] High score loaded: %d", highScores.HighScore())

	// 装配场景
	sceneManager := game.NewSceneManager()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gameScene := scenes.NewGameScene(resourceManager, sceneManager, highScores, difficulty, species, themes, rng)
	sceneManager.SwitchTo(gameScene)

	return &App{
		sceneManager: sceneManager,
		session:      gameScene.Session(),
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 用真实流逝时间驱动模拟，钳制到步长上限，避免卡顿后的穿模
	now := time.Now()
	deltaTime := 1.0 / 60.0
	if !a.lastUpdate.IsZero() {
		deltaTime = clampDelta(now.Sub(a.lastUpdate).Seconds())
	}
	a.lastUpdate = now

	a.sceneManager.Update(deltaTime)

	if a.session.QuitRequested {
		return ebiten.Termination
	}
	return nil
}

// clampDelta 将单帧步长钳制到上限
// 超过上限的流逝时间按上限推进，整个模拟对掉帧表现为慢放而非跳变
func clampDelta(dt float64) float64 {
	if dt > config.MaxDeltaTime {
		return config.MaxDeltaTime
	}
	return dt
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存存档
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
