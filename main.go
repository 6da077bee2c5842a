package main

import (
	"flag"
	"log"

	"github.com/gonewx/flappyjungle/pkg/app"
	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/embedded"
	"github.com/gonewx/flappyjungle/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	// 初始化嵌入资源
	// assetsFS 在 embed.go 中声明
	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
	})
	if err != nil {
		log.Fatalf("game initialization failed: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Flappy Jungle")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}

	// 窗口关闭后保存当前场景的状态（最高分）
	if scene, ok := gameApp.GetSceneManager().GetCurrentScene().(game.Saveable); ok {
		scene.SaveOnExit()
	}
}
