package scenes

import (
	"fmt"

	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawHUD 绘制状态面板
// HUD 只读取会话状态，不受相机抖动影响
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	sess := s.session

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", sess.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("High: %d", sess.HighScore), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Char: %v", sess.ActiveKind), 10, 42)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Theme: %v", sess.Theme), 10, 58)

	preset := s.difficulty.Presets[sess.DifficultyIndex]
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Difficulty: %s %.1fx", preset.Name, sess.DifficultyMultiplier),
		config.GameWindowWidth-180, 10)
	if sess.Combo > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Combo: %dx", sess.Combo), config.GameWindowWidth-180, 26)
	}

	// 武器与弹药
	if sess.ActiveKind == types.PlayerBird {
		ebitenutil.DebugPrintAt(screen, "Weapon: Bullets", 10, 80)
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Ammo: %d/%d", sess.PrimaryProjectileCount(), config.MaxPrimaryProjectiles), 10, 96)
	} else {
		ebitenutil.DebugPrintAt(screen, "Weapon: Venom Cone", 10, 80)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Projectiles: %d", len(sess.Projectiles)), 10, 96)
	}

	// 特殊攻击就绪状态
	if sess.SpecialReady() {
		ebitenutil.DebugPrintAt(screen, "Special: READY!", config.GameWindowWidth-180, 42)
	} else {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Special: %.1fs", sess.SpecialCooldownRemaining()), config.GameWindowWidth-180, 42)
	}

	ebitenutil.DebugPrintAt(screen,
		"P: pause  R: restart  C: char  Space: flap  Z: shoot  X: special  D: difficulty", 10, 114)

	switch sess.Phase {
	case types.PhasePaused:
		ebitenutil.DebugPrintAt(screen, "Paused", config.GameWindowWidth/2-20, config.GameWindowHeight/2)
	case types.PhaseGameOver:
		ebitenutil.DebugPrintAt(screen, "Game Over - Press R to restart", config.GameWindowWidth/2-90, config.GameWindowHeight/2)
	}
}
