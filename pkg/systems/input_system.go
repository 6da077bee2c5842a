package systems

import (
	"log"

	"github.com/gonewx/flappyjungle/pkg/config"
	"github.com/gonewx/flappyjungle/pkg/game"
	"github.com/gonewx/flappyjungle/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem 处理所有键盘输入
//
// 按键映射：
//   - Space: 拍翅    Z / Ctrl: 射击    X: 特殊攻击
//   - C: 切换角色    D: 循环难度档位
//   - P: 暂停/恢复   R: 重新开始      Esc: 退出
//
// 暂停和 GameOver 状态下仍响应 P / R / Esc，其余输入被屏蔽
type InputSystem struct {
	session    *game.GameSession
	weapons    *WeaponSystem
	difficulty *config.DifficultyConfig
	highScores *game.HighScoreManager
}

// NewInputSystem 创建输入系统
func NewInputSystem(session *game.GameSession, weapons *WeaponSystem, difficulty *config.DifficultyConfig, highScores *game.HighScoreManager) *InputSystem {
	return &InputSystem{
		session:    session,
		weapons:    weapons,
		difficulty: difficulty,
		highScores: highScores,
	}
}

// Update 轮询按键并触发对应的单次动作
func (s *InputSystem) Update(deltaTime float64) {
	sess := s.session

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		sess.QuitRequested = true
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		sess.TogglePause()
		if sess.Phase == types.PhasePaused {
			log.Printf("[Input] Paused")
		} else if sess.Phase == types.PhaseRunning {
			log.Printf("[Input] Resumed")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.restart()
	}

	// 游戏性输入只在 Running 状态下生效
	if sess.Phase != types.PhaseRunning {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		sess.ActivePlayer().VY = config.FlapStrength
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyZ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyControlLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyControlRight) {
		s.weapons.TryFirePrimary()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		s.weapons.TrySpecialAttack()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		sess.ToggleCharacter()
		log.Printf("[Input] Switched character to %v", sess.ActiveKind)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		sess.DifficultyIndex = (sess.DifficultyIndex + 1) % len(s.difficulty.Presets)
		log.Printf("[Input] Difficulty preset: %s", s.difficulty.Presets[sess.DifficultyIndex].Name)
	}
}

// restart 重新开始一局，刷新纪录时持久化最高分
func (s *InputSystem) restart() {
	if s.session.Reset() {
		if err := s.highScores.Save(s.session.HighScore); err != nil {
			log.Printf("[Input] Warning: failed to persist high score: %v", err)
		}
	}
	log.Printf("[Input] Restarted (high score %d)", s.session.HighScore)
}
