package game

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// 存储路径常量
const (
	saveObject        = "save"
	highScoreProperty = "highscore"
)

// HighScoreManager 最高分持久化网关
//
// 职责：
//   - 启动时读取历史最高分
//   - 当一局结束的分数刷新纪录时写回
//
// 架构说明：
//   - 存储格式为纯十进制文本，缺失或损坏的数据一律视为 0，不会阻断游戏
//   - 使用 gdata 跨平台存储，gdataManager 可为 nil（降级模式，仅内存）
type HighScoreManager struct {
	gdataManager *gdata.Manager
	highScore    int
}

// NewHighScoreManager 创建最高分管理器并立即加载历史纪录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	m := &HighScoreManager{
		gdataManager: gdataManager,
	}
	m.highScore = m.load()
	return m
}

// HighScore 返回当前已知的最高分
func (m *HighScoreManager) HighScore() int {
	return m.highScore
}

// load 从存储读取最高分
// 文件缺失、内容损坏或为负值时返回 0（非致命）
func (m *HighScoreManager) load() int {
	if m.gdataManager == nil {
		return 0
	}
	if !m.gdataManager.ObjectPropExists(saveObject, highScoreProperty) {
		return 0
	}

	data, err := m.gdataManager.LoadObjectProp(saveObject, highScoreProperty)
	if err != nil {
		log.Printf("[HighScore] Warning: failed to load high score: %v (using 0)", err)
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		log.Printf("[HighScore] Warning: malformed high score data %q (using 0)", string(data))
		return 0
	}
	return score
}

// Save 持久化新的最高分
//
// 只在 score 高于当前纪录时写入；降级模式下仅更新内存值
func (m *HighScoreManager) Save(score int) error {
	if score <= m.highScore {
		return nil
	}
	m.highScore = score

	if m.gdataManager == nil {
		return nil
	}

	data := []byte(strconv.Itoa(score))
	if err := m.gdataManager.SaveObjectProp(saveObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}

	log.Printf("[HighScore] Saved new high score: %d", score)
	return nil
}
