package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时目录下创建 gdata manager
func newTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestHighScoreRoundTrip 测试最高分的保存和重新加载
func TestHighScoreRoundTrip(t *testing.T) {
	gdataManager := newTestGdataManager(t, "test_highscore")

	m1 := NewHighScoreManager(gdataManager)
	if m1.HighScore() != 0 {
		t.Errorf("Fresh store HighScore: got %d, want 0", m1.HighScore())
	}

	if err := m1.Save(4200); err != nil {
		t.Fatalf("Save(4200) failed: %v", err)
	}
	if m1.HighScore() != 4200 {
		t.Errorf("HighScore after save: got %d, want 4200", m1.HighScore())
	}

	// 新的管理器实例从存储中读回
	m2 := NewHighScoreManager(gdataManager)
	if m2.HighScore() != 4200 {
		t.Errorf("Reloaded HighScore: got %d, want 4200", m2.HighScore())
	}
}

// TestHighScoreSaveOnlyImproves 测试低于纪录的分数不会覆盖
func TestHighScoreSaveOnlyImproves(t *testing.T) {
	gdataManager := newTestGdataManager(t, "test_highscore_improve")

	m := NewHighScoreManager(gdataManager)
	if err := m.Save(1000); err != nil {
		t.Fatalf("Save(1000) failed: %v", err)
	}
	if err := m.Save(500); err != nil {
		t.Fatalf("Save(500) failed: %v", err)
	}
	if m.HighScore() != 1000 {
		t.Errorf("HighScore: got %d, want 1000 (lower score must not overwrite)", m.HighScore())
	}
}

// TestHighScoreMalformedData 测试损坏的存档内容被当作 0 处理
func TestHighScoreMalformedData(t *testing.T) {
	gdataManager := newTestGdataManager(t, "test_highscore_malformed")

	if err := gdataManager.SaveObjectProp(saveObject, highScoreProperty, []byte("not-a-number")); err != nil {
		t.Fatalf("Failed to seed malformed data: %v", err)
	}

	m := NewHighScoreManager(gdataManager)
	if m.HighScore() != 0 {
		t.Errorf("HighScore from malformed data: got %d, want 0", m.HighScore())
	}
}

// TestHighScoreNegativeData 测试负值存档被当作 0 处理
func TestHighScoreNegativeData(t *testing.T) {
	gdataManager := newTestGdataManager(t, "test_highscore_negative")

	if err := gdataManager.SaveObjectProp(saveObject, highScoreProperty, []byte("-50")); err != nil {
		t.Fatalf("Failed to seed negative data: %v", err)
	}

	m := NewHighScoreManager(gdataManager)
	if m.HighScore() != 0 {
		t.Errorf("HighScore from negative data: got %d, want 0", m.HighScore())
	}
}

// TestHighScoreNilManager 测试无存储后端的降级模式
func TestHighScoreNilManager(t *testing.T) {
	m := NewHighScoreManager(nil)
	if m.HighScore() != 0 {
		t.Errorf("Degraded mode HighScore: got %d, want 0", m.HighScore())
	}

	// 降级模式下保存只更新内存值，不报错
	if err := m.Save(300); err != nil {
		t.Fatalf("Save in degraded mode failed: %v", err)
	}
	if m.HighScore() != 300 {
		t.Errorf("Degraded mode HighScore after save: got %d, want 300", m.HighScore())
	}
}
