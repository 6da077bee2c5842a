package game

import (
	"bytes"
	"image"
	_ "image/png" // 注册 PNG 解码器
	"log"

	"github.com/gonewx/flappyjungle/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// 精灵资源ID常量
// 敌人物种的精灵ID与物种键名一致，玩家蛇使用独立前缀避免和蛇敌人混用
const (
	SpriteBird0       = "bird_0"
	SpriteBird1       = "bird_1"
	SpriteBird2       = "bird_2"
	SpritePlayerSnake = "player_snake"
	SpriteEnemySnake  = "snake"
	SpriteEagle       = "eagle"
	SpriteCrocodile   = "crocodile"
	SpriteOwl         = "owl"
)

// ResourceManager 管理嵌入资源中的精灵图片
//
// 所有图片加载失败都是非致命的：GetImage 对缺失的资源返回 nil，
// 渲染侧据此退回到程序化绘制的占位图形，启动和游戏流程不受影响
type ResourceManager struct {
	imageCache map[string]*ebiten.Image
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadSprites 预加载全部精灵图片
// 逐个尝试加载，缺失的资源只记录日志，不返回错误
func (rm *ResourceManager) LoadSprites() {
	ids := []string{
		SpriteBird0, SpriteBird1, SpriteBird2, SpritePlayerSnake,
		SpriteEnemySnake, SpriteEagle, SpriteCrocodile, SpriteOwl,
	}
	loaded := 0
	for _, id := range ids {
		if rm.loadImage(id) != nil {
			loaded++
		}
	}
	log.Printf("[Resource] Loaded %d/%d sprite images (missing ones use procedural fallback)", loaded, len(ids))
}

// loadImage 从嵌入资源加载单张图片并缓存
// 加载失败返回 nil
func (rm *ResourceManager) loadImage(id string) *ebiten.Image {
	if img, exists := rm.imageCache[id]; exists {
		return img
	}

	data, err := embedded.ReadFile("assets/images/" + id + ".png")
	if err != nil {
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("[Resource] Warning: failed to decode image %s: %v", id, err)
		return nil
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[id] = ebitenImg
	return ebitenImg
}

// GetImage 返回缓存的精灵图片，缺失时返回 nil
func (rm *ResourceManager) GetImage(id string) *ebiten.Image {
	return rm.imageCache[id]
}
