package config

// 布局与物理配置常量
// 本文件定义了游戏画布尺寸和核心玩法参数

const (
	// GameWindowWidth 逻辑画布宽度（像素）
	GameWindowWidth = 480

	// GameWindowHeight 逻辑画布高度（像素）
	GameWindowHeight = 640

	// GroundOffset 地面占据画布底部的高度（像素）
	// 玩家和地面型敌人的可活动区域下边界为 GameWindowHeight - GroundOffset
	GroundOffset = 60

	// PlayerSpawnX 角色出生点X坐标
	PlayerSpawnX = 60.0

	// PlayerSpawnY 角色出生点Y坐标（画布垂直中心）
	PlayerSpawnY = float64(GameWindowHeight) / 2

	// Gravity 重力加速度（像素/秒²），会再乘以难度档位的重力系数
	Gravity = 900.0

	// FlapStrength 拍翅冲量赋予的垂直速度（像素/秒，负值向上）
	FlapStrength = -320.0

	// MaxDeltaTime 单帧模拟步长上限（秒）
	// 实际流逝时间超过该值时按该值推进，防止帧率抖动导致穿透或数值不稳定
	MaxDeltaTime = 0.05

	// MaxPrimaryProjectiles 主武器同时在场子弹数上限
	MaxPrimaryProjectiles = 4

	// PrimaryCooldown 主武器射击冷却（秒）
	PrimaryCooldown = 0.28

	// SpecialCooldown 特殊攻击冷却（秒）
	SpecialCooldown = 3.0

	// ComboWindow 连击保持窗口（秒），每次击杀重置
	ComboWindow = 3.0

	// ScoreDifficultyDivisor 连续难度公式分母：multiplier = 1 + score/5000
	ScoreDifficultyDivisor = 5000.0

	// CameraShakeDecay 相机抖动强度的每秒衰减量
	CameraShakeDecay = 15.0
)
