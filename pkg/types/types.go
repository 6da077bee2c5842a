// Package types 定义跨包共享的基础枚举类型
package types

// PlayerKind 定义可操控角色的类型
type PlayerKind int

const (
	// PlayerBird 小鸟角色（默认）
	PlayerBird PlayerKind = iota
	// PlayerSnake 蛇角色
	PlayerSnake
)

// String 返回角色的显示名称
func (k PlayerKind) String() string {
	switch k {
	case PlayerBird:
		return "Bird"
	case PlayerSnake:
		return "Snake"
	default:
		return "Unknown"
	}
}

// EnemySpecies 定义敌人的物种
type EnemySpecies int

const (
	// SpeciesSnake 蛇（地面）
	SpeciesSnake EnemySpecies = iota
	// SpeciesEagle 老鹰（空中，速度快）
	SpeciesEagle
	// SpeciesCrocodile 鳄鱼（地面，速度慢、体型宽）
	SpeciesCrocodile
	// SpeciesOwl 猫头鹰（空中，中速，摆动幅度大）
	SpeciesOwl
)

// String 返回物种的配置键名
func (s EnemySpecies) String() string {
	switch s {
	case SpeciesSnake:
		return "snake"
	case SpeciesEagle:
		return "eagle"
	case SpeciesCrocodile:
		return "crocodile"
	case SpeciesOwl:
		return "owl"
	default:
		return "unknown"
	}
}

// ProjectileKind 定义子弹的类型
//
// 不同类型的子弹有不同的渲染样式和过期规则：
//   - Normal/Special 只在飞出屏幕右侧后回收
//   - Venom/SpecialVenom 有固定存活时间，到期后即使仍在屏幕内也会消失
type ProjectileKind int

const (
	// ProjectileNormal 小鸟的普通直线子弹
	ProjectileNormal ProjectileKind = iota
	// ProjectileVenom 蛇的毒液弹（锥形三连发）
	ProjectileVenom
	// ProjectileSpecial 小鸟的特殊攻击扇形弹
	ProjectileSpecial
	// ProjectileSpecialVenom 蛇的特殊攻击环形毒液弹
	ProjectileSpecialVenom
)

// Theme 定义天气/视觉主题阶段
type Theme int

const (
	// ThemeSunny 晴天主题（初始）
	ThemeSunny Theme = iota
	// ThemeRainy 雨天主题
	ThemeRainy
)

// String 返回主题的显示名称
func (t Theme) String() string {
	switch t {
	case ThemeSunny:
		return "sunny"
	case ThemeRainy:
		return "rainy"
	default:
		return "unknown"
	}
}

// ParseTheme 将配置中的主题名称解析为 Theme 枚举
// 未知名称返回 ThemeSunny 和 false
func ParseTheme(name string) (Theme, bool) {
	switch name {
	case "sunny":
		return ThemeSunny, true
	case "rainy":
		return ThemeRainy, true
	default:
		return ThemeSunny, false
	}
}

// GamePhase 定义游戏主循环的状态机阶段
type GamePhase int

const (
	// PhaseRunning 游戏进行中
	PhaseRunning GamePhase = iota
	// PhasePaused 暂停（跳过物理/生成/碰撞更新，仍然渲染）
	PhasePaused
	// PhaseGameOver 游戏结束（等待重新开始）
	PhaseGameOver
)
