package systems

import (
	"image/color"

	"github.com/gonewx/flappyjungle/pkg/types"
)

// SpeciesColor 返回物种的主体颜色
// 用作程序化绘制的主色和击杀爆裂粒子的颜色
func SpeciesColor(species types.EnemySpecies) color.RGBA {
	switch species {
	case types.SpeciesSnake:
		return color.RGBA{R: 10, G: 150, B: 20, A: 255}
	case types.SpeciesEagle:
		return color.RGBA{R: 120, G: 80, B: 40, A: 255}
	case types.SpeciesCrocodile:
		return color.RGBA{R: 40, G: 120, B: 50, A: 255}
	case types.SpeciesOwl:
		return color.RGBA{R: 80, G: 60, B: 40, A: 255}
	default:
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
}
