// pkg/render/color.go
package render

import (
	"image/color"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/pkg/utils"
)

// DarkenColor scales the brightness of a color by factor in [0, 1].
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	factor = utils.Clamp(factor, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// CorpseColor fades a corpse as its death animation advances.
func CorpseColor(frame int) color.RGBA {
	return DarkenColor(config.CorpseColor, 1-0.1*float64(frame))
}

// BulletColor returns the tracer colour of a weapon.
func BulletColor(weapon int) color.RGBA {
	if weapon < 0 || weapon >= len(config.BulletColors) {
		return config.BulletColors[0]
	}
	return config.BulletColors[weapon]
}
