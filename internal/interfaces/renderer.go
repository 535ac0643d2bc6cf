package interfaces

import (
	"image/color"

	"go-zombie-survival/internal/types"
)

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

// Renderer is the drawing surface the game draws one frame onto.
type Renderer interface {
	Clear(c color.Color)
	DrawSprite(sprite types.Sprite, x, y, angle float64)
	DrawRect(x, y, w, h float64, c color.Color, filled bool)
	DrawText(s string, x, y float64, c color.Color)
}
