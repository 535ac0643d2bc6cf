// pkg/render/ebiten_renderer.go
package render

import (
	"image/color"
	"math"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var _ interfaces.Renderer = (*EbitenRenderer)(nil)

// EbitenRenderer draws sprites as vector shapes onto an ebiten image.
type EbitenRenderer struct {
	target *ebiten.Image
	face   font.Face
}

func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{face: basicfont.Face7x13}
}

// SetTarget sets the image the next frame is drawn onto.
func (r *EbitenRenderer) SetTarget(screen *ebiten.Image) {
	r.target = screen
}

func (r *EbitenRenderer) Clear(c color.Color) {
	r.target.Fill(c)
}

func (r *EbitenRenderer) DrawSprite(sprite types.Sprite, x, y, angle float64) {
	switch sprite.Kind {
	case types.SpritePlayer:
		r.body(x, y, config.PlayerSize/2, angle, config.PlayerColor, config.PlayerFacing, config.MuzzleOffset)
	case types.SpriteEnemy:
		r.body(x, y, config.EnemySize/2, angle, config.EnemyColor, DarkenColor(config.EnemyColor, 0.5), config.EnemySize/2+4)
	case types.SpriteBullet:
		c := BulletColor(sprite.Variant)
		tail := 2 * config.BulletSize
		vector.StrokeLine(r.target,
			float32(x-tail*math.Cos(angle)), float32(y-tail*math.Sin(angle)),
			float32(x), float32(y), 2, DarkenColor(c, 0.6), true)
		vector.DrawFilledCircle(r.target, float32(x), float32(y), config.BulletSize/2, c, true)
	case types.SpriteAmmo:
		half := config.PickupSize / 2
		vector.DrawFilledRect(r.target, float32(x-half), float32(y-half), config.PickupSize, config.PickupSize, config.AmmoColor, false)
		vector.StrokeRect(r.target, float32(x-half), float32(y-half), config.PickupSize, config.PickupSize, 2, BulletColor(sprite.Variant), false)
	case types.SpriteHealthPack:
		half := config.PickupSize / 2
		vector.DrawFilledRect(r.target, float32(x-half), float32(y-half), config.PickupSize, config.PickupSize, color.White, false)
		vector.DrawFilledRect(r.target, float32(x-3), float32(y-half+4), 6, config.PickupSize-8, config.HealthPackColor, false)
		vector.DrawFilledRect(r.target, float32(x-half+4), float32(y-3), config.PickupSize-8, 6, config.HealthPackColor, false)
	case types.SpriteCorpse:
		rx := config.EnemySize / 2
		c := CorpseColor(sprite.Frame)
		vector.DrawFilledCircle(r.target, float32(x), float32(y), float32(rx), c, true)
		// Тело лежит вдоль направления, в котором шёл зомби
		vector.StrokeLine(r.target,
			float32(x), float32(y),
			float32(x+rx*1.4*math.Cos(angle)), float32(y+rx*1.4*math.Sin(angle)),
			8, c, true)
	}
}

// body draws a round character with a line showing where it faces.
func (r *EbitenRenderer) body(x, y, radius, angle float64, fill, facing color.Color, reach float64) {
	vector.DrawFilledCircle(r.target, float32(x), float32(y), float32(radius), fill, true)
	vector.StrokeLine(r.target,
		float32(x), float32(y),
		float32(x+reach*math.Cos(angle)), float32(y+reach*math.Sin(angle)),
		4, facing, true)
}

func (r *EbitenRenderer) DrawRect(x, y, w, h float64, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(r.target, float32(x), float32(y), float32(w), float32(h), c, false)
		return
	}
	vector.StrokeRect(r.target, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

// DrawText draws s with its baseline at y.
func (r *EbitenRenderer) DrawText(s string, x, y float64, c color.Color) {
	text.Draw(r.target, s, r.face, int(x), int(y), c)
}
