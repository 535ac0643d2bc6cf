// component/render.go
package component

import "go-zombie-survival/internal/types"

// Renderable - компонент для отрисовки
type Renderable struct {
	Sprite types.Sprite
	Layer  int
}

// Render layers, drawn back to front.
const (
	LayerBullet = iota
	LayerCorpse
	LayerPickup
	LayerEnemy
	LayerPlayer
)
