// internal/component/movement.go
package component

// Position - центр сущности в пикселях экрана
type Position struct {
	X, Y float64
}

// Hitbox - axis-aligned box centred on Position.
type Hitbox struct {
	W, H float64
}

// Transform is the derived render state, written in the update phase
// and only read by rendering.
type Transform struct {
	X, Y  float64
	Angle float64 // radians, 0 points right
}
