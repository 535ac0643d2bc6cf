// internal/component/projectile.go
package component

import "go-zombie-survival/internal/types"

// Bullet представляет летящую пулю.
// Damage only ever decreases as the bullet goes through enemies.
type Bullet struct {
	Weapon         types.WeaponType
	DirX, DirY     float64 // unit vector
	Angle          float64
	Speed          float64
	Traveled       float64
	Damage         int
	OriginalDamage int
	SlowFactor     float64
	HitRadius      float64
	HasHit         bool
	// FromX, FromY is where the bullet was when hits were last checked.
	// Tested is false until the first check.
	FromX, FromY float64
	Tested       bool
}
