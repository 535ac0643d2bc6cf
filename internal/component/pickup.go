package component

import "go-zombie-survival/internal/types"

// Pickup is an ammo box or first aid kit lying on the ground.
type Pickup struct {
	Kind     types.PickupKind
	Weapon   types.WeaponType // ammo only
	Amount   int
	Lifetime int // ticks left
}
