// internal/types/types.go
package types

// EntityID identifies an entity inside the ECS. IDs are never reused
// within a session, so sorting by ID gives insertion order.
type EntityID uint64

// WeaponType tags bullets, pickups and player weapon slots.
type WeaponType int

const (
	WeaponPistol WeaponType = iota
	WeaponM4
	WeaponAWP
	WeaponCount
)

func (w WeaponType) String() string {
	switch w {
	case WeaponPistol:
		return "pistol"
	case WeaponM4:
		return "m4"
	case WeaponAWP:
		return "awp"
	default:
		return "unknown"
	}
}

// Valid reports whether w names a real weapon slot.
func (w WeaponType) Valid() bool {
	return w >= 0 && w < WeaponCount
}

// PickupKind distinguishes ammo boxes from first aid kits.
type PickupKind int

const (
	PickupAmmo PickupKind = iota
	PickupHealth
)

func (k PickupKind) String() string {
	if k == PickupHealth {
		return "health"
	}
	return "ammo"
}

// Channel is a logical audio channel. Sounds on the same channel
// replace each other, different channels mix.
type Channel int

const (
	ChannelWeapon Channel = iota
	ChannelReload
	ChannelPlayer
	ChannelEnemy
	ChannelPickup
	ChannelCount
)

// Sound names a sound effect.
type Sound string

const (
	SoundPistolShot  Sound = "pistol_shot"
	SoundM4Shot      Sound = "m4_shot"
	SoundAWPShot     Sound = "awp_shot"
	SoundEmptyClick  Sound = "empty_click"
	SoundReload      Sound = "reload"
	SoundSwitch      Sound = "switch"
	SoundFootstep    Sound = "footstep"
	SoundPlayerHurt  Sound = "player_hurt"
	SoundZombieHit   Sound = "zombie_hit"
	SoundZombieDeath Sound = "zombie_death"
	SoundPickup      Sound = "pickup"
	SoundGameOver    Sound = "game_over"
)

// ShotSound returns the firing sound for a weapon.
func ShotSound(w WeaponType) Sound {
	switch w {
	case WeaponM4:
		return SoundM4Shot
	case WeaponAWP:
		return SoundAWPShot
	default:
		return SoundPistolShot
	}
}

// SpriteKind selects what the renderer draws for an entity.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpriteBullet
	SpriteAmmo
	SpriteHealthPack
	SpriteCorpse
)

// Sprite is a renderer-agnostic reference to one animation frame.
// Variant picks the weapon for bullets and ammo, or the death sheet
// for corpses.
type Sprite struct {
	Kind    SpriteKind
	Variant int
	Frame   int
}
