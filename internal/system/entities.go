// internal/system/entities.go
package system

import (
	"math"

	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/types"
)

// CreatePlayerEntity places the player in the middle of the screen with
// every weapon slot filled from its definition.
func CreatePlayerEntity(ecs *entity.ECS, settings config.Settings, weapons defs.WeaponLibrary) types.EntityID {
	id := ecs.NewEntity()
	x, y := float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2

	state := &component.PlayerStateComponent{Current: types.WeaponPistol}
	for w := types.WeaponType(0); w < types.WeaponCount; w++ {
		def := weapons.Get(w)
		slot := &component.WeaponSlot{
			Weapon:   w,
			Capacity: def.ClipCapacity,
			Reserve:  def.InitialAmmo,
		}
		// Магазин заряжается из запаса сразу
		slot.Clip = min(slot.Reserve, slot.Capacity)
		slot.Reserve -= slot.Clip
		state.Weapons[w] = slot
	}

	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Hitboxes[id] = &component.Hitbox{W: config.PlayerSize, H: config.PlayerSize}
	ecs.Transforms[id] = &component.Transform{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: settings.PlayerMaxHealth, Max: settings.PlayerMaxHealth}
	ecs.Renderables[id] = &component.Renderable{Sprite: types.Sprite{Kind: types.SpritePlayer}, Layer: component.LayerPlayer}
	ecs.PlayerState[id] = state
	ecs.PlayerID = id
	return id
}

// CreateEnemyEntity places a zombie at (x, y).
func CreateEnemyEntity(ecs *entity.ECS, settings config.Settings, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Hitboxes[id] = &component.Hitbox{W: config.EnemySize, H: config.EnemySize}
	ecs.Transforms[id] = &component.Transform{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: settings.EnemyHealth, Max: settings.EnemyHealth}
	ecs.Enemies[id] = &component.Enemy{Speed: settings.EnemySpeed, SlowFactor: 1}
	ecs.Renderables[id] = &component.Renderable{Sprite: types.Sprite{Kind: types.SpriteEnemy}, Layer: component.LayerEnemy}
	return id
}

// CreateBulletEntity creates a bullet of weapon def flying along angle.
func CreateBulletEntity(ecs *entity.ECS, def defs.WeaponDefinition, x, y, angle float64, damage int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	size := def.BulletSize
	if size <= 0 {
		size = config.BulletSize
	}
	ecs.Hitboxes[id] = &component.Hitbox{W: size, H: size}
	ecs.Transforms[id] = &component.Transform{X: x, Y: y, Angle: angle}
	ecs.Bullets[id] = &component.Bullet{
		Weapon:         def.Type,
		DirX:           math.Cos(angle),
		DirY:           math.Sin(angle),
		Angle:          angle,
		Speed:          def.BulletSpeed,
		Damage:         damage,
		OriginalDamage: damage,
		SlowFactor:     def.SlowFactor,
		HitRadius:      def.HitRadius,
		FromX:          x,
		FromY:          y,
	}
	ecs.Renderables[id] = &component.Renderable{
		Sprite: types.Sprite{Kind: types.SpriteBullet, Variant: int(def.Type)},
		Layer:  component.LayerBullet,
	}
	return id
}

// CreatePickupEntity drops an ammo box or first aid kit at (x, y).
func CreatePickupEntity(ecs *entity.ECS, kind types.PickupKind, weapon types.WeaponType, amount, lifetime int, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Hitboxes[id] = &component.Hitbox{W: config.PickupSize, H: config.PickupSize}
	ecs.Transforms[id] = &component.Transform{X: x, Y: y}
	ecs.Pickups[id] = &component.Pickup{Kind: kind, Weapon: weapon, Amount: amount, Lifetime: lifetime}

	sprite := types.Sprite{Kind: types.SpriteAmmo, Variant: int(weapon)}
	if kind == types.PickupHealth {
		sprite = types.Sprite{Kind: types.SpriteHealthPack}
	}
	ecs.Renderables[id] = &component.Renderable{Sprite: sprite, Layer: component.LayerPickup}
	return id
}

// CreateCorpseEntity leaves a non-interactive decal where a zombie died.
func CreateCorpseEntity(ecs *entity.ECS, x, y, angle float64, sheet int, frames []int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Transforms[id] = &component.Transform{X: x, Y: y, Angle: angle}
	ecs.Corpses[id] = &component.Corpse{Angle: angle, Sheet: sheet, Frames: frames}
	ecs.Renderables[id] = &component.Renderable{
		Sprite: types.Sprite{Kind: types.SpriteCorpse, Variant: sheet},
		Layer:  component.LayerCorpse,
	}
	return id
}
