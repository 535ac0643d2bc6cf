// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"
	"time"

	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/types"
)

type ECS struct {
	// Tick counts simulated frames, Now is the game clock derived from it.
	Tick     uint64
	Now      time.Duration
	NextID   types.EntityID
	PlayerID types.EntityID

	Positions   map[types.EntityID]*component.Position
	Hitboxes    map[types.EntityID]*component.Hitbox
	Transforms  map[types.EntityID]*component.Transform
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Bullets     map[types.EntityID]*component.Bullet
	Pickups     map[types.EntityID]*component.Pickup
	Corpses     map[types.EntityID]*component.Corpse
	PlayerState map[types.EntityID]*component.PlayerStateComponent
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Hitboxes:    make(map[types.EntityID]*component.Hitbox),
		Transforms:  make(map[types.EntityID]*component.Transform),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Bullets:     make(map[types.EntityID]*component.Bullet),
		Pickups:     make(map[types.EntityID]*component.Pickup),
		Corpses:     make(map[types.EntityID]*component.Corpse),
		PlayerState: make(map[types.EntityID]*component.PlayerStateComponent),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of id.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Hitboxes, id)
	delete(ecs.Transforms, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bullets, id)
	delete(ecs.Pickups, id)
	delete(ecs.Corpses, id)
	delete(ecs.PlayerState, id)
}

// Alive reports whether id still has a position.
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.Positions[id]
	return ok
}

// Advance moves the game clock forward by one tick.
func (ecs *ECS) Advance(tick time.Duration) {
	ecs.Tick++
	ecs.Now += tick
}

// Player returns the player entity's state, or nil before it is spawned.
func (ecs *ECS) Player() *component.PlayerStateComponent {
	return ecs.PlayerState[ecs.PlayerID]
}

// Ordered returns the keys of m in insertion order. Map iteration order
// is random in Go, the game must not depend on it.
func Ordered[V any](m map[types.EntityID]V) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}
