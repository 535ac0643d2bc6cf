package entity

import (
	"testing"
	"time"

	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntity_Monotonic(t *testing.T) {
	ecs := NewECS()
	a, b, c := ecs.NewEntity(), ecs.NewEntity(), ecs.NewEntity()
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestOrdered_InsertionOrder(t *testing.T) {
	ecs := NewECS()
	var ids []types.EntityID
	for range 50 {
		id := ecs.NewEntity()
		ecs.Enemies[id] = &component.Enemy{}
		ids = append(ids, id)
	}
	assert.Equal(t, ids, Ordered(ecs.Enemies))
}

func TestRemoveEntity(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Hitboxes[id] = &component.Hitbox{}
	ecs.Bullets[id] = &component.Bullet{}
	ecs.Renderables[id] = &component.Renderable{}
	require.True(t, ecs.Alive(id))

	ecs.RemoveEntity(id)
	assert.False(t, ecs.Alive(id))
	assert.Empty(t, ecs.Bullets)
	assert.Empty(t, ecs.Renderables)
	assert.Empty(t, ecs.Hitboxes)
}

func TestAdvance(t *testing.T) {
	ecs := NewECS()
	ecs.Advance(10 * time.Millisecond)
	ecs.Advance(10 * time.Millisecond)
	assert.Equal(t, uint64(2), ecs.Tick)
	assert.Equal(t, 20*time.Millisecond, ecs.Now)
}
