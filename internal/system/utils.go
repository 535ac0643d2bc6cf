// internal/system/utils.go
package system

import (
	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/types"
	"go-zombie-survival/internal/utils"
)

// ApplyDamage наносит урон сущности. Здоровье врага может уйти в минус,
// смерть определяется по Value <= 0. It returns the health the entity
// had before the hit.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) (before int, killed bool) {
	health, ok := ecs.Healths[entityID]
	if !ok || damage <= 0 {
		return 0, false
	}
	before = health.Value
	health.Value -= damage
	return before, health.Value <= 0
}

// bulletHits reports whether bullet b touched enemy e since the last
// check. The bullet is swept from its previous position so fast bullets
// cannot skip over an enemy between two ticks. Bullets with a hit radius
// also need to pass within that radius of the enemy centre.
func bulletHits(ecs *entity.ECS, bulletID, enemyID types.EntityID) bool {
	bp, bh := ecs.Positions[bulletID], ecs.Hitboxes[bulletID]
	ep, eh := ecs.Positions[enemyID], ecs.Hitboxes[enemyID]
	bullet := ecs.Bullets[bulletID]
	if bp == nil || ep == nil || bh == nil || eh == nil || bullet == nil {
		return false
	}
	radius := bullet.HitRadius
	if utils.Overlaps(bp, bh, ep, eh) {
		return radius <= 0 || utils.CenterDistance(bp, ep) <= radius
	}

	from := &component.Position{X: bullet.FromX, Y: bullet.FromY}
	if bullet.Tested && utils.Overlaps(from, bh, ep, eh) {
		// Already resolved at the previous position
		return false
	}
	swept := &component.Hitbox{W: eh.W + bh.W, H: eh.H + bh.H}
	if !utils.SegmentCrossesBox(from, bp, ep, swept) {
		return false
	}
	return radius <= 0 || utils.SegmentDistance(from, bp, ep) <= radius
}
