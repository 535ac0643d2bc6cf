// internal/system/projectile.go
package system

import (
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/utils"
)

// ProjectileSystem двигает пули и удаляет улетевшие за экран.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update() {
	for _, id := range entity.Ordered(s.ecs.Bullets) {
		bullet := s.ecs.Bullets[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}
		pos.X += bullet.DirX * bullet.Speed
		pos.Y += bullet.DirY * bullet.Speed
		bullet.Traveled += bullet.Speed

		if tr := s.ecs.Transforms[id]; tr != nil {
			tr.X, tr.Y = pos.X, pos.Y
		}
		if utils.OutOfBounds(pos, s.ecs.Hitboxes[id], config.ScreenWidth, config.ScreenHeight) {
			s.ecs.RemoveEntity(id)
		}
	}
}
