// internal/system/lifetime.go
package system

import "go-zombie-survival/internal/entity"

// LifetimeSystem убирает истёкшие предметы и проигрывает анимацию трупов.
type LifetimeSystem struct {
	ecs *entity.ECS
}

func NewLifetimeSystem(ecs *entity.ECS) *LifetimeSystem {
	return &LifetimeSystem{ecs: ecs}
}

func (s *LifetimeSystem) Update() {
	for _, id := range entity.Ordered(s.ecs.Pickups) {
		pickup := s.ecs.Pickups[id]
		pickup.Lifetime--
		if pickup.Lifetime <= 0 {
			s.ecs.RemoveEntity(id)
		}
	}

	for _, id := range entity.Ordered(s.ecs.Corpses) {
		corpse := s.ecs.Corpses[id]
		if len(corpse.Frames) == 0 {
			s.ecs.RemoveEntity(id)
			continue
		}
		if r := s.ecs.Renderables[id]; r != nil {
			r.Sprite.Frame = corpse.Frame()
		}
		corpse.Frames = corpse.Frames[1:]
	}
}
