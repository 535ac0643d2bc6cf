// internal/system/render.go
package system

import (
	"slices"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/types"
)

// RenderSystem рисует сущности: сначала нижние слои, внутри слоя по порядку создания.
type RenderSystem struct {
	ecs *entity.ECS
	ids []types.EntityID
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(r interfaces.Renderer) {
	r.Clear(config.BackgroundColor)

	s.ids = s.ids[:0]
	for id := range s.ecs.Renderables {
		if s.ecs.Transforms[id] != nil {
			s.ids = append(s.ids, id)
		}
	}
	slices.SortFunc(s.ids, func(a, b types.EntityID) int {
		la, lb := s.ecs.Renderables[a].Layer, s.ecs.Renderables[b].Layer
		if la != lb {
			return la - lb
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})

	for _, id := range s.ids {
		tr := s.ecs.Transforms[id]
		r.DrawSprite(s.ecs.Renderables[id].Sprite, tr.X, tr.Y, tr.Angle)
	}
}
