package system

import (
	"testing"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/interfaces/mocks"
	"go-zombie-survival/internal/types"

	"go.uber.org/mock/gomock"
)

func TestRenderSystem_DrawsByLayer(t *testing.T) {
	w := newWorld(t)
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	// Created before the corpse but drawn after it.
	enemy := CreateEnemyEntity(w.ecs, w.settings, 100, 100)
	CreateCorpseEntity(w.ecs, 50, 50, 0, 2, []int{0})
	w.bullet(types.WeaponM4, 10, 10, 30)
	w.ecs.Transforms[enemy].Angle = 1

	pos := w.ecs.Positions[w.player]
	gomock.InOrder(
		r.EXPECT().Clear(config.BackgroundColor),
		r.EXPECT().DrawSprite(types.Sprite{Kind: types.SpriteBullet, Variant: int(types.WeaponM4)}, 10.0, 10.0, 0.0),
		r.EXPECT().DrawSprite(types.Sprite{Kind: types.SpriteCorpse, Variant: 2}, 50.0, 50.0, 0.0),
		r.EXPECT().DrawSprite(types.Sprite{Kind: types.SpriteEnemy}, 100.0, 100.0, 1.0),
		r.EXPECT().DrawSprite(types.Sprite{Kind: types.SpritePlayer}, pos.X, pos.Y, 0.0),
	)

	NewRenderSystem(w.ecs).Draw(r)
}
