// internal/system/movement.go
package system

import (
	"math"

	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/utils"
)

// MovementSystem ведёт зомби прямо к игроку.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update() {
	target := s.ecs.Positions[s.ecs.PlayerID]
	if target == nil {
		return
	}
	for _, id := range entity.Ordered(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		enemy.Angle = utils.AngleTo(pos, target.X, target.Y)

		step := enemy.Speed * enemy.SlowFactor
		// Не проскакиваем через игрока
		if d := utils.CenterDistance(pos, target); d < step {
			step = d
		}
		pos.X += step * math.Cos(enemy.Angle)
		pos.Y += step * math.Sin(enemy.Angle)

		if tr := s.ecs.Transforms[id]; tr != nil {
			tr.X, tr.Y, tr.Angle = pos.X, pos.Y, enemy.Angle
		}
	}
}
