// internal/system/status_effect.go
package system

import "go-zombie-survival/internal/entity"

// StatusEffectSystem восстанавливает скорость зомби после попаданий.
type StatusEffectSystem struct {
	ecs      *entity.ECS
	recovery float64
}

func NewStatusEffectSystem(ecs *entity.ECS, recovery float64) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, recovery: recovery}
}

// Update moves every slow factor back towards 1 by the recovery rate.
func (s *StatusEffectSystem) Update() {
	for _, enemy := range s.ecs.Enemies {
		if enemy.SlowFactor >= 1 {
			continue
		}
		enemy.SlowFactor = min(1, enemy.SlowFactor+s.recovery)
	}
}
