package component

import "time"

// Enemy представляет зомби.
type Enemy struct {
	Angle        float64
	Speed        float64
	SlowFactor   float64 // (0, 1], множитель скорости после попаданий
	LastAttackAt time.Duration
	HasAttacked  bool
}

// CanAttack reports whether the re-attack interval has passed. The first
// attack is never gated.
func (e *Enemy) CanAttack(now, interval time.Duration) bool {
	return !e.HasAttacked || now-e.LastAttackAt >= interval
}
