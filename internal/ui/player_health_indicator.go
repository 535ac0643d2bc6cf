// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/pkg/utils"
)

// PlayerHealthIndicator отображает здоровье игрока полосой.
type PlayerHealthIndicator struct {
	X, Y float64
}

func NewPlayerHealthIndicator(x, y float64) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует рамку, заполненную часть и текст "health/max".
func (i *PlayerHealthIndicator) Draw(r interfaces.Renderer, health, maxHealth int) {
	fill := 0.0
	if maxHealth > 0 {
		fill = float64(health) / float64(maxHealth)
	}
	fill = utils.Clamp(fill, 0, 1)

	r.DrawRect(i.X, i.Y, config.MaxHealthBarLength*fill, config.HealthBarHeight, config.HealthBarColor, true)
	r.DrawRect(i.X, i.Y, config.MaxHealthBarLength, config.HealthBarHeight, config.TextLightColor, false)

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	r.DrawText(label, i.X+config.MaxHealthBarLength+10, i.Y+config.HealthBarHeight-4, config.TextLightColor)
}
