// internal/ui/reload_indicator.go
package ui

import (
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/pkg/utils"
)

// DrawReloadBar рисует полосу перезарядки над игроком. progress в [0, 1].
func DrawReloadBar(r interfaces.Renderer, playerX, playerY, progress float64) {
	x := playerX - config.MaxReloadBarLength/2
	y := playerY - config.PlayerSize/2 - config.ReloadBarHeight - 6
	r.DrawRect(x, y, config.MaxReloadBarLength*utils.Clamp(progress, 0, 1), config.ReloadBarHeight, config.ReloadBarColor, true)
	r.DrawRect(x, y, config.MaxReloadBarLength, config.ReloadBarHeight, config.TextDimColor, false)
}
