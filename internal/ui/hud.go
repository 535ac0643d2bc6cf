// internal/ui/hud.go
package ui

import (
	"strconv"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/interfaces"
)

// Размеры шрифта basicfont.Face7x13
const (
	CharWidth  = 7.0
	LineHeight = 16.0
)

// TextWidth is the pixel width of s in the HUD font.
func TextWidth(s string) float64 {
	return CharWidth * float64(len([]rune(s)))
}

// HUD draws the in-game overlay.
type HUD struct {
	health *PlayerHealthIndicator
	ammo   *AmmoIndicator
}

func NewHUD() *HUD {
	return &HUD{
		health: NewPlayerHealthIndicator(20, 20),
		ammo:   NewAmmoIndicator(20, config.ScreenHeight-2*LineHeight-10),
	}
}

func (h *HUD) Draw(r interfaces.Renderer, ecs *entity.ECS, weapons defs.WeaponLibrary) {
	player := ecs.Player()
	if player == nil {
		return
	}
	if health := ecs.Healths[ecs.PlayerID]; health != nil {
		h.health.Draw(r, health.Value, health.Max)
	}

	slot := player.Slot()
	h.ammo.Draw(r, weapons.Get(player.Current).Name, slot)

	kills := "Kills: " + strconv.Itoa(player.Kills)
	r.DrawText(kills, config.ScreenWidth-TextWidth(kills)-20, 20+LineHeight, config.TextLightColor)

	if slot != nil && slot.Reloading() {
		if tr := ecs.Transforms[ecs.PlayerID]; tr != nil {
			DrawReloadBar(r, tr.X, tr.Y, slot.ReloadProgress())
		}
	}
}
