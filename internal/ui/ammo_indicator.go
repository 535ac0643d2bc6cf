// internal/ui/ammo_indicator.go
package ui

import (
	"fmt"

	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/interfaces"
)

// AmmoIndicator shows the current weapon and its clip/reserve.
type AmmoIndicator struct {
	X, Y float64
}

func NewAmmoIndicator(x, y float64) *AmmoIndicator {
	return &AmmoIndicator{X: x, Y: y}
}

func (i *AmmoIndicator) Draw(r interfaces.Renderer, name string, slot *component.WeaponSlot) {
	if slot == nil {
		return
	}
	c := config.TextLightColor
	if slot.Clip == 0 {
		c = config.HighlightColor
	}
	r.DrawText(name, i.X, i.Y, config.TextLightColor)
	r.DrawText(fmt.Sprintf("%d/%d", slot.Clip, slot.Reserve), i.X, i.Y+LineHeight, c)
}
