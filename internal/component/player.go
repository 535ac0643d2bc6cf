// internal/component/player.go
package component

import (
	"time"

	"go-zombie-survival/internal/types"
)

// Health - здоровье, всегда в пределах [0, Max]
type Health struct {
	Value int
	Max   int
}

// Damage subtracts n and clamps at zero. It returns the health lost.
func (h *Health) Damage(n int) int {
	before := h.Value
	h.Value -= n
	if h.Value < 0 {
		h.Value = 0
	}
	return before - h.Value
}

// Heal adds n and clamps at Max. It returns the health gained.
func (h *Health) Heal(n int) int {
	before := h.Value
	h.Value += n
	if h.Value > h.Max {
		h.Value = h.Max
	}
	return h.Value - before
}

// Intent is what the input layer wants the player to do this tick.
type Intent struct {
	Up, Down, Left, Right bool

	// Firing is true while the trigger is held, FirePressed only on the
	// tick the button went down.
	Firing      bool
	FirePressed bool
	AimX, AimY  float64

	Reload bool

	Select    types.WeaponType
	HasSelect bool
	Cycle     int // +1 next weapon, -1 previous
}

// ClearOneShots resets the edge-triggered intents after they were consumed.
func (i *Intent) ClearOneShots() {
	i.FirePressed = false
	i.Reload = false
	i.HasSelect = false
	i.Cycle = 0
}

// PlayerStateComponent хранит всё, что относится к персонажу игрока.
type PlayerStateComponent struct {
	Angle      float64
	Weapons    [types.WeaponCount]*WeaponSlot
	Current    types.WeaponType
	Kills      int
	ShotsFired int
	ShotsHit   int
	Moving     bool
	Intent     Intent
}

// Slot returns the currently selected weapon slot.
func (p *PlayerStateComponent) Slot() *WeaponSlot {
	return p.Weapons[p.Current]
}

// Accuracy is hits over shots, zero before the first shot.
func (p *PlayerStateComponent) Accuracy() float64 {
	if p.ShotsFired == 0 {
		return 0
	}
	return float64(p.ShotsHit) / float64(p.ShotsFired)
}

type WeaponState int

const (
	WeaponReady WeaponState = iota
	WeaponCooldown
	WeaponReloading
)

func (s WeaponState) String() string {
	switch s {
	case WeaponCooldown:
		return "cooldown"
	case WeaponReloading:
		return "reloading"
	default:
		return "ready"
	}
}

// WeaponSlot is the ammo and timer state of one weapon the player carries.
// Clip stays within [0, Capacity]; while ReloadTimer > 0 the weapon
// cannot fire.
type WeaponSlot struct {
	Weapon      types.WeaponType
	Reserve     int
	Clip        int
	Capacity    int
	ReloadTimer int // ticks left
	ReloadTicks int // full reload length, for the progress bar
	LastShotAt  time.Duration
	HasFired    bool
}

func (w *WeaponSlot) Reloading() bool {
	return w.ReloadTimer > 0
}

// State derives the weapon state at game time now.
func (w *WeaponSlot) State(now, interval time.Duration) WeaponState {
	if w.Reloading() {
		return WeaponReloading
	}
	if w.HasFired && now-w.LastShotAt < interval {
		return WeaponCooldown
	}
	return WeaponReady
}

// ReloadProgress goes from 0 to 1 while reloading.
func (w *WeaponSlot) ReloadProgress() float64 {
	if !w.Reloading() || w.ReloadTicks <= 0 {
		return 0
	}
	return 1 - float64(w.ReloadTimer)/float64(w.ReloadTicks)
}
