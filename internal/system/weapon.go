// internal/system/weapon.go
package system

import (
	"math"
	"time"

	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/types"
	"go-zombie-survival/internal/utils"

	"github.com/rs/zerolog"
)

// FireResult says what a trigger pull did.
type FireResult int

const (
	FireBlocked   FireResult = iota // reloading, cooling down or aiming at self
	FireShot                        // a bullet left the barrel
	FireReloading                   // clip was empty, auto reload started
	FireEmpty                       // clip and reserve empty
)

// WeaponSystem управляет оружием игрока: стрельба, перезарядка, смена.
type WeaponSystem struct {
	ecs             *entity.ECS
	weapons         defs.WeaponLibrary
	rng             interfaces.Random
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewWeaponSystem(ecs *entity.ECS, weapons defs.WeaponLibrary, rng interfaces.Random, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *WeaponSystem {
	return &WeaponSystem{
		ecs:             ecs,
		weapons:         weapons,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger.With().Str("system", "weapon").Logger(),
	}
}

// ProcessIntent applies the weapon-related part of the player's intent.
func (s *WeaponSystem) ProcessIntent() {
	player := s.ecs.Player()
	if player == nil {
		return
	}
	intent := &player.Intent

	if intent.HasSelect {
		s.Switch(intent.Select)
	}
	if intent.Cycle != 0 {
		s.Cycle(intent.Cycle)
	}
	if intent.Reload {
		s.Reload()
	}

	def := s.weapons.Get(player.Current)
	if intent.FirePressed || (intent.Firing && def.Automatic) {
		s.Fire(intent.AimX, intent.AimY)
	}
}

// Fire pulls the trigger of the current weapon, aiming at (aimX, aimY).
func (s *WeaponSystem) Fire(aimX, aimY float64) FireResult {
	player := s.ecs.Player()
	pos := s.ecs.Positions[s.ecs.PlayerID]
	if player == nil || pos == nil {
		return FireBlocked
	}
	slot := player.Slot()
	def := s.weapons.Get(slot.Weapon)
	interval := time.Duration(def.ShootingIntervalMs) * time.Millisecond

	if slot.State(s.ecs.Now, interval) != component.WeaponReady {
		return FireBlocked
	}
	// Курсор внутри хитбокса игрока: угол выстрела не определён
	if utils.Contains(pos, s.ecs.Hitboxes[s.ecs.PlayerID], aimX, aimY) {
		return FireBlocked
	}

	if slot.Clip == 0 {
		if slot.Reserve > 0 {
			s.startReload(slot, def)
			return FireReloading
		}
		slot.LastShotAt = s.ecs.Now
		slot.HasFired = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.EmptyClick, Data: event.WeaponData{Weapon: slot.Weapon}})
		return FireEmpty
	}

	angle := utils.AngleTo(pos, aimX, aimY)
	x := pos.X + config.MuzzleOffset*math.Cos(angle)
	y := pos.Y + config.MuzzleOffset*math.Sin(angle)
	damage := s.rng.IntRange(def.MinDamage, def.MaxDamage)
	bulletID := CreateBulletEntity(s.ecs, def, x, y, angle, damage)

	slot.Clip--
	slot.LastShotAt = s.ecs.Now
	slot.HasFired = true
	player.ShotsFired++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WeaponFired,
		Data: event.WeaponFiredData{Weapon: slot.Weapon, Bullet: bulletID, Damage: damage},
	})
	return FireShot
}

// Reload starts reloading the current weapon. It does nothing when the
// clip is full, the reserve is empty or a reload is already running.
func (s *WeaponSystem) Reload() bool {
	player := s.ecs.Player()
	if player == nil {
		return false
	}
	slot := player.Slot()
	if slot.Reloading() || slot.Clip >= slot.Capacity || slot.Reserve <= 0 {
		return false
	}
	s.startReload(slot, s.weapons.Get(slot.Weapon))
	return true
}

func (s *WeaponSystem) startReload(slot *component.WeaponSlot, def defs.WeaponDefinition) {
	slot.ReloadTicks = def.ReloadTicks
	slot.ReloadTimer = def.ReloadTicks
	s.eventDispatcher.Dispatch(event.Event{Type: event.ReloadStarted, Data: event.WeaponData{Weapon: slot.Weapon}})
	s.logger.Debug().Stringer("weapon", slot.Weapon).Int("ticks", def.ReloadTicks).Msg("reload started")
	if slot.ReloadTimer <= 0 {
		s.finishReload(slot)
	}
}

func (s *WeaponSystem) finishReload(slot *component.WeaponSlot) {
	slot.ReloadTimer = 0
	transfer := min(slot.Reserve, slot.Capacity-slot.Clip)
	if transfer < 0 {
		transfer = 0
	}
	slot.Clip += transfer
	slot.Reserve -= transfer
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ReloadFinished,
		Data: event.ReloadData{Weapon: slot.Weapon, Transferred: transfer},
	})
}

// Switch selects weapon w. Switching is refused while the current weapon
// reloads; a reload of the weapon switched away from keeps running.
func (s *WeaponSystem) Switch(w types.WeaponType) bool {
	player := s.ecs.Player()
	if player == nil || !w.Valid() || w == player.Current {
		return false
	}
	if player.Slot().Reloading() {
		return false
	}
	player.Current = w
	s.eventDispatcher.Dispatch(event.Event{Type: event.WeaponSwitched, Data: event.WeaponData{Weapon: w}})
	return true
}

// Cycle selects the next (dir > 0) or previous (dir < 0) weapon.
func (s *WeaponSystem) Cycle(dir int) bool {
	player := s.ecs.Player()
	if player == nil || dir == 0 {
		return false
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	n := int(types.WeaponCount)
	next := types.WeaponType(((int(player.Current)+step)%n + n) % n)
	return s.Switch(next)
}

// Update advances reload timers of every weapon slot by one tick.
func (s *WeaponSystem) Update() {
	player := s.ecs.Player()
	if player == nil {
		return
	}
	for _, slot := range player.Weapons {
		if slot == nil || !slot.Reloading() {
			continue
		}
		slot.ReloadTimer--
		if slot.ReloadTimer <= 0 {
			s.finishReload(slot)
		}
	}
}
