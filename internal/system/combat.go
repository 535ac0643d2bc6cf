// internal/system/combat.go
package system

import (
	"go-zombie-survival/internal/assets"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/types"
	"go-zombie-survival/internal/utils"

	"github.com/rs/zerolog"
)

// CombatSystem разрешает столкновения: пули с зомби, зомби с игроком,
// игрок с предметами.
type CombatSystem struct {
	ecs             *entity.ECS
	settings        config.Settings
	weapons         defs.WeaponLibrary
	table           *assets.Table
	rng             interfaces.Random
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewCombatSystem(ecs *entity.ECS, settings config.Settings, weapons defs.WeaponLibrary, table *assets.Table,
	rng interfaces.Random, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		settings:        settings,
		weapons:         weapons,
		table:           table,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger.With().Str("system", "combat").Logger(),
	}
}

func (s *CombatSystem) Update() {
	s.resolveBullets()
	s.resolveAttacks()
	s.resolvePickups()
}

func (s *CombatSystem) resolveBullets() {
	bullets := entity.Ordered(s.ecs.Bullets)
	for _, enemyID := range entity.Ordered(s.ecs.Enemies) {
		for _, bulletID := range bullets {
			if _, alive := s.ecs.Bullets[bulletID]; !alive {
				continue
			}
			if !bulletHits(s.ecs, bulletID, enemyID) {
				continue
			}
			if s.hit(bulletID, enemyID) {
				// Зомби мёртв, остальные пули его не видят
				break
			}
		}
	}
	for _, bulletID := range bullets {
		bullet, ok := s.ecs.Bullets[bulletID]
		pos := s.ecs.Positions[bulletID]
		if !ok || pos == nil {
			continue
		}
		bullet.FromX, bullet.FromY = pos.X, pos.Y
		bullet.Tested = true
	}
}

// hit applies one bullet to one zombie and reports whether the zombie died.
func (s *CombatSystem) hit(bulletID, enemyID types.EntityID) bool {
	bullet := s.ecs.Bullets[bulletID]
	enemy := s.ecs.Enemies[enemyID]
	player := s.ecs.Player()

	damage := bullet.Damage
	before, killed := ApplyDamage(s.ecs, enemyID, damage)
	enemy.SlowFactor *= bullet.SlowFactor

	if !bullet.HasHit {
		bullet.HasHit = true
		if player != nil {
			player.ShotsHit++
		}
	}

	// Пуля пробивает зомби, теряя столько урона, сколько у него было здоровья
	bullet.Damage -= before
	if bullet.Damage <= s.settings.BulletDamageCutoff {
		s.ecs.RemoveEntity(bulletID)
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyHit,
		Data: event.EnemyHitData{Enemy: enemyID, Bullet: bulletID, Damage: damage},
	})

	if killed {
		s.kill(enemyID)
	}
	return killed
}

func (s *CombatSystem) kill(enemyID types.EntityID) {
	pos := *s.ecs.Positions[enemyID]
	angle := s.ecs.Enemies[enemyID].Angle
	s.ecs.RemoveEntity(enemyID)

	sheet, err := s.table.ParseSheet(s.rng.ChooseWeighted(s.table.SheetPick()))
	if err != nil {
		s.logger.Warn().Err(err).Msg("falling back to first death sheet")
	}
	frames := s.table.CorpseFrames(sheet, s.settings.CorpseFrameMultiplier, s.settings.CorpseDisplayFrames)
	CreateCorpseEntity(s.ecs, pos.X, pos.Y, angle, sheet, frames)

	kills := 0
	if player := s.ecs.Player(); player != nil {
		player.Kills++
		kills = player.Kills
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{Enemy: enemyID, X: pos.X, Y: pos.Y, Kills: kills},
	})

	s.dropLoot(pos.X, pos.Y)
}

// dropLoot rolls every drop independently: one per weapon, then the
// health pack. A single death can drop several items.
func (s *CombatSystem) dropLoot(x, y float64) {
	for w := types.WeaponType(0); w < types.WeaponCount; w++ {
		rule := s.weapons.Get(w).AmmoDrop
		if s.rng.Chance(rule.Rate) {
			s.spawnPickup(types.PickupAmmo, w, rule, x, y)
		}
	}
	if s.rng.Chance(defs.HealthPackDrop.Rate) {
		s.spawnPickup(types.PickupHealth, types.WeaponPistol, defs.HealthPackDrop, x, y)
	}
}

func (s *CombatSystem) spawnPickup(kind types.PickupKind, w types.WeaponType, rule defs.DropRule, x, y float64) {
	amount := s.rng.IntRange(rule.MinAmount, rule.MaxAmount)
	px := x + float64(s.rng.IntRange(-rule.Jitter, rule.Jitter))
	py := y + float64(s.rng.IntRange(-rule.Jitter, rule.Jitter))
	id := CreatePickupEntity(s.ecs, kind, w, amount, rule.Lifetime, px, py)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.LootDropped,
		Data: event.PickupData{Pickup: id, Kind: kind, Weapon: w, Amount: amount},
	})
}

// resolveAttacks lets every zombie touching the player bite, at most once
// per attack interval.
func (s *CombatSystem) resolveAttacks() {
	playerID := s.ecs.PlayerID
	pp, ph := s.ecs.Positions[playerID], s.ecs.Hitboxes[playerID]
	health := s.ecs.Healths[playerID]
	if pp == nil || health == nil {
		return
	}
	for _, id := range entity.Ordered(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		if !utils.Overlaps(pp, ph, s.ecs.Positions[id], s.ecs.Hitboxes[id]) {
			continue
		}
		if !enemy.CanAttack(s.ecs.Now, s.settings.EnemyAttackInterval) {
			continue
		}
		lost := health.Damage(s.rng.IntRange(1, s.settings.EnemyDamage))
		enemy.LastAttackAt = s.ecs.Now
		enemy.HasAttacked = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerDamaged,
			Data: event.PlayerDamagedData{Enemy: id, Amount: lost, Health: health.Value},
		})
	}
}

func (s *CombatSystem) resolvePickups() {
	playerID := s.ecs.PlayerID
	pp, ph := s.ecs.Positions[playerID], s.ecs.Hitboxes[playerID]
	player := s.ecs.Player()
	if pp == nil || player == nil {
		return
	}
	for _, id := range entity.Ordered(s.ecs.Pickups) {
		if !utils.Overlaps(pp, ph, s.ecs.Positions[id], s.ecs.Hitboxes[id]) {
			continue
		}
		pickup := s.ecs.Pickups[id]
		amount := pickup.Amount
		switch pickup.Kind {
		case types.PickupAmmo:
			if slot := player.Weapons[pickup.Weapon]; slot != nil {
				slot.Reserve += amount
			}
		case types.PickupHealth:
			if health := s.ecs.Healths[playerID]; health != nil {
				amount = health.Heal(amount)
			}
		}
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PickupCollected,
			Data: event.PickupData{Pickup: id, Kind: pickup.Kind, Weapon: pickup.Weapon, Amount: amount},
		})
	}
}
