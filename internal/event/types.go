// internal/event/types.go
package event

import (
	"time"

	"go-zombie-survival/internal/types"
)

const (
	WeaponFired      EventType = "WeaponFired" // выстрел
	EmptyClick       EventType = "EmptyClick"  // нет патронов
	ReloadStarted    EventType = "ReloadStarted"
	ReloadFinished   EventType = "ReloadFinished"
	WeaponSwitched   EventType = "WeaponSwitched"
	EnemySpawned     EventType = "EnemySpawned"
	EnemyHit         EventType = "EnemyHit"
	EnemyKilled      EventType = "EnemyKilled" // зомби убит
	PlayerDamaged    EventType = "PlayerDamaged"
	PickupCollected  EventType = "PickupCollected"
	LootDropped      EventType = "LootDropped"
	PlayerMoved      EventType = "PlayerMoved"
	SpawnRateChanged EventType = "SpawnRateChanged"
	GameOver         EventType = "GameOver"
)

type WeaponFiredData struct {
	Weapon types.WeaponType
	Bullet types.EntityID
	Damage int
}

type WeaponData struct {
	Weapon types.WeaponType
}

type ReloadData struct {
	Weapon      types.WeaponType
	Transferred int
}

type EnemyHitData struct {
	Enemy  types.EntityID
	Bullet types.EntityID
	Damage int
}

type EnemyKilledData struct {
	Enemy types.EntityID
	X, Y  float64
	Kills int
}

type PlayerDamagedData struct {
	Enemy  types.EntityID
	Amount int
	Health int
}

type PickupData struct {
	Pickup types.EntityID
	Kind   types.PickupKind
	Weapon types.WeaponType
	Amount int
}

type SpawnRateData struct {
	Kills    int
	Interval time.Duration
}

type GameOverData struct {
	Kills      int
	ShotsFired int
	ShotsHit   int
	Duration   time.Duration
}
