// internal/system/wave.go
package system

import (
	"time"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/interfaces"

	"github.com/rs/zerolog"
)

// Edges of the screen a zombie can come from.
const (
	EdgeLeft = iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

// SpawnSystem создаёт зомби по таймеру. Интервал зависит от числа убийств.
// There is no cap on how many zombies are alive at once.
type SpawnSystem struct {
	ecs             *entity.ECS
	settings        config.Settings
	rng             interfaces.Random
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger

	LastSpawnTime time.Duration
	SpawnInterval time.Duration
}

func NewSpawnSystem(ecs *entity.ECS, settings config.Settings, rng interfaces.Random, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		settings:        settings,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger.With().Str("system", "spawn").Logger(),
		LastSpawnTime:   ecs.Now,
		SpawnInterval:   settings.SpawnIntervalFor(0),
	}
}

// Update spawns at most one zombie per tick.
func (s *SpawnSystem) Update() {
	if s.ecs.Now-s.LastSpawnTime < s.SpawnInterval {
		return
	}
	x, y := s.spawnPoint()
	id := CreateEnemyEntity(s.ecs, s.settings, x, y)
	s.LastSpawnTime = s.ecs.Now
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

// spawnPoint picks a uniformly random edge and a point just outside it.
func (s *SpawnSystem) spawnPoint() (float64, float64) {
	d := int(s.settings.SpawnDistance)
	w, h := config.ScreenWidth, config.ScreenHeight

	var x, y int
	switch s.rng.Intn(4) {
	case EdgeLeft:
		x = s.rng.IntRange(-2*d, -d)
		y = s.rng.IntRange(0, h)
	case EdgeTop:
		x = s.rng.IntRange(0, w)
		y = s.rng.IntRange(-2*d, -d)
	case EdgeRight:
		x = s.rng.IntRange(w+d, w+2*d)
		y = s.rng.IntRange(0, h)
	default:
		x = s.rng.IntRange(0, w)
		y = s.rng.IntRange(h+d, h+2*d)
	}
	return float64(x), float64(y)
}

// UpdateDifficulty re-evaluates the spawn interval for the kill count.
func (s *SpawnSystem) UpdateDifficulty(kills int) {
	next := s.settings.SpawnIntervalFor(kills)
	if next == s.SpawnInterval {
		return
	}
	s.logger.Info().Int("kills", kills).Int("active", s.ActiveEnemies()).Dur("from", s.SpawnInterval).Dur("to", next).Msg("spawn interval changed")
	s.SpawnInterval = next
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SpawnRateChanged,
		Data: event.SpawnRateData{Kills: kills, Interval: next},
	})
}

// ActiveEnemies returns the number of zombies alive.
func (s *SpawnSystem) ActiveEnemies() int {
	return len(s.ecs.Enemies)
}
