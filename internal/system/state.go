// internal/system/state.go
package system

import (
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"

	"github.com/rs/zerolog"
)

// StateSystem следит за концом игры.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
	over            bool
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger.With().Str("system", "state").Logger(),
	}
}

// Update dispatches GameOver once, on the first tick the player has no
// health left.
func (s *StateSystem) Update() {
	if s.over {
		return
	}
	health := s.ecs.Healths[s.ecs.PlayerID]
	player := s.ecs.Player()
	if health == nil || player == nil || health.Value > 0 {
		return
	}
	s.over = true
	data := event.GameOverData{
		Kills:      player.Kills,
		ShotsFired: player.ShotsFired,
		ShotsHit:   player.ShotsHit,
		Duration:   s.ecs.Now,
	}
	s.logger.Info().
		Int("kills", data.Kills).
		Int("shots_fired", data.ShotsFired).
		Int("shots_hit", data.ShotsHit).
		Dur("duration", data.Duration).
		Msg("player died")
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: data})
}

func (s *StateSystem) Over() bool {
	return s.over
}
