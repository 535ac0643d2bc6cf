// internal/system/player_system.go
package system

import (
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/utils"
)

// PlayerSystem двигает игрока по намерению и поворачивает его к курсору.
type PlayerSystem struct {
	ecs             *entity.ECS
	settings        config.Settings
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, settings config.Settings, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, settings: settings, eventDispatcher: eventDispatcher}
}

func (s *PlayerSystem) Update() {
	player := s.ecs.Player()
	pos := s.ecs.Positions[s.ecs.PlayerID]
	if player == nil || pos == nil {
		return
	}
	intent := player.Intent

	var dx, dy float64
	if intent.Up {
		dy -= s.settings.PlayerSpeed
	}
	if intent.Down {
		dy += s.settings.PlayerSpeed
	}
	if intent.Left {
		dx -= s.settings.PlayerSpeed
	}
	if intent.Right {
		dx += s.settings.PlayerSpeed
	}

	// Each axis moves only if the result stays inside the margin.
	margin := s.settings.AllowedMargin
	moved := false
	if nx := pos.X + dx; dx != 0 && nx >= margin && nx <= config.ScreenWidth-margin {
		pos.X = nx
		moved = true
	}
	if ny := pos.Y + dy; dy != 0 && ny >= margin && ny <= config.ScreenHeight-margin {
		pos.Y = ny
		moved = true
	}
	player.Moving = moved

	if !utils.Contains(pos, s.ecs.Hitboxes[s.ecs.PlayerID], intent.AimX, intent.AimY) {
		player.Angle = utils.AngleTo(pos, intent.AimX, intent.AimY)
	}
	if tr := s.ecs.Transforms[s.ecs.PlayerID]; tr != nil {
		tr.X, tr.Y, tr.Angle = pos.X, pos.Y, player.Angle
	}

	if moved {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerMoved, Data: s.ecs.PlayerID})
	}
}
