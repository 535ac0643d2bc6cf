// internal/state/game_state.go
package state

import (
	"go-zombie-survival/internal/app"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
)

var _ State = (*GameState)(nil)

// GameState runs a session.
type GameState struct {
	sm    *StateMachine
	game  *app.Game
	ended bool
}

// NewGameState starts a fresh session for user.
func NewGameState(sm *StateMachine, user string) *GameState {
	env := sm.env
	game := app.NewGame(app.Options{
		Settings: env.Settings,
		Weapons:  env.Weapons,
		Assets:   env.Assets,
		Sound:    env.Sound,
		Logger:   env.Logger,
		User:     user,
	})
	if env.Metrics != nil {
		env.Metrics.Subscribe(game.EventDispatcher)
	}
	return &GameState{sm: sm, game: game}
}

// GetGame возвращает текущую сессию
func (s *GameState) GetGame() *app.Game {
	return s.game
}

func (s *GameState) Enter() {}

func (s *GameState) Update(events []input.Event) {
	res := s.game.Step(events)
	switch {
	case res.Quit:
		s.sm.Quit()
	case res.Over:
		s.sm.SetState(NewGameOverState(s.sm, s))
	case res.Paused:
		s.game.ReleaseInput()
		s.sm.SetState(NewPauseState(s.sm, s))
	}
}

// endSession records the session once, however the game was left.
func (s *GameState) endSession() {
	if s.ended {
		return
	}
	s.ended = true
	env := s.sm.env
	if err := env.Profiles.RecordSession(s.game.SessionRecord(env.now())); err != nil {
		env.Logger.Error().Err(err).
			Str("user", s.game.User).
			Stringer("session", s.game.SessionID).
			Msg("failed to record session")
	}
}

func (s *GameState) Draw(r interfaces.Renderer) {
	s.game.Draw(r)
}

func (s *GameState) Exit() {}
