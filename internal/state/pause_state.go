// internal/state/pause_state.go
package state

import (
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/ui"
)

const (
	itemSave     = "Save"
	itemResume   = "Resume"
	itemMainMenu = "Main menu"
	itemExit     = "Exit"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm            *StateMachine
	previousState *GameState
	menu          *ui.Menu
	message       string
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: prevState,
		menu:          ui.NewMenu("PAUSED", itemSave, itemResume, itemMainMenu, itemExit),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(events []input.Event) {
	if input.Pressed(events, input.KeyP) {
		s.resume()
		return
	}
	switch s.menu.HandleInput(events) {
	case ui.MenuBack:
		s.resume()
	case ui.MenuChosen:
		switch s.menu.Current() {
		case itemSave:
			s.save()
		case itemResume:
			s.resume()
		case itemMainMenu:
			s.endSession()
			s.sm.SetState(NewMenuState(s.sm))
		case itemExit:
			s.sm.Quit()
		}
	}
}

// save adds the kills made since the last save to the profile.
func (s *PauseState) save() {
	game := s.previousState.GetGame()
	env := s.sm.env
	if _, err := env.Profiles.SaveProgress(game.User, game.UnsavedKills()); err != nil {
		env.Logger.Error().Err(err).Str("user", game.User).Msg("failed to save progress")
		s.message = "Save failed"
		return
	}
	game.MarkSaved()
	s.message = "Saved"
}

func (s *PauseState) endSession() {
	if s.previousState != nil {
		s.previousState.endSession()
	}
}

func (s *PauseState) resume() {
	s.sm.SetState(s.previousState)
}

// Message is the result of the last save.
func (s *PauseState) Message() string {
	return s.message
}

func (s *PauseState) Draw(r interfaces.Renderer) {
	if s.previousState != nil {
		s.previousState.Draw(r)
	}
	ui.DrawOverlay(r)
	s.menu.Draw(r, config.ScreenHeight/3)
	if s.message != "" {
		ui.DrawCentered(r, s.message, config.ScreenHeight-4*ui.LineHeight, config.TextLightColor)
	}
}

func (s *PauseState) Exit() {}
