// internal/state/game_over_state.go
package state

import (
	"fmt"
	"time"

	"go-zombie-survival/internal/app"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/ui"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the session summary. Entering it saves the
// remaining kills and records the session.
type GameOverState struct {
	sm      *StateMachine
	session *GameState
	game    *app.Game
	stats   app.Stats
	menu    *ui.Menu
}

func NewGameOverState(sm *StateMachine, session *GameState) *GameOverState {
	return &GameOverState{
		sm:      sm,
		session: session,
		game:    session.GetGame(),
		menu:    ui.NewMenu("GAME OVER", itemMainMenu, itemExit),
	}
}

func (s *GameOverState) Enter() {
	env := s.sm.env
	s.stats = s.game.Stats()
	log := env.Logger.With().Str("user", s.game.User).Stringer("session", s.game.SessionID).Logger()

	if _, err := env.Profiles.SaveProgress(s.game.User, s.game.UnsavedKills()); err != nil {
		log.Error().Err(err).Msg("failed to save progress")
	} else {
		s.game.MarkSaved()
	}
	s.session.endSession()
	log.Info().
		Int("kills", s.stats.Kills).
		Float64("accuracy", s.stats.Accuracy).
		Dur("duration", s.stats.Duration).
		Msg("session ended")
}

func (s *GameOverState) Update(events []input.Event) {
	if s.menu.HandleInput(events) != ui.MenuChosen {
		return
	}
	switch s.menu.Current() {
	case itemMainMenu:
		s.sm.SetState(NewMenuState(s.sm))
	case itemExit:
		s.sm.Quit()
	}
}

func (s *GameOverState) Draw(r interfaces.Renderer) {
	s.game.Draw(r)
	ui.DrawOverlay(r)

	y := float64(config.ScreenHeight) / 4
	s.menu.Draw(r, y)

	y += 9 * ui.LineHeight
	lines := []string{
		fmt.Sprintf("Kills: %d", s.stats.Kills),
		fmt.Sprintf("Accuracy: %.0f%% (%d/%d)", s.stats.Accuracy*100, s.stats.ShotsHit, s.stats.ShotsFired),
		fmt.Sprintf("Survived: %s", s.stats.Duration.Truncate(time.Second)),
	}
	for _, line := range lines {
		ui.DrawCentered(r, line, y, config.TextLightColor)
		y += 1.5 * ui.LineHeight
	}
}

func (s *GameOverState) Exit() {}
