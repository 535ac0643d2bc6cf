// internal/state/leaderboard_state.go
package state

import (
	"fmt"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/profile"
	"go-zombie-survival/internal/ui"
)

var _ State = (*LeaderboardState)(nil)

// LeaderboardState lists the best players.
type LeaderboardState struct {
	sm      *StateMachine
	entries []profile.Entry
	failed  bool
}

func NewLeaderboardState(sm *StateMachine) *LeaderboardState {
	return &LeaderboardState{sm: sm}
}

func (s *LeaderboardState) Enter() {
	entries, err := s.sm.env.Profiles.Leaderboard(config.LeaderboardSize)
	if err != nil {
		s.sm.env.Logger.Error().Err(err).Msg("failed to load leaderboard")
		s.failed = true
		return
	}
	s.entries = entries
}

// Entries are the rows on screen.
func (s *LeaderboardState) Entries() []profile.Entry {
	return s.entries
}

func (s *LeaderboardState) Update(events []input.Event) {
	if input.Pressed(events, input.KeyEnter) || input.Pressed(events, input.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *LeaderboardState) Draw(r interfaces.Renderer) {
	r.Clear(config.BackgroundColor)
	y := float64(config.ScreenHeight) / 4
	ui.DrawCentered(r, "LEADERBOARD", y, config.TextLightColor)
	y += 3 * ui.LineHeight

	switch {
	case s.failed:
		ui.DrawCentered(r, "Leaderboard unavailable", y, config.HealthBarColor)
	case len(s.entries) == 0:
		ui.DrawCentered(r, "No players yet", y, config.TextDimColor)
	}
	for _, e := range s.entries {
		ui.DrawCentered(r, fmt.Sprintf("%d. %-16s %6d", e.Rank, e.Name, e.Score), y, config.TextLightColor)
		y += 2 * ui.LineHeight
	}
	ui.DrawCentered(r, "Press Enter to go back", float64(config.ScreenHeight)-3*ui.LineHeight, config.TextDimColor)
}

func (s *LeaderboardState) Exit() {}
