// internal/state/menu_state.go
package state

import (
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/ui"
)

const (
	itemNewGame     = "New game"
	itemLoadGame    = "Load game"
	itemLeaderboard = "Leaderboard"
	itemQuit        = "Quit"
)

var _ State = (*MenuState)(nil)

// MenuState - главное меню
type MenuState struct {
	sm   *StateMachine
	menu *ui.Menu
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{
		sm:   sm,
		menu: ui.NewMenu(config.Title, itemNewGame, itemLoadGame, itemLeaderboard, itemQuit),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(events []input.Event) {
	if m.menu.HandleInput(events) != ui.MenuChosen {
		return
	}
	switch m.menu.Current() {
	case itemNewGame:
		m.sm.SetState(NewNameEntryState(m.sm, ModeRegister))
	case itemLoadGame:
		m.sm.SetState(NewNameEntryState(m.sm, ModeLoad))
	case itemLeaderboard:
		m.sm.SetState(NewLeaderboardState(m.sm))
	case itemQuit:
		m.sm.Quit()
	}
}

func (m *MenuState) Draw(r interfaces.Renderer) {
	r.Clear(config.BackgroundColor)
	m.menu.Draw(r, config.ScreenHeight/3)
}

func (m *MenuState) Exit() {}
