// internal/state/state.go
package state

import (
	"time"

	"go-zombie-survival/internal/assets"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/profile"
	"go-zombie-survival/internal/telemetry"

	"github.com/rs/zerolog"
)

// State - интерфейс для всех состояний
type State interface {
	Enter()
	Update(events []input.Event)
	Draw(r interfaces.Renderer)
	Exit()
}

// Env is what every screen shares: the rules of a session, the profile
// store and the outputs a session is wired to.
type Env struct {
	Settings config.Settings
	Weapons  defs.WeaponLibrary
	Assets   *assets.Table
	Profiles *profile.Service
	Sound    interfaces.SoundPlayer // may be nil
	Metrics  *telemetry.Metrics     // may be nil
	Logger   zerolog.Logger
	Clock    func() time.Time
}

func (e *Env) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock()
}

// sessionOwner is a state that holds a running game session.
type sessionOwner interface {
	endSession()
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current State
	env     *Env
	done    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(env *Env) *StateMachine {
	return &StateMachine{env: env}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Quit ends the application after the current frame. A running
// session is recorded first.
func (sm *StateMachine) Quit() {
	if sm.done {
		return
	}
	if owner, ok := sm.current.(sessionOwner); ok {
		owner.endSession()
	}
	sm.done = true
}

// Done reports whether Quit was requested.
func (sm *StateMachine) Done() bool {
	return sm.done
}

// Update обновляет текущее состояние. Closing the window quits from any
// screen.
func (sm *StateMachine) Update(events []input.Event) {
	if sm.done {
		return
	}
	if input.QuitRequested(events) {
		sm.env.Logger.Info().Msg("quit requested")
		sm.Quit()
		return
	}
	if sm.current != nil {
		sm.current.Update(events)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(r interfaces.Renderer) {
	if sm.current != nil {
		sm.current.Draw(r)
	}
}
