// internal/state/name_entry_state.go
package state

import (
	"errors"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/profile"
	"go-zombie-survival/internal/storage"
	"go-zombie-survival/internal/ui"
)

// EntryMode says whether a name is being registered or loaded.
type EntryMode int

const (
	ModeRegister EntryMode = iota
	ModeLoad
)

var _ State = (*NameEntryState)(nil)

// NameEntryState asks for a user name and starts a session for it.
type NameEntryState struct {
	sm      *StateMachine
	mode    EntryMode
	input   ui.TextInput
	message string
}

func NewNameEntryState(sm *StateMachine, mode EntryMode) *NameEntryState {
	return &NameEntryState{sm: sm, mode: mode, input: ui.TextInput{MaxLen: config.MaxNameLength}}
}

func (s *NameEntryState) Enter() {}

func (s *NameEntryState) Update(events []input.Event) {
	if input.Pressed(events, input.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm))
		return
	}
	before := s.input.Value
	if !s.input.HandleInput(events) {
		if s.input.Value != before {
			s.message = ""
		}
		return
	}

	name := s.input.Value
	if s.mode == ModeRegister {
		s.register(name)
	} else {
		s.load(name)
	}
}

func (s *NameEntryState) register(name string) {
	ok, err := s.sm.env.Profiles.Register(name)
	switch {
	case errors.Is(err, profile.ErrInvalidName):
		s.message = "Invalid name"
	case err != nil:
		s.sm.env.Logger.Error().Err(err).Str("user", name).Msg("failed to register user")
		s.message = "Could not create profile"
	case !ok:
		s.message = "Name already taken"
	default:
		s.sm.SetState(NewGameState(s.sm, name))
	}
}

func (s *NameEntryState) load(name string) {
	_, err := s.sm.env.Profiles.Load(name)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.message = "No such user"
	case err != nil:
		s.sm.env.Logger.Error().Err(err).Str("user", name).Msg("failed to load user")
		s.message = "Could not load profile"
	default:
		s.sm.SetState(NewGameState(s.sm, name))
	}
}

// Message is the feedback shown under the input line.
func (s *NameEntryState) Message() string {
	return s.message
}

func (s *NameEntryState) Draw(r interfaces.Renderer) {
	r.Clear(config.BackgroundColor)

	title := "Enter a new name"
	if s.mode == ModeLoad {
		title = "Enter your name"
	}
	y := float64(config.ScreenHeight) / 3
	ui.DrawCentered(r, title, y, config.TextLightColor)
	ui.DrawCentered(r, s.input.Value+"_", y+3*ui.LineHeight, config.HighlightColor)
	if s.message != "" {
		ui.DrawCentered(r, s.message, y+5*ui.LineHeight, config.HealthBarColor)
	}
	ui.DrawCentered(r, "Enter to confirm, Esc to go back", y+8*ui.LineHeight, config.TextDimColor)
}

func (s *NameEntryState) Exit() {}
