// internal/system/input.go
package system

import (
	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/types"
)

// InputResult carries the requests that leave the simulation.
type InputResult struct {
	Pause bool
	Quit  bool
}

// InputSystem переводит события ввода в намерения игрока.
type InputSystem struct {
	ecs *entity.ECS
}

func NewInputSystem(ecs *entity.ECS) *InputSystem {
	return &InputSystem{ecs: ecs}
}

var selectKeys = map[input.Key]types.WeaponType{
	input.Key1: types.WeaponPistol,
	input.Key2: types.WeaponM4,
	input.Key3: types.WeaponAWP,
}

func (s *InputSystem) Apply(events []input.Event) InputResult {
	var res InputResult
	player := s.ecs.Player()
	if player == nil {
		return res
	}
	intent := &player.Intent

	for _, e := range events {
		switch e.Kind {
		case input.KeyDown, input.KeyUp:
			down := e.Kind == input.KeyDown
			switch e.Key {
			case input.KeyW:
				intent.Up = down
			case input.KeyS:
				intent.Down = down
			case input.KeyA:
				intent.Left = down
			case input.KeyD:
				intent.Right = down
			case input.KeyR:
				intent.Reload = intent.Reload || down
			case input.KeyEscape, input.KeyP:
				res.Pause = res.Pause || down
			default:
				if w, ok := selectKeys[e.Key]; ok && down {
					intent.Select = w
					intent.HasSelect = true
				}
			}
		case input.MouseDown:
			intent.AimX, intent.AimY = e.X, e.Y
			if e.Button == input.ButtonLeft {
				intent.Firing = true
				intent.FirePressed = true
			}
		case input.MouseUp:
			if e.Button == input.ButtonLeft {
				intent.Firing = false
			}
		case input.MouseMove:
			intent.AimX, intent.AimY = e.X, e.Y
		case input.Wheel:
			if e.Delta > 0 {
				intent.Cycle = 1
			} else if e.Delta < 0 {
				intent.Cycle = -1
			}
		case input.Quit:
			res.Quit = true
		}
	}
	return res
}

// Release drops held movement and trigger, e.g. when the game is paused
// and key-up events will not reach the simulation.
func (s *InputSystem) Release() {
	if player := s.ecs.Player(); player != nil {
		player.Intent = component.Intent{AimX: player.Intent.AimX, AimY: player.Intent.AimY}
	}
}
