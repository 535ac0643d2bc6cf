// Package input turns device state into discrete events the game consumes.
package input

// Kind of an input event.
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	MouseDown
	MouseUp
	MouseMove
	Wheel
	Text
	Quit
)

// Key is a device-independent key code covering the keys the game binds.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyR
	Key1
	Key2
	Key3
	KeyP
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyArrowUp
	KeyArrowDown
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Event is one input occurrence. Only the fields relevant to Kind are set:
// Key for key events, Button and X/Y for mouse events, X/Y for moves,
// Delta for the wheel, Char for text.
type Event struct {
	Kind   Kind
	Key    Key
	Button Button
	X, Y   float64
	Delta  float64
	Char   rune
}

// Poller produces the events that happened since the previous call.
type Poller interface {
	Poll() []Event
}

// Pressed reports whether events contain a KeyDown for key.
func Pressed(events []Event, key Key) bool {
	for _, e := range events {
		if e.Kind == KeyDown && e.Key == key {
			return true
		}
	}
	return false
}

// QuitRequested reports whether events contain a Quit.
func QuitRequested(events []Event) bool {
	for _, e := range events {
		if e.Kind == Quit {
			return true
		}
	}
	return false
}

// Chars collects typed characters.
func Chars(events []Event) []rune {
	var out []rune
	for _, e := range events {
		if e.Kind == Text {
			out = append(out, e.Char)
		}
	}
	return out
}
