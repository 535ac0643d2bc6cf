package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = map[ebiten.Key]Key{
	ebiten.KeyW:         KeyW,
	ebiten.KeyA:         KeyA,
	ebiten.KeyS:         KeyS,
	ebiten.KeyD:         KeyD,
	ebiten.KeyR:         KeyR,
	ebiten.Key1:         Key1,
	ebiten.Key2:         Key2,
	ebiten.Key3:         Key3,
	ebiten.KeyP:         KeyP,
	ebiten.KeyEscape:    KeyEscape,
	ebiten.KeyEnter:     KeyEnter,
	ebiten.KeyBackspace: KeyBackspace,
	ebiten.KeyArrowUp:   KeyArrowUp,
	ebiten.KeyArrowDown: KeyArrowDown,
}

var buttons = []struct {
	eb ebiten.MouseButton
	b  Button
}{
	{ebiten.MouseButtonLeft, ButtonLeft},
	{ebiten.MouseButtonRight, ButtonRight},
}

// EbitenPoller reads ebiten's input state once per Update call.
type EbitenPoller struct {
	lastX, lastY int
	keys         []ebiten.Key
	chars        []rune
}

func NewEbitenPoller() *EbitenPoller {
	return &EbitenPoller{lastX: -1, lastY: -1}
}

// Poll must be called from ebiten's Update.
func (p *EbitenPoller) Poll() []Event {
	var events []Event

	if ebiten.IsWindowBeingClosed() {
		events = append(events, Event{Kind: Quit})
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if key, ok := keyMap[k]; ok {
			events = append(events, Event{Kind: KeyDown, Key: key})
		}
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if key, ok := keyMap[k]; ok {
			events = append(events, Event{Kind: KeyUp, Key: key})
		}
	}

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		events = append(events, Event{Kind: Text, Char: r})
	}

	x, y := ebiten.CursorPosition()
	if x != p.lastX || y != p.lastY {
		events = append(events, Event{Kind: MouseMove, X: float64(x), Y: float64(y)})
		p.lastX, p.lastY = x, y
	}

	for _, m := range buttons {
		if inpututil.IsMouseButtonJustPressed(m.eb) {
			events = append(events, Event{Kind: MouseDown, Button: m.b, X: float64(x), Y: float64(y)})
		}
		if inpututil.IsMouseButtonJustReleased(m.eb) {
			events = append(events, Event{Kind: MouseUp, Button: m.b, X: float64(x), Y: float64(y)})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		events = append(events, Event{Kind: Wheel, Delta: dy})
	}
	return events
}
