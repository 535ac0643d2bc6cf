// internal/ui/text.go
package ui

import (
	"image/color"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
)

// DrawCentered draws s horizontally centred at baseline y.
func DrawCentered(r interfaces.Renderer, s string, y float64, c color.Color) {
	r.DrawText(s, (config.ScreenWidth-TextWidth(s))/2, y, c)
}

// TextInput collects a single line of typed text.
type TextInput struct {
	Value  string
	MaxLen int
}

// HandleInput appends typed characters and handles Backspace. It returns
// true when Enter was pressed.
func (t *TextInput) HandleInput(events []input.Event) bool {
	for _, e := range events {
		switch {
		case e.Kind == input.Text:
			if e.Char < ' ' {
				continue
			}
			if t.MaxLen > 0 && len([]rune(t.Value)) >= t.MaxLen {
				continue
			}
			t.Value += string(e.Char)
		case e.Kind == input.KeyDown && e.Key == input.KeyBackspace:
			if runes := []rune(t.Value); len(runes) > 0 {
				t.Value = string(runes[:len(runes)-1])
			}
		case e.Kind == input.KeyDown && e.Key == input.KeyEnter:
			return true
		}
	}
	return false
}

// DrawOverlay dims the whole screen.
func DrawOverlay(r interfaces.Renderer) {
	r.DrawRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, true)
}
