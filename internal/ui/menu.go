// internal/ui/menu.go
package ui

import (
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
)

// Menu - вертикальный список пунктов, управляемый стрелками и Enter.
type Menu struct {
	Title    string
	Items    []string
	Selected int
}

func NewMenu(title string, items ...string) *Menu {
	return &Menu{Title: title, Items: items}
}

// MenuAction is what a batch of input did to a menu.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuChosen
	MenuBack
)

// HandleInput moves the selection (wrapping around) and reports Enter
// or Escape.
func (m *Menu) HandleInput(events []input.Event) MenuAction {
	for _, e := range events {
		if e.Kind != input.KeyDown || len(m.Items) == 0 {
			continue
		}
		switch e.Key {
		case input.KeyArrowUp:
			m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
		case input.KeyArrowDown:
			m.Selected = (m.Selected + 1) % len(m.Items)
		case input.KeyEnter:
			return MenuChosen
		case input.KeyEscape:
			return MenuBack
		}
	}
	return MenuNone
}

// Current returns the selected item.
func (m *Menu) Current() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected]
}

func (m *Menu) Draw(r interfaces.Renderer, y float64) {
	DrawCentered(r, m.Title, y, config.TextLightColor)
	y += 3 * LineHeight
	for i, item := range m.Items {
		c := config.TextDimColor
		if i == m.Selected {
			c = config.HighlightColor
			item = "> " + item + " <"
		}
		DrawCentered(r, item, y, c)
		y += 2 * LineHeight
	}
}
