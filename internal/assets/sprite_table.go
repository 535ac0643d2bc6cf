package assets

import (
	"fmt"
	"strconv"

	"go-zombie-survival/internal/defs"
)

// deathSheetSizes - количество кадров в каждой анимации смерти зомби.
var deathSheetSizes = []int{6, 6, 10}

// Table is the read-only animation data shared by every entity.
// It is built once at startup and never mutated afterwards.
type Table struct {
	deathSheets [][]int
	sheetPick   defs.LootTable
}

// NewTable builds the animation table.
func NewTable() *Table {
	t := &Table{}
	for i, n := range deathSheetSizes {
		frames := make([]int, n)
		for f := range frames {
			frames[f] = f
		}
		t.deathSheets = append(t.deathSheets, frames)
		t.sheetPick.Entries = append(t.sheetPick.Entries, defs.LootEntry{ID: strconv.Itoa(i), Weight: 1})
	}
	return t
}

// SheetCount is the number of death animations.
func (t *Table) SheetCount() int {
	return len(t.deathSheets)
}

// SheetSize returns the number of distinct frames of a death sheet.
func (t *Table) SheetSize(sheet int) int {
	if sheet < 0 || sheet >= len(t.deathSheets) {
		return 0
	}
	return len(t.deathSheets[sheet])
}

// SheetPick is the weighted table a corpse sheet is drawn from.
func (t *Table) SheetPick() defs.LootTable {
	return t.sheetPick
}

// ParseSheet converts a SheetPick id back to a sheet index.
func (t *Table) ParseSheet(id string) (int, error) {
	sheet, err := strconv.Atoi(id)
	if err != nil || sheet < 0 || sheet >= len(t.deathSheets) {
		return 0, fmt.Errorf("unknown death sheet %q", id)
	}
	return sheet, nil
}

// CorpseFrames returns a fresh frame sequence for a corpse: every frame of
// the sheet shown multiplier ticks, then the last frame held for hold ticks.
// The caller owns the returned slice.
func (t *Table) CorpseFrames(sheet, multiplier, hold int) []int {
	if sheet < 0 || sheet >= len(t.deathSheets) {
		return nil
	}
	src := t.deathSheets[sheet]
	if multiplier < 1 {
		multiplier = 1
	}
	out := make([]int, 0, len(src)*multiplier+hold)
	for _, f := range src {
		for range multiplier {
			out = append(out, f)
		}
	}
	last := src[len(src)-1]
	for range hold {
		out = append(out, last)
	}
	return out
}
