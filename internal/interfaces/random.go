package interfaces

import "go-zombie-survival/internal/defs"

// Random is the randomness the simulation draws from.
// utils.PRNGService implements it.
type Random interface {
	Intn(n int) int
	Float64() float64
	// IntRange returns a value in [min, max] inclusive.
	IntRange(min, max int) int
	// Chance returns true with probability percent/100.
	Chance(percent int) bool
	ChooseWeighted(table defs.LootTable) string
}
