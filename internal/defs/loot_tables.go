// internal/defs/loot_tables.go
package defs

// DropRule описывает одну независимую проверку выпадения при смерти зомби.
// Rate - шанс в процентах, Amount - диапазон содержимого,
// Lifetime - сколько тиков предмет лежит на земле,
// Jitter - максимальный разброс от точки смерти по каждой оси.
type DropRule struct {
	Rate      int `json:"rate"`
	MinAmount int `json:"min_amount"`
	MaxAmount int `json:"max_amount"`
	Lifetime  int `json:"lifetime"`
	Jitter    int `json:"jitter"`
}

// HealthPackDrop - аптечка.
var HealthPackDrop = DropRule{Rate: 55, MinAmount: 10, MaxAmount: 25, Lifetime: 200, Jitter: 50}

// LootEntry is one weighted option of a LootTable.
type LootEntry struct {
	ID     string `json:"id"`
	Weight int    `json:"weight"`
}

// LootTable is a weighted pick list.
type LootTable struct {
	Entries []LootEntry `json:"entries"`
}
