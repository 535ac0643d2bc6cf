// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadWeaponDefinitions reads a weapon configuration file and returns the
// built-in library with every weapon listed in the file replaced.
// Weapons missing from the file keep their defaults.
func LoadWeaponDefinitions(path string) (WeaponLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	library := DefaultWeapons()
	for _, def := range weaponDefs {
		wt, ok := WeaponByID(def.ID)
		if !ok {
			return nil, fmt.Errorf("unknown weapon id %q", def.ID)
		}
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("weapon %q: %w", def.ID, err)
		}
		def.Type = wt
		library[wt] = def
	}
	return library, nil
}

func (d WeaponDefinition) validate() error {
	switch {
	case d.MinDamage < 0 || d.MaxDamage < d.MinDamage:
		return fmt.Errorf("bad damage range [%d, %d]", d.MinDamage, d.MaxDamage)
	case d.ClipCapacity <= 0:
		return fmt.Errorf("clip capacity must be positive")
	case d.SlowFactor <= 0 || d.SlowFactor > 1:
		return fmt.Errorf("slow factor must be in (0, 1], got %v", d.SlowFactor)
	case d.BulletSpeed <= 0:
		return fmt.Errorf("bullet speed must be positive")
	case d.HitRadius < 0 || d.BulletSize < 0:
		return fmt.Errorf("hit radius and bullet size must not be negative")
	case d.ReloadTicks < 0:
		return fmt.Errorf("reload ticks must not be negative")
	case d.AmmoDrop.MaxAmount < d.AmmoDrop.MinAmount:
		return fmt.Errorf("bad ammo drop range [%d, %d]", d.AmmoDrop.MinAmount, d.AmmoDrop.MaxAmount)
	}
	return nil
}
