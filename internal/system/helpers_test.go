package system

import (
	"testing"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/types"

	"github.com/rs/zerolog"
)

// fakeRandom is a deterministic Random: ranges return their minimum,
// Intn returns intn, Chance returns chance and records each roll.
type fakeRandom struct {
	intn        int
	chance      bool
	chanceRolls []int
	pick        string
}

func (r *fakeRandom) Intn(n int) int {
	if r.intn >= n {
		return n - 1
	}
	return r.intn
}

func (r *fakeRandom) Float64() float64 { return 0 }

func (r *fakeRandom) IntRange(min, max int) int { return min }

func (r *fakeRandom) Chance(percent int) bool {
	r.chanceRolls = append(r.chanceRolls, percent)
	return r.chance
}

func (r *fakeRandom) ChooseWeighted(table defs.LootTable) string {
	if r.pick != "" {
		return r.pick
	}
	if len(table.Entries) == 0 {
		return ""
	}
	return table.Entries[0].ID
}

// recorder collects dispatched events.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

var allEventTypes = []event.EventType{
	event.WeaponFired, event.EmptyClick, event.ReloadStarted, event.ReloadFinished,
	event.WeaponSwitched, event.EnemySpawned, event.EnemyHit, event.EnemyKilled,
	event.PlayerDamaged, event.PickupCollected, event.LootDropped, event.PlayerMoved,
	event.SpawnRateChanged, event.GameOver,
}

type world struct {
	ecs        *entity.ECS
	settings   config.Settings
	weapons    defs.WeaponLibrary
	rng        *fakeRandom
	dispatcher *event.Dispatcher
	events     *recorder
	player     types.EntityID
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		ecs:        entity.NewECS(),
		settings:   config.DefaultSettings(),
		weapons:    defs.DefaultWeapons(),
		rng:        &fakeRandom{},
		dispatcher: event.NewDispatcher(),
		events:     &recorder{},
	}
	w.dispatcher.SubscribeAll(w.events, allEventTypes...)
	w.player = CreatePlayerEntity(w.ecs, w.settings, w.weapons)
	return w
}

func (w *world) weaponSystem() *WeaponSystem {
	return NewWeaponSystem(w.ecs, w.weapons, w.rng, w.dispatcher, zerolog.Nop())
}

// tick advances the game clock by one frame.
func (w *world) tick() {
	w.ecs.Advance(w.settings.TickDuration())
}
