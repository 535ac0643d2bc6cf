package system

import (
	"testing"
	"time"

	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlayer_FillsClipsFromReserve(t *testing.T) {
	w := newWorld(t)
	p := w.ecs.Player()

	pistol := p.Weapons[types.WeaponPistol]
	assert.Equal(t, 12, pistol.Clip)
	assert.Equal(t, 88, pistol.Reserve)
	assert.Equal(t, 0, p.Weapons[types.WeaponM4].Clip)
	assert.Equal(t, 0, p.Weapons[types.WeaponAWP].Reserve)
	assert.Equal(t, types.WeaponPistol, p.Current)
}

func TestFire_SpawnsBullet(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()

	res := ws.Fire(1000, 384)
	require.Equal(t, FireShot, res)

	p := w.ecs.Player()
	assert.Equal(t, 11, p.Slot().Clip)
	assert.Equal(t, 1, p.ShotsFired)
	require.Len(t, w.ecs.Bullets, 1)
	for id, b := range w.ecs.Bullets {
		assert.Equal(t, 30, b.Damage)
		assert.Equal(t, 30, b.OriginalDamage)
		assert.InDelta(t, 0, b.Angle, 1e-9)
		assert.InDelta(t, 683+40, w.ecs.Positions[id].X, 1e-9)
	}
	assert.Equal(t, 1, w.events.count(event.WeaponFired))
}

func TestFire_Cooldown(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()

	require.Equal(t, FireShot, ws.Fire(1000, 384))
	assert.Equal(t, FireBlocked, ws.Fire(1000, 384))

	w.ecs.Advance(299 * time.Millisecond)
	assert.Equal(t, FireBlocked, ws.Fire(1000, 384))

	w.ecs.Advance(time.Millisecond)
	assert.Equal(t, FireShot, ws.Fire(1000, 384))
	assert.Len(t, w.ecs.Bullets, 2)
}

func TestFire_AimInsidePlayerIsIgnored(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()

	assert.Equal(t, FireBlocked, ws.Fire(690, 390))
	assert.Empty(t, w.ecs.Bullets)
	assert.Equal(t, 12, w.ecs.Player().Slot().Clip)
}

func TestFire_EmptyClipStartsReload(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()
	slot := w.ecs.Player().Slot()
	slot.Clip = 0

	assert.Equal(t, FireReloading, ws.Fire(1000, 384))
	assert.True(t, slot.Reloading())
	assert.Empty(t, w.ecs.Bullets)
	assert.Equal(t, 1, w.events.count(event.ReloadStarted))
}

func TestFire_EmptyClick(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()
	slot := w.ecs.Player().Slot()
	slot.Clip, slot.Reserve = 0, 0

	assert.Equal(t, FireEmpty, ws.Fire(1000, 384))
	assert.Empty(t, w.ecs.Bullets)
	assert.Equal(t, 0, w.ecs.Player().ShotsFired)
	assert.Equal(t, 1, w.events.count(event.EmptyClick))

	// Щелчки тоже подчиняются интервалу стрельбы
	assert.Equal(t, FireBlocked, ws.Fire(1000, 384))
}

func TestReload_TransfersAfterReloadTicks(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()
	slot := w.ecs.Player().Slot()
	slot.Clip, slot.Reserve = 0, 50

	require.True(t, ws.Reload())
	ticks := w.weapons.Get(types.WeaponPistol).ReloadTicks
	for range ticks - 1 {
		ws.Update()
	}
	assert.Equal(t, 0, slot.Clip)
	assert.Equal(t, FireBlocked, ws.Fire(1000, 384))

	ws.Update()
	assert.Equal(t, 12, slot.Clip)
	assert.Equal(t, 38, slot.Reserve)
	assert.False(t, slot.Reloading())
	assert.Equal(t, 1, w.events.count(event.ReloadFinished))
}

func TestReload_ConservesAmmo(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()
	slot := w.ecs.Player().Slot()
	slot.Clip, slot.Reserve = 5, 4
	total := slot.Clip + slot.Reserve

	require.True(t, ws.Reload())
	for slot.Reloading() {
		ws.Update()
	}
	assert.Equal(t, 9, slot.Clip)
	assert.Equal(t, 0, slot.Reserve)
	assert.Equal(t, total, slot.Clip+slot.Reserve)
}

func TestReload_Refused(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()
	slot := w.ecs.Player().Slot()

	assert.False(t, ws.Reload(), "full clip")

	slot.Clip, slot.Reserve = 3, 0
	assert.False(t, ws.Reload(), "empty reserve")

	slot.Reserve = 10
	require.True(t, ws.Reload())
	assert.False(t, ws.Reload(), "already reloading")
	assert.Equal(t, 1, w.events.count(event.ReloadStarted))
}

func TestSwitch(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()
	p := w.ecs.Player()

	assert.False(t, ws.Switch(types.WeaponPistol), "same weapon")
	assert.False(t, ws.Switch(types.WeaponCount), "invalid weapon")

	require.True(t, ws.Switch(types.WeaponM4))
	assert.Equal(t, types.WeaponM4, p.Current)
	assert.Equal(t, 1, w.events.count(event.WeaponSwitched))
}

func TestSwitch_BlockedWhileReloading(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()
	slot := w.ecs.Player().Slot()
	slot.Clip = 0
	require.True(t, ws.Reload())

	assert.False(t, ws.Switch(types.WeaponAWP))
	assert.Equal(t, types.WeaponPistol, w.ecs.Player().Current)
}

func TestCycle_Wraps(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()
	p := w.ecs.Player()

	require.True(t, ws.Cycle(-1))
	assert.Equal(t, types.WeaponAWP, p.Current)
	require.True(t, ws.Cycle(1))
	assert.Equal(t, types.WeaponPistol, p.Current)
	assert.False(t, ws.Cycle(0))
}

func TestProcessIntent_AutomaticFire(t *testing.T) {
	w := newWorld(t)
	ws := w.weaponSystem()
	p := w.ecs.Player()
	p.Intent.AimX, p.Intent.AimY = 1000, 384
	p.Intent.Firing = true

	// Пистолет стреляет только по нажатию
	ws.ProcessIntent()
	assert.Empty(t, w.ecs.Bullets)

	p.Weapons[types.WeaponM4].Clip = 30
	p.Intent.Select, p.Intent.HasSelect = types.WeaponM4, true
	ws.ProcessIntent()
	assert.Len(t, w.ecs.Bullets, 1)

	p.Intent.ClearOneShots()
	w.ecs.Advance(100 * time.Millisecond)
	ws.ProcessIntent()
	assert.Len(t, w.ecs.Bullets, 2)
	assert.Equal(t, 28, p.Slot().Clip)
}
