package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealth_Clamps(t *testing.T) {
	h := &Health{Value: 10, Max: 100}

	assert.Equal(t, 10, h.Damage(25))
	assert.Equal(t, 0, h.Value)

	assert.Equal(t, 100, h.Heal(250))
	assert.Equal(t, 100, h.Value)

	assert.Equal(t, 0, h.Heal(5))
}

func TestWeaponSlot_State(t *testing.T) {
	w := &WeaponSlot{Clip: 5, Capacity: 12}
	interval := 300 * time.Millisecond

	assert.Equal(t, WeaponReady, w.State(0, interval), "never fired")

	w.HasFired = true
	w.LastShotAt = time.Second
	assert.Equal(t, WeaponCooldown, w.State(time.Second+100*time.Millisecond, interval))
	assert.Equal(t, WeaponReady, w.State(time.Second+interval, interval))

	w.ReloadTimer = 10
	w.ReloadTicks = 40
	assert.Equal(t, WeaponReloading, w.State(10*time.Second, interval))
	assert.InDelta(t, 0.75, w.ReloadProgress(), 1e-9)
}

func TestEnemy_CanAttack(t *testing.T) {
	e := &Enemy{}
	assert.True(t, e.CanAttack(0, time.Second))

	e.HasAttacked = true
	e.LastAttackAt = 2 * time.Second
	assert.False(t, e.CanAttack(2500*time.Millisecond, time.Second))
	assert.True(t, e.CanAttack(3*time.Second, time.Second))
}

func TestPlayer_Accuracy(t *testing.T) {
	p := &PlayerStateComponent{}
	assert.Zero(t, p.Accuracy())

	p.ShotsFired, p.ShotsHit = 4, 3
	assert.InDelta(t, 0.75, p.Accuracy(), 1e-9)
}

func TestCorpse_Frame(t *testing.T) {
	c := &Corpse{Frames: []int{5, 5, 4}}
	assert.Equal(t, 5, c.Frame())
	c.Frames = nil
	assert.Equal(t, 0, c.Frame())
}
