package app

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces/mocks"
	"go-zombie-survival/internal/types"
)

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Settings.PlayerMaxHealth == 0 {
		opts.Settings = config.DefaultSettings()
	}
	opts.Logger = zerolog.Nop()
	if opts.User == "" {
		opts.User = "tester"
	}
	return NewGame(opts)
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, Options{})

	require.NotNil(t, g.ECS.Player())
	assert.NotEqual(t, uuid.Nil, g.SessionID)
	assert.Empty(t, g.ECS.Enemies)
	assert.Zero(t, g.ECS.Now)

	pos := g.ECS.Positions[g.ECS.PlayerID]
	assert.Equal(t, float64(config.ScreenWidth)/2, pos.X)
	assert.Equal(t, float64(config.ScreenHeight)/2, pos.Y)
	assert.Equal(t, types.WeaponPistol, g.Weapon())
}

func TestStep_PauseAndQuitDoNotAdvance(t *testing.T) {
	g := newTestGame(t, Options{})

	res := g.Step([]input.Event{{Kind: input.KeyDown, Key: input.KeyEscape}})
	assert.True(t, res.Paused)
	assert.Zero(t, g.ECS.Now)

	res = g.Step([]input.Event{{Kind: input.Quit}})
	assert.True(t, res.Quit)
	assert.Zero(t, g.ECS.Now)
}

func TestStep_SpawnsOnInterval(t *testing.T) {
	g := newTestGame(t, Options{})
	tick := g.Settings.TickDuration()

	for i := 0; i < 1000 && len(g.ECS.Enemies) == 0; i++ {
		g.Step(nil)
	}
	require.Len(t, g.ECS.Enemies, 1)
	assert.GreaterOrEqual(t, g.ECS.Now, g.Settings.SpawnInterval)
	assert.Less(t, g.ECS.Now-tick, g.Settings.SpawnInterval)
}

func TestStep_GameOverFreezesWorld(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Step(nil)

	g.ECS.Healths[g.ECS.PlayerID].Value = 0
	res := g.Step(nil)
	assert.True(t, res.Over)
	now := g.ECS.Now

	res = g.Step(nil)
	assert.True(t, res.Over)
	assert.Equal(t, now, g.ECS.Now)
	assert.True(t, g.Over())
}

func TestStep_FireIsVoiced(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)
	sound.EXPECT().Play(types.ChannelWeapon, types.SoundPistolShot)

	g := newTestGame(t, Options{Sound: sound})
	var fired []event.WeaponFiredData
	g.Subscribe(event.ListenerFunc(func(e event.Event) {
		fired = append(fired, e.Data.(event.WeaponFiredData))
	}), event.WeaponFired)

	g.Step([]input.Event{{Kind: input.MouseDown, Button: input.ButtonLeft, X: 100, Y: 100}})

	require.Len(t, fired, 1)
	assert.Equal(t, types.WeaponPistol, fired[0].Weapon)

	assert.Len(t, g.ECS.Bullets, 1)
	assert.Equal(t, 1, g.Stats().ShotsFired)
	assert.Equal(t, 11, g.ECS.Player().Slot().Clip)
}

func TestUnsavedKills(t *testing.T) {
	g := newTestGame(t, Options{})
	g.ECS.Player().Kills = 5
	assert.Equal(t, 5, g.UnsavedKills())

	g.MarkSaved()
	assert.Zero(t, g.UnsavedKills())

	g.ECS.Player().Kills = 8
	assert.Equal(t, 3, g.UnsavedKills())
}

func TestSessionRecord(t *testing.T) {
	g := newTestGame(t, Options{User: "alice"})
	player := g.ECS.Player()
	player.Kills, player.ShotsFired, player.ShotsHit = 3, 10, 4
	g.ECS.Now = 90 * time.Second

	end := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := g.SessionRecord(end)
	assert.Equal(t, g.SessionID, rec.ID)
	assert.Equal(t, "alice", rec.User)
	assert.Equal(t, 3, rec.Kills)
	assert.Equal(t, 10, rec.ShotsFired)
	assert.Equal(t, 4, rec.ShotsHit)
	assert.Equal(t, 90*time.Second, rec.Duration)
	assert.Equal(t, end, rec.EndedAt)

	assert.InDelta(t, 0.4, g.Stats().Accuracy, 1e-9)
}
