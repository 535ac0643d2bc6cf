package system

import (
	"bytes"
	"math"
	"testing"
	"time"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/types"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnSystem_SpawnsOnInterval(t *testing.T) {
	w := newWorld(t)
	s := NewSpawnSystem(w.ecs, w.settings, w.rng, w.dispatcher, zerolog.Nop())

	s.Update()
	assert.Equal(t, 0, s.ActiveEnemies())

	w.ecs.Advance(2999 * time.Millisecond)
	s.Update()
	assert.Equal(t, 0, s.ActiveEnemies())

	w.ecs.Advance(time.Millisecond)
	s.Update()
	require.Equal(t, 1, s.ActiveEnemies())
	assert.Equal(t, 1, w.events.count(event.EnemySpawned))

	s.Update()
	assert.Equal(t, 1, s.ActiveEnemies(), "one spawn per interval")
}

func TestSpawnSystem_SpawnsOutsideScreen(t *testing.T) {
	d := 40.0
	tests := []struct {
		name string
		edge int
		ok   func(x, y float64) bool
	}{
		{"left", EdgeLeft, func(x, y float64) bool { return x >= -2*d && x <= -d }},
		{"top", EdgeTop, func(x, y float64) bool { return y >= -2*d && y <= -d }},
		{"right", EdgeRight, func(x, y float64) bool { return x >= config.ScreenWidth+d && x <= config.ScreenWidth+2*d }},
		{"bottom", EdgeBottom, func(x, y float64) bool { return y >= config.ScreenHeight+d && y <= config.ScreenHeight+2*d }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			w.rng.intn = tt.edge
			s := NewSpawnSystem(w.ecs, w.settings, w.rng, w.dispatcher, zerolog.Nop())
			x, y := s.spawnPoint()
			assert.True(t, tt.ok(x, y), "got (%v, %v)", x, y)
		})
	}
}

func TestSpawnSystem_Difficulty(t *testing.T) {
	w := newWorld(t)
	s := NewSpawnSystem(w.ecs, w.settings, w.rng, w.dispatcher, zerolog.Nop())
	require.Equal(t, 3000*time.Millisecond, s.SpawnInterval)

	s.UpdateDifficulty(10)
	assert.Equal(t, 3000*time.Millisecond, s.SpawnInterval)
	assert.Equal(t, 0, w.events.count(event.SpawnRateChanged))

	s.UpdateDifficulty(11)
	assert.Equal(t, 2500*time.Millisecond, s.SpawnInterval)
	s.UpdateDifficulty(11)
	assert.Equal(t, 1, w.events.count(event.SpawnRateChanged))

	s.UpdateDifficulty(121)
	assert.Equal(t, 500*time.Millisecond, s.SpawnInterval)
}

func TestSpawnSystem_DifficultyLogsActiveEnemies(t *testing.T) {
	w := newWorld(t)
	var buf bytes.Buffer
	s := NewSpawnSystem(w.ecs, w.settings, w.rng, w.dispatcher, zerolog.New(&buf))
	CreateEnemyEntity(w.ecs, w.settings, 10, 10)
	CreateEnemyEntity(w.ecs, w.settings, 20, 20)

	s.UpdateDifficulty(11)

	assert.Contains(t, buf.String(), `"active":2`)
	assert.Contains(t, buf.String(), `"kills":11`)
}

func TestMovementSystem_ChasesPlayer(t *testing.T) {
	w := newWorld(t)
	ms := NewMovementSystem(w.ecs)
	pos := w.ecs.Positions[w.player]

	fast := CreateEnemyEntity(w.ecs, w.settings, pos.X-100, pos.Y)
	slow := CreateEnemyEntity(w.ecs, w.settings, pos.X+100, pos.Y)
	w.ecs.Enemies[slow].SlowFactor = 0.5

	ms.Update()

	assert.InDelta(t, pos.X-97, w.ecs.Positions[fast].X, 1e-9)
	assert.InDelta(t, pos.X+98.5, w.ecs.Positions[slow].X, 1e-9)
	assert.InDelta(t, math.Pi, math.Abs(w.ecs.Enemies[slow].Angle), 1e-9)
	assert.InDelta(t, w.ecs.Positions[fast].X, w.ecs.Transforms[fast].X, 1e-9)
}

func TestStatusEffectSystem_Recovers(t *testing.T) {
	w := newWorld(t)
	ss := NewStatusEffectSystem(w.ecs, w.settings.SlowRecovery)

	a := CreateEnemyEntity(w.ecs, w.settings, 0, 0)
	b := CreateEnemyEntity(w.ecs, w.settings, 0, 0)
	w.ecs.Enemies[a].SlowFactor = 0.5
	w.ecs.Enemies[b].SlowFactor = 0.995

	ss.Update()

	assert.InDelta(t, 0.51, w.ecs.Enemies[a].SlowFactor, 1e-9)
	assert.Equal(t, 1.0, w.ecs.Enemies[b].SlowFactor)
}

func TestProjectileSystem(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs)

	inside := w.bullet(types.WeaponPistol, 100, 100, 30)
	leaving := w.bullet(types.WeaponPistol, 1360, 384, 30)

	ps.Update()

	require.True(t, w.ecs.Alive(inside))
	assert.InDelta(t, 150, w.ecs.Positions[inside].X, 1e-9)
	assert.InDelta(t, 50, w.ecs.Bullets[inside].Traveled, 1e-9)
	assert.False(t, w.ecs.Alive(leaving))
}

func TestLifetimeSystem_PickupExpires(t *testing.T) {
	w := newWorld(t)
	ls := NewLifetimeSystem(w.ecs)

	last := CreatePickupEntity(w.ecs, types.PickupAmmo, types.WeaponPistol, 5, 1, 10, 10)
	longer := CreatePickupEntity(w.ecs, types.PickupHealth, types.WeaponPistol, 5, 2, 10, 10)

	ls.Update()

	assert.False(t, w.ecs.Alive(last))
	assert.True(t, w.ecs.Alive(longer))
	assert.Equal(t, 1, w.ecs.Pickups[longer].Lifetime)
}

func TestLifetimeSystem_CorpseAnimation(t *testing.T) {
	w := newWorld(t)
	ls := NewLifetimeSystem(w.ecs)
	id := CreateCorpseEntity(w.ecs, 10, 10, 0, 1, []int{4, 5})

	ls.Update()
	assert.Equal(t, 4, w.ecs.Renderables[id].Sprite.Frame)
	ls.Update()
	assert.Equal(t, 5, w.ecs.Renderables[id].Sprite.Frame)
	require.True(t, w.ecs.Alive(id))

	ls.Update()
	assert.False(t, w.ecs.Alive(id))
}

func TestPlayerSystem_MovesWithinMargin(t *testing.T) {
	w := newWorld(t)
	ps := NewPlayerSystem(w.ecs, w.settings, w.dispatcher)
	p := w.ecs.Player()
	pos := w.ecs.Positions[w.player]
	startX := pos.X

	p.Intent.Right = true
	p.Intent.AimX, p.Intent.AimY = pos.X, 0
	ps.Update()

	assert.InDelta(t, startX+3, pos.X, 1e-9)
	assert.True(t, p.Moving)
	assert.InDelta(t, -math.Pi/2, p.Angle, 1e-9)
	assert.Equal(t, 1, w.events.count(event.PlayerMoved))

	pos.X = config.ScreenWidth - w.settings.AllowedMargin
	ps.Update()
	assert.Equal(t, config.ScreenWidth-w.settings.AllowedMargin, pos.X)
	assert.False(t, p.Moving)
	assert.Equal(t, 1, w.events.count(event.PlayerMoved))
}

func TestInputSystem_Apply(t *testing.T) {
	w := newWorld(t)
	is := NewInputSystem(w.ecs)
	intent := &w.ecs.Player().Intent

	res := is.Apply([]input.Event{
		{Kind: input.KeyDown, Key: input.KeyW},
		{Kind: input.KeyDown, Key: input.KeyD},
		{Kind: input.KeyUp, Key: input.KeyD},
		{Kind: input.MouseMove, X: 10, Y: 20},
		{Kind: input.MouseDown, Button: input.ButtonLeft, X: 30, Y: 40},
		{Kind: input.Wheel, Delta: -1},
		{Kind: input.KeyDown, Key: input.Key2},
		{Kind: input.KeyDown, Key: input.KeyR},
	})

	assert.False(t, res.Pause)
	assert.False(t, res.Quit)
	assert.True(t, intent.Up)
	assert.False(t, intent.Right)
	assert.True(t, intent.Firing)
	assert.True(t, intent.FirePressed)
	assert.Equal(t, 30.0, intent.AimX)
	assert.Equal(t, 40.0, intent.AimY)
	assert.Equal(t, -1, intent.Cycle)
	assert.True(t, intent.HasSelect)
	assert.Equal(t, types.WeaponM4, intent.Select)
	assert.True(t, intent.Reload)

	res = is.Apply([]input.Event{
		{Kind: input.MouseUp, Button: input.ButtonLeft},
		{Kind: input.KeyDown, Key: input.KeyEscape},
		{Kind: input.Quit},
	})
	assert.False(t, intent.Firing)
	assert.True(t, res.Pause)
	assert.True(t, res.Quit)

	is.Release()
	assert.False(t, intent.Up)
	assert.Equal(t, 30.0, intent.AimX)
}

func TestStateSystem_GameOverOnce(t *testing.T) {
	w := newWorld(t)
	ss := NewStateSystem(w.ecs, w.dispatcher, zerolog.Nop())
	p := w.ecs.Player()
	p.Kills, p.ShotsFired, p.ShotsHit = 3, 10, 4

	ss.Update()
	assert.False(t, ss.Over())

	w.ecs.Healths[w.player].Value = 0
	w.ecs.Advance(5 * time.Second)
	ss.Update()
	ss.Update()

	require.True(t, ss.Over())
	require.Equal(t, 1, w.events.count(event.GameOver))
	data := w.events.events[len(w.events.events)-1].Data.(event.GameOverData)
	assert.Equal(t, 3, data.Kills)
	assert.Equal(t, 5*time.Second, data.Duration)
}
