package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.Equal(t, "zombie.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "localhost:12201", cfg.Graylog.Address)
	assert.False(t, cfg.Graylog.Enabled)
	assert.True(t, cfg.Audio.Enabled)

	g := cfg.Game
	assert.Equal(t, 100, g.PlayerMaxHealth)
	assert.Equal(t, 3.0, g.PlayerSpeed)
	assert.Equal(t, 20.0, g.AllowedMargin)
	assert.Equal(t, 20, g.EnemyDamage)
	assert.Equal(t, time.Second, g.EnemyAttackInterval)
	assert.Equal(t, 3*time.Second, g.SpawnInterval)
	assert.Equal(t, 20, g.BulletDamageCutoff)
	assert.Equal(t, 3, g.CorpseFrameMultiplier)
	assert.Equal(t, 200, g.CorpseDisplayFrames)
	require.Len(t, g.SpawnRamp, 4)
	assert.Equal(t, SpawnStep{Kills: 10, Interval: 2500 * time.Millisecond}, g.SpawnRamp[0])
	assert.Equal(t, SpawnStep{Kills: 120, Interval: 500 * time.Millisecond}, g.SpawnRamp[3])
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"storage": { "type": "memory" },
		"game": { "playerMaxHealth": 150, "enemyAttackInterval": "500ms" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(cfg), 0644))

	loaded, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, "memory", loaded.Storage.Type)
	assert.Equal(t, 150, loaded.Game.PlayerMaxHealth)
	assert.Equal(t, 500*time.Millisecond, loaded.Game.EnemyAttackInterval)
	// untouched keys keep their defaults
	assert.Equal(t, 100, loaded.Game.EnemyHealth)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ZOMBIE_LOGLEVEL", "warn")
	t.Setenv("ZOMBIE_GAME_ENEMYDAMAGE", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7, cfg.Game.EnemyDamage)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{not json`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsUnknownStorage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"storage": {"type": "redis"}}`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage type")
}

func TestSpawnIntervalFor(t *testing.T) {
	s := DefaultSettings()

	cases := []struct {
		kills int
		want  time.Duration
	}{
		{0, 3000 * time.Millisecond},
		{10, 3000 * time.Millisecond},
		{11, 2500 * time.Millisecond},
		{26, 1500 * time.Millisecond},
		{76, 1000 * time.Millisecond},
		{121, 500 * time.Millisecond},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, s.SpawnIntervalFor(c.kills), "kills=%d", c.kills)
	}
}

func TestTickDuration(t *testing.T) {
	assert.Equal(t, time.Second/60, DefaultSettings().TickDuration())
}

func TestDefaultSettings_IgnoresEnvironment(t *testing.T) {
	t.Setenv("ZOMBIE_GAME_ENEMYHEALTH", "5")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Game.EnemyHealth, "Load honours the override")

	assert.Equal(t, 100, DefaultSettings().EnemyHealth)
}
