package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SpawnStep lowers the spawn interval once the player has killed more
// than Kills enemies.
type SpawnStep struct {
	Kills    int           `json:"kills" mapstructure:"kills"`
	Interval time.Duration `json:"interval" mapstructure:"interval"`
}

// Settings are the gameplay rules of one session. They are never
// mutated after Load.
type Settings struct {
	Seed int64 `json:"seed" mapstructure:"seed"`

	PlayerSpeed     float64 `json:"playerSpeed" mapstructure:"playerSpeed"`
	PlayerMaxHealth int     `json:"playerMaxHealth" mapstructure:"playerMaxHealth"`
	AllowedMargin   float64 `json:"allowedMargin" mapstructure:"allowedMargin"`

	EnemySpeed          float64       `json:"enemySpeed" mapstructure:"enemySpeed"`
	EnemyHealth         int           `json:"enemyHealth" mapstructure:"enemyHealth"`
	EnemyDamage         int           `json:"enemyDamage" mapstructure:"enemyDamage"`
	EnemyAttackInterval time.Duration `json:"enemyAttackInterval" mapstructure:"enemyAttackInterval"`
	SlowRecovery        float64       `json:"slowRecovery" mapstructure:"slowRecovery"`

	SpawnDistance float64       `json:"spawnDistance" mapstructure:"spawnDistance"`
	SpawnInterval time.Duration `json:"spawnInterval" mapstructure:"spawnInterval"`
	SpawnRamp     []SpawnStep   `json:"spawnRamp" mapstructure:"spawnRamp"`

	BulletDamageCutoff int `json:"bulletDamageCutoff" mapstructure:"bulletDamageCutoff"`

	CorpseFrameMultiplier int `json:"corpseFrameMultiplier" mapstructure:"corpseFrameMultiplier"`
	CorpseDisplayFrames   int `json:"corpseDisplayFrames" mapstructure:"corpseDisplayFrames"`
}

// TickDuration is how much game clock one frame advances.
func (s Settings) TickDuration() time.Duration {
	return time.Second / FPS
}

// SpawnIntervalFor returns the spawn interval for a cumulative kill count.
func (s Settings) SpawnIntervalFor(kills int) time.Duration {
	interval := s.SpawnInterval
	for _, step := range s.SpawnRamp {
		if kills > step.Kills {
			interval = step.Interval
		}
	}
	return interval
}

type GraylogConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Address string `json:"address" mapstructure:"address"`
}

type PostgresConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     string `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
}

// DSN builds the libpq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.Username, p.Password, p.Database)
}

// StorageConfig selects the profile store backend.
type StorageConfig struct {
	Type       string         `json:"type" mapstructure:"type"` // sqlite, postgres or memory
	SQLitePath string         `json:"sqlitePath" mapstructure:"sqlitePath"`
	Postgres   PostgresConfig `json:"postgres" mapstructure:"postgres"`
}

type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// Config is everything read at startup.
type Config struct {
	LogLevel    string        `json:"logLevel" mapstructure:"logLevel"`
	LogsDir     string        `json:"logsDir" mapstructure:"logsDir"`
	Graylog     GraylogConfig `json:"graylog" mapstructure:"graylog"`
	Storage     StorageConfig `json:"storage" mapstructure:"storage"`
	Audio       AudioConfig   `json:"audio" mapstructure:"audio"`
	WeaponsFile string        `json:"weaponsFile" mapstructure:"weaponsFile"`
	Game        Settings      `json:"game" mapstructure:"game"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logsDir", "")

	v.SetDefault("graylog.enabled", false)
	v.SetDefault("graylog.address", "localhost:12201")

	v.SetDefault("storage.type", "sqlite")
	v.SetDefault("storage.sqlitePath", "zombie.db")
	v.SetDefault("storage.postgres.host", "localhost")
	v.SetDefault("storage.postgres.port", "5432")
	v.SetDefault("storage.postgres.username", "postgres")
	v.SetDefault("storage.postgres.password", "postgres")
	v.SetDefault("storage.postgres.database", "zombie")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)

	v.SetDefault("weaponsFile", "")

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.playerSpeed", 3.0)
	v.SetDefault("game.playerMaxHealth", 100)
	v.SetDefault("game.allowedMargin", 20.0)
	v.SetDefault("game.enemySpeed", 3.0)
	v.SetDefault("game.enemyHealth", 100)
	v.SetDefault("game.enemyDamage", 20)
	v.SetDefault("game.enemyAttackInterval", "1000ms")
	v.SetDefault("game.slowRecovery", 0.01)
	v.SetDefault("game.spawnDistance", 40.0)
	v.SetDefault("game.spawnInterval", "3000ms")
	v.SetDefault("game.spawnRamp", []map[string]any{
		{"kills": 10, "interval": "2500ms"},
		{"kills": 25, "interval": "1500ms"},
		{"kills": 75, "interval": "1000ms"},
		{"kills": 120, "interval": "500ms"},
	})
	v.SetDefault("game.bulletDamageCutoff", 20)
	v.SetDefault("game.corpseFrameMultiplier", 3)
	v.SetDefault("game.corpseDisplayFrames", 200)
}

// Load reads zombie.cfg.json from configDir when it exists, applies
// ZOMBIE_* environment overrides and falls back to defaults for the rest.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configDir != "" {
		path := filepath.Join(configDir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	return decode(v)
}

// decode unmarshals, validates and normalises the merged configuration.
func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	sort.Slice(cfg.Game.SpawnRamp, func(i, j int) bool {
		return cfg.Game.SpawnRamp[i].Kills < cfg.Game.SpawnRamp[j].Kills
	})
	return &cfg, nil
}

func (c *Config) validate() error {
	g := c.Game
	switch {
	case g.PlayerMaxHealth <= 0:
		return fmt.Errorf("game.playerMaxHealth must be positive, got %d", g.PlayerMaxHealth)
	case g.EnemyHealth <= 0:
		return fmt.Errorf("game.enemyHealth must be positive, got %d", g.EnemyHealth)
	case g.EnemyDamage < 1:
		return fmt.Errorf("game.enemyDamage must be at least 1, got %d", g.EnemyDamage)
	case g.SpawnInterval <= 0:
		return fmt.Errorf("game.spawnInterval must be positive, got %s", g.SpawnInterval)
	case g.CorpseFrameMultiplier < 1:
		return fmt.Errorf("game.corpseFrameMultiplier must be at least 1, got %d", g.CorpseFrameMultiplier)
	}
	switch c.Storage.Type {
	case "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("unknown storage type: %s", c.Storage.Type)
	}
	return nil
}

// DefaultSettings returns the built-in gameplay rules. Neither config
// files nor the environment are consulted.
func DefaultSettings() Settings {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(fmt.Sprintf("built-in defaults are invalid: %v", err))
	}
	return cfg.Game
}
