// Package gormstorage implements storage.Backend on top of GORM. The same
// code serves the embedded SQLite file and a PostgreSQL server.
package gormstorage

import (
	"errors"
	"fmt"
	"time"

	"go-zombie-survival/internal/storage"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Profile is one saved user.
type Profile struct {
	Name      string         `gorm:"primaryKey;size:64"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// LeaderboardEntry is one row of the leaderboard table.
type LeaderboardEntry struct {
	Name  string `gorm:"primaryKey;size:64"`
	Score int
}

// Session is a finished game.
type Session struct {
	ID         string `gorm:"primaryKey;size:36"`
	Player     string `gorm:"index;size:64"`
	Kills      int
	ShotsFired int
	ShotsHit   int
	DurationMs int64
	EndedAt    time.Time
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}
}

// OpenSQLite opens a SQLite database file. An empty path opens a shared
// in-memory database.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %q: %w", dsn, err)
	}
	return db, nil
}

// OpenPostgres connects to a PostgreSQL server.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

type Backend struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func New(db *gorm.DB, logger zerolog.Logger) *Backend {
	return &Backend{db: db, logger: logger.With().Str("component", "storage").Logger()}
}

// Init migrates the schema.
func (b *Backend) Init() error {
	if err := b.db.AutoMigrate(&Profile{}, &LeaderboardEntry{}, &Session{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	b.logger.Debug().Str("dialect", b.db.Dialector.Name()).Msg("schema migrated")
	return nil
}

func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (b *Backend) UserExists(name string) (bool, error) {
	var count int64
	if err := b.db.Model(&Profile{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up user %q: %w", name, err)
	}
	return count > 0, nil
}

func (b *Backend) ListUsers() ([]string, error) {
	var names []string
	if err := b.db.Model(&Profile{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return names, nil
}

func (b *Backend) SaveProfile(name string, data []byte) error {
	p := Profile{Name: name, Data: datatypes.JSON(data)}
	if err := b.db.Save(&p).Error; err != nil {
		return fmt.Errorf("failed to save profile %q: %w", name, err)
	}
	return nil
}

func (b *Backend) LoadProfile(name string) ([]byte, error) {
	var p Profile
	err := b.db.Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %q: %w", name, err)
	}
	return []byte(p.Data), nil
}

func (b *Backend) LoadLeaderboard() (map[string]int, error) {
	var rows []LeaderboardEntry
	if err := b.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	scores := make(map[string]int, len(rows))
	for _, r := range rows {
		scores[r.Name] = r.Score
	}
	return scores, nil
}

// SaveLeaderboard replaces the whole table.
func (b *Backend) SaveLeaderboard(scores map[string]int) error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&LeaderboardEntry{}).Error; err != nil {
			return fmt.Errorf("failed to clear leaderboard: %w", err)
		}
		if len(scores) == 0 {
			return nil
		}
		rows := make([]LeaderboardEntry, 0, len(scores))
		for name, score := range scores {
			rows = append(rows, LeaderboardEntry{Name: name, Score: score})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to write leaderboard: %w", err)
		}
		return nil
	})
}

func (b *Backend) RecordSession(rec storage.SessionRecord) error {
	s := Session{
		ID:         rec.ID.String(),
		Player:     rec.User,
		Kills:      rec.Kills,
		ShotsFired: rec.ShotsFired,
		ShotsHit:   rec.ShotsHit,
		DurationMs: rec.Duration.Milliseconds(),
		EndedAt:    rec.EndedAt,
	}
	if err := b.db.Create(&s).Error; err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

// Sessions returns the recorded sessions of user, newest first.
func (b *Backend) Sessions(user string) ([]Session, error) {
	var out []Session
	if err := b.db.Where("player = ?", user).Order("ended_at desc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
