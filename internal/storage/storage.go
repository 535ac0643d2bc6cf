// internal/storage/storage.go
package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a profile does not exist.
var ErrNotFound = errors.New("not found")

// SessionRecord is the summary of one finished game.
type SessionRecord struct {
	ID         uuid.UUID
	User       string
	Kills      int
	ShotsFired int
	ShotsHit   int
	Duration   time.Duration
	EndedAt    time.Time
}

// Backend is the interface all storage implementations must satisfy.
// Profiles are opaque blobs keyed by user name; the leaderboard is read
// and written as a whole, last writer wins.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Profiles
	UserExists(name string) (bool, error)
	ListUsers() ([]string, error)
	SaveProfile(name string, data []byte) error
	LoadProfile(name string) ([]byte, error)

	// Leaderboard
	LoadLeaderboard() (map[string]int, error)
	SaveLeaderboard(scores map[string]int) error

	RecordSession(rec SessionRecord) error
}
