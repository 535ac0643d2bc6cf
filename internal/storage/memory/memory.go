// Package memory implements storage.Backend in process memory. Nothing
// survives a restart.
package memory

import (
	"maps"
	"slices"
	"sync"

	"go-zombie-survival/internal/storage"
)

type Backend struct {
	mu          sync.Mutex
	profiles    map[string][]byte
	leaderboard map[string]int
	sessions    []storage.SessionRecord
}

func New() *Backend {
	return &Backend{}
}

func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profiles = make(map[string][]byte)
	b.leaderboard = make(map[string]int)
	b.sessions = nil
	return nil
}

func (b *Backend) Close() error { return nil }

func (b *Backend) UserExists(name string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.profiles[name]
	return ok, nil
}

func (b *Backend) ListUsers() ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Sorted(maps.Keys(b.profiles)), nil
}

func (b *Backend) SaveProfile(name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profiles[name] = slices.Clone(data)
	return nil
}

func (b *Backend) LoadProfile(name string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.profiles[name]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return slices.Clone(data), nil
}

func (b *Backend) LoadLeaderboard() (map[string]int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return maps.Clone(b.leaderboard), nil
}

func (b *Backend) SaveLeaderboard(scores map[string]int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.leaderboard = maps.Clone(scores)
	if b.leaderboard == nil {
		b.leaderboard = make(map[string]int)
	}
	return nil
}

func (b *Backend) RecordSession(rec storage.SessionRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions = append(b.sessions, rec)
	return nil
}

// Sessions returns the recorded sessions, oldest first.
func (b *Backend) Sessions() []storage.SessionRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.sessions)
}
