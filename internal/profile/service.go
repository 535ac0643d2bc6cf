// internal/profile/service.go
package profile

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/storage"

	"github.com/rs/zerolog"
)

var ErrInvalidName = errors.New("invalid user name")

// Service manages profiles and the leaderboard on a storage backend.
// It is only used from menu screens, never during simulation.
type Service struct {
	backend storage.Backend
	logger  zerolog.Logger
}

func NewService(backend storage.Backend, logger zerolog.Logger) *Service {
	return &Service{backend: backend, logger: logger.With().Str("component", "profile").Logger()}
}

// ValidName reports whether name can be used as a user name.
func ValidName(name string) bool {
	if name == "" || len([]rune(name)) > config.MaxNameLength || strings.TrimSpace(name) != name {
		return false
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// Register creates a new empty profile and a zero leaderboard entry.
// It returns false if the name is taken.
func (s *Service) Register(name string) (bool, error) {
	if !ValidName(name) {
		return false, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	exists, err := s.backend.UserExists(name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := s.save(&User{Name: name}); err != nil {
		return false, err
	}
	if err := s.updateLeaderboard(name, 0); err != nil {
		return false, err
	}
	s.logger.Info().Str("user", name).Msg("user registered")
	return true, nil
}

// Load returns the saved profile of name, or storage.ErrNotFound.
func (s *Service) Load(name string) (*User, error) {
	data, err := s.backend.LoadProfile(name)
	if err != nil {
		return nil, err
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to decode profile %q: %w", name, err)
	}
	if u.Name == "" {
		u.Name = name
	}
	return &u, nil
}

// Users lists every registered name.
func (s *Service) Users() ([]string, error) {
	return s.backend.ListUsers()
}

// SaveProgress adds kills to the stored profile of name and publishes the
// new score to the leaderboard.
func (s *Service) SaveProgress(name string, kills int) (*User, error) {
	u, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	u.AddScore(kills)
	if err := s.save(u); err != nil {
		return nil, err
	}
	if err := s.updateLeaderboard(u.Name, u.Score); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user", u.Name).Int("kills", kills).Int("score", u.Score).Msg("progress saved")
	return u, nil
}

// Leaderboard returns the n best entries, ordered by score and then by
// name, both descending.
func (s *Service) Leaderboard(n int) ([]Entry, error) {
	scores, err := s.backend.LoadLeaderboard()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(scores))
	for name, score := range scores {
		entries = append(entries, Entry{Name: name, Score: score})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(b.Name, a.Name)
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// RecordSession stores the summary of a finished game.
func (s *Service) RecordSession(rec storage.SessionRecord) error {
	if err := s.backend.RecordSession(rec); err != nil {
		return err
	}
	s.logger.Debug().Stringer("session", rec.ID).Str("user", rec.User).Int("kills", rec.Kills).Msg("session recorded")
	return nil
}

func (s *Service) save(u *User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode profile %q: %w", u.Name, err)
	}
	return s.backend.SaveProfile(u.Name, data)
}

// updateLeaderboard loads the board, sets one score and writes it back.
func (s *Service) updateLeaderboard(name string, score int) error {
	scores, err := s.backend.LoadLeaderboard()
	if err != nil {
		return err
	}
	if scores == nil {
		scores = make(map[string]int)
	}
	scores[name] = score
	return s.backend.SaveLeaderboard(scores)
}
