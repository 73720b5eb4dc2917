package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"github.com/oCowley/solo-boom/internal/domain"
)

// LeaderboardStore keeps the curated entries as a single JSON array on disk,
// rewritten wholesale on every mutation. Mutations are serialized by a mutex
// so concurrent writers cannot lose updates, and writes go through a temp
// file plus rename so a crash mid-write never truncates the store.
type LeaderboardStore struct {
	path   string
	mu     sync.Mutex
	logger zerolog.Logger
}

func NewLeaderboardStore(path string, logger zerolog.Logger) *LeaderboardStore {
	return &LeaderboardStore{path: path, logger: logger}
}

// List returns every entry. A store file that does not exist yet is an empty
// leaderboard, not an error.
func (s *LeaderboardStore) List() ([]domain.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add appends a new entry. The (summonerName, region) pair is unique,
// case-insensitive on the name; a duplicate leaves the store unchanged.
func (s *LeaderboardStore) Add(summonerName, region, notes string, featured bool) (*domain.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if strings.EqualFold(e.SummonerName, summonerName) && e.Region == region {
			return nil, domain.ErrDuplicateEntry
		}
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generating entry id: %w", err)
	}

	entry := domain.LeaderboardEntry{
		ID:           id,
		SummonerName: summonerName,
		Region:       region,
		Notes:        notes,
		Featured:     featured,
	}
	entries = append(entries, entry)

	if err := s.save(entries); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", entry.ID).Str("summoner", summonerName).Str("region", region).
		Msg("leaderboard entry added")
	return &entry, nil
}

// Delete removes the entry with the given id.
func (s *LeaderboardStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return domain.ErrEntryNotFound
	}

	if err := s.save(kept); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("leaderboard entry deleted")
	return nil
}

func (s *LeaderboardStore) load() ([]domain.LeaderboardEntry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.LeaderboardEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading leaderboard file: %w", err)
	}

	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing leaderboard file: %w", err)
	}
	return entries, nil
}

func (s *LeaderboardStore) save(entries []domain.LeaderboardEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating leaderboard dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding leaderboard: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing leaderboard file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing leaderboard file: %w", err)
	}
	return nil
}
