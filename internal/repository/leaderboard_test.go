package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oCowley/solo-boom/internal/domain"
)

func newTestStore(t *testing.T) *LeaderboardStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leaderboard.json")
	return NewLeaderboardStore(path, zerolog.Nop())
}

func TestLeaderboardStore_EmptyWithoutFile(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	entries, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLeaderboardStore_AddAndList(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	added, err := store.Add("Hide on bush", "kr", "goat", true)
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)
	assert.True(t, added.Featured)

	_, err = store.Add("Thebausffs", "euw1", "", false)
	require.NoError(t, err)

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Hide on bush", entries[0].SummonerName)
	assert.Equal(t, "Thebausffs", entries[1].SummonerName)
}

func TestLeaderboardStore_DuplicateLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Add("Hide on bush", "kr", "", false)
	require.NoError(t, err)

	// Same name in a different case, same region.
	_, err = store.Add("HIDE ON BUSH", "kr", "dup", true)
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	// Same name on another platform is a distinct entry.
	_, err = store.Add("hide on bush", "na1", "", false)
	require.NoError(t, err)

	entries, err := store.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLeaderboardStore_Delete(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	first, err := store.Add("One", "kr", "", false)
	require.NoError(t, err)
	_, err = store.Add("Two", "kr", "", false)
	require.NoError(t, err)

	require.NoError(t, store.Delete(first.ID))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Two", entries[0].SummonerName)

	assert.ErrorIs(t, store.Delete(first.ID), domain.ErrEntryNotFound)
}

func TestLeaderboardStore_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "leaderboard.json")

	store := NewLeaderboardStore(path, zerolog.Nop())
	_, err := store.Add("Hide on bush", "kr", "", true)
	require.NoError(t, err)

	// No stray temp file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	reopened := NewLeaderboardStore(path, zerolog.Nop())
	entries, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Hide on bush", entries[0].SummonerName)
}
