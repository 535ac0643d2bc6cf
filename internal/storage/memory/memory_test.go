package memory

import (
	"testing"

	"go-zombie-survival/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface check
var _ storage.Backend = (*Backend)(nil)

func TestBackend(t *testing.T) {
	b := New()
	require.NoError(t, b.Init())
	defer b.Close()

	_, err := b.LoadProfile("x")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	blob := []byte("abc")
	require.NoError(t, b.SaveProfile("x", blob))
	blob[0] = 'z'
	got, err := b.LoadProfile("x")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got, "stored copy is not aliased")

	require.NoError(t, b.SaveProfile("a", nil))
	users, _ := b.ListUsers()
	assert.Equal(t, []string{"a", "x"}, users)

	board := map[string]int{"x": 1}
	require.NoError(t, b.SaveLeaderboard(board))
	board["y"] = 2
	loaded, _ := b.LoadLeaderboard()
	assert.Equal(t, map[string]int{"x": 1}, loaded)

	require.NoError(t, b.RecordSession(storage.SessionRecord{ID: uuid.New(), User: "x"}))
	assert.Len(t, b.Sessions(), 1)
}
