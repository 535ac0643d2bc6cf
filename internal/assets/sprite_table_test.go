package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpseFrames(t *testing.T) {
	table := NewTable()
	require.Equal(t, 3, table.SheetCount())

	frames := table.CorpseFrames(0, 3, 2)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5, 5, 5}, frames)

	long := table.CorpseFrames(2, 3, 200)
	assert.Len(t, long, 10*3+200)

	assert.Nil(t, table.CorpseFrames(9, 3, 200))
}

func TestCorpseFrames_FreshSlice(t *testing.T) {
	table := NewTable()
	a := table.CorpseFrames(1, 1, 0)
	a[0] = 99
	b := table.CorpseFrames(1, 1, 0)
	assert.Equal(t, 0, b[0], "table must not be mutated through returned frames")
}

func TestParseSheet(t *testing.T) {
	table := NewTable()
	for _, e := range table.SheetPick().Entries {
		sheet, err := table.ParseSheet(e.ID)
		require.NoError(t, err)
		assert.Positive(t, table.SheetSize(sheet))
	}
	_, err := table.ParseSheet("7")
	assert.Error(t, err)
}
