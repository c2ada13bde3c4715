package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bounded/pkg/bstring"
	"github.com/mesh-intelligence/bounded/pkg/types"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir, nil)
	require.NoError(t, err)

	id, err := store.Save("word", bstring.From(8, "bounded"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(dir, nil)
	require.NoError(t, err)
	defer reopened.Close()

	str, err := reopened.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "bounded", str.String())
	assert.Equal(t, 8, str.Cap())

	assert.ErrorIs(t, reopened.Delete("nope"), types.ErrInvalidID)
}
