package storefront

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore(t *testing.T) {
	store := &FileTokenStore{path: filepath.Join(t.TempDir(), "sub", "token")}

	assert.Empty(t, store.Load(), "empty before first save")

	require.NoError(t, store.Save("tok-123"))
	assert.Equal(t, "tok-123", store.Load())

	// A second store at the same path sees the persisted token.
	other := &FileTokenStore{path: store.path}
	assert.Equal(t, "tok-123", other.Load())

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Load())

	// Clearing an already-cleared store is fine.
	require.NoError(t, store.Clear())
}
