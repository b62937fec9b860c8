package badger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zenmoney/zenmoney-cli/internal/common"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(common.NewSilentLogger(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCredentialLifecycle(t *testing.T) {
	store := newTestStore(t)
	creds := NewCredentialStorage(store, common.NewSilentLogger())

	// No session yet
	require.Empty(t, creds.Token())

	// Login stores the token
	require.NoError(t, creds.SetToken("tok-abc"))
	require.Equal(t, "tok-abc", creds.Token())

	// A second login overwrites
	require.NoError(t, creds.SetToken("tok-def"))
	require.Equal(t, "tok-def", creds.Token())

	// Logout clears
	require.NoError(t, creds.ClearToken())
	require.Empty(t, creds.Token())

	// Clearing an empty slot is not an error
	require.NoError(t, creds.ClearToken())
}

func TestCredentialSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	logger := common.NewSilentLogger()

	store, err := NewStore(logger, dir)
	require.NoError(t, err)
	creds := NewCredentialStorage(store, logger)
	require.NoError(t, creds.SetToken("persisted-token"))
	require.NoError(t, store.Close())

	reopened, err := NewStore(logger, dir)
	require.NoError(t, err)
	defer reopened.Close()

	creds = NewCredentialStorage(reopened, logger)
	require.Equal(t, "persisted-token", creds.Token())
}
