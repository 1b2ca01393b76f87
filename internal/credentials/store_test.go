package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitterui/internal/domain"
)

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), ".twitteruirc"))

	_, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrNoCredentials)
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".twitteruirc")
	store := NewFileStore(path)

	creds := domain.Credentials{Login: "alice", Password: "s3cr\"et"}
	require.NoError(t, store.Save(creds))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, creds, loaded)
}

func TestFileStore_SaveTightensExistingMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".twitteruirc")
	require.NoError(t, os.WriteFile(path, []byte("user: old\npassword: old\nextra: padding\n"), 0o644))

	store := NewFileStore(path)
	require.NoError(t, store.Save(domain.Credentials{Login: "bob", Password: "pw"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "bob", loaded.Login)
}

func TestFileStore_LoadWithoutLogin(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".twitteruirc")
	require.NoError(t, os.WriteFile(path, []byte("password: pw\n"), 0o600))

	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, domain.ErrNoCredentials)
}

func TestFileStore_SaveReplacesLongerContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".twitteruirc")
	store := NewFileStore(path)

	require.NoError(t, store.Save(domain.Credentials{Login: "a-rather-long-login", Password: "a-rather-long-password"}))
	require.NoError(t, store.Save(domain.Credentials{Login: "bob", Password: "pw"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Credentials{Login: "bob", Password: "pw"}, loaded)
}
