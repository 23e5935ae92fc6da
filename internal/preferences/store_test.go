package preferences

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themeswitch/internal/logger"
	apperrors "github.com/alexisbeaulieu97/themeswitch/pkg/errors"
)

const themeKey = "theme"

func TestFileStoreNew(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "preferences.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	_, ok := store.Get(themeKey)
	assert.False(t, ok)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStoreSetPersists(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "preferences.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(themeKey, "dark"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var file File
	require.NoError(t, json.Unmarshal(data, &file))
	assert.Equal(t, "1.0", file.Version)
	assert.Equal(t, "dark", file.Values[themeKey])

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreLoadExisting(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","values":{"theme":"colorful"}}`), 0644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	value, ok := store.Get(themeKey)
	assert.True(t, ok)
	assert.Equal(t, "colorful", value)
}

func TestFileStoreRoundTripAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "preferences.json")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(themeKey, "colorful"))
	require.NoError(t, first.Set(themeKey, "dark"))

	second, err := NewFileStore(path)
	require.NoError(t, err)
	value, ok := second.Get(themeKey)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestFileStoreCorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse preferences")

	var decodeErr *apperrors.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, path, decodeErr.Source)
}

func TestOpenTruncatedFileFallsBackToEmptyStore(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","values":{"theme":"da`), 0644))

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	store := Open(path, log)
	require.NotNil(t, store)
	assert.Equal(t, path, store.Path())

	_, ok := store.Get(themeKey)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "ignoring unreadable preferences file")

	require.NoError(t, store.Set(themeKey, "dark"))

	repaired, err := NewFileStore(path)
	require.NoError(t, err)
	value, ok := repaired.Get(themeKey)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")

	store := Open(path, nil)
	_, ok := store.Get(themeKey)
	assert.False(t, ok)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreNullValues(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","values":null}`), 0644))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(themeKey, "default"))

	value, ok := store.Get(themeKey)
	assert.True(t, ok)
	assert.Equal(t, "default", value)
}

func TestFileStoreSetFailureRollsBack(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "locked", "preferences.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, os.Chmod(filepath.Dir(path), 0500))
	t.Cleanup(func() { _ = os.Chmod(filepath.Dir(path), 0755) })

	require.Error(t, store.Set(themeKey, "dark"))
	_, ok := store.Get(themeKey)
	assert.False(t, ok)
}
