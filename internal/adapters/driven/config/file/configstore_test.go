package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyAPIKey, "secret"))
	require.NoError(t, store.Set(KeyTimeoutSeconds, 45))

	assert.Equal(t, "secret", store.GetString(KeyAPIKey))
	assert.Equal(t, 45, store.GetInt(KeyTimeoutSeconds))

	_, ok := store.Get("serper.unknown")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyAPIKey, "persisted"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "persisted", reopened.GetString(KeyAPIKey))
}

func TestConfigStore_WritesNestedTOML(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyAPIKey, "secret"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[serper]")
	assert.Contains(t, string(data), "api_key")
}

func TestConfigStore_LoadMissingFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString(KeyAPIKey))
}

func TestConfigStore_GetTypeMismatch(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyAPIKey, "secret"))

	assert.Equal(t, 0, store.GetInt(KeyAPIKey))
	assert.Equal(t, "", store.GetString(KeyTimeoutSeconds))
}

func TestResolveAPIKey_Order(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyAPIKey, "from-config"))

	// Config file only.
	t.Setenv(EnvAPIKey, "")
	assert.Equal(t, "from-config", ResolveAPIKey(store))

	// Environment wins over the config file.
	t.Setenv(EnvAPIKey, "from-env")
	assert.Equal(t, "from-env", ResolveAPIKey(store))
}

func TestReadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# serper credentials\n\nOTHER=skip\nSERPER_API_KEY=\"from-dotenv\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	assert.Equal(t, "from-dotenv", readDotenv(path, EnvAPIKey))
	assert.Equal(t, "skip", readDotenv(path, "OTHER"))
	assert.Equal(t, "", readDotenv(path, "MISSING"))
	assert.Equal(t, "", readDotenv(filepath.Join(dir, "absent"), EnvAPIKey))
}

func TestConfigStore_WatchReloadsKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyAPIKey, "initial"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := make(chan string, 4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = store.Watch(ctx, func(apiKey string) {
			keys <- apiKey
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(50 * time.Millisecond)

	writer, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, writer.Set(KeyAPIKey, "rotated"))

	select {
	case key := <-keys:
		assert.Equal(t, "rotated", key)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not observe the config change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on context cancellation")
	}
}
