package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, DefaultConfig().Save(path))

	var mu sync.Mutex
	var got *Config
	w, err := NewWatcher(path, func(c *Config) {
		mu.Lock()
		defer mu.Unlock()
		got = c
	}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	cfg := DefaultConfig()
	cfg.Container.Overlap = "stack"
	require.NoError(t, cfg.Save(path))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got != nil && got.Container.Overlap == "stack"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_SkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	var mu sync.Mutex
	calls := 0
	w, err := NewWatcher(path, func(c *Config) {
		mu.Lock()
		defer mu.Unlock()
		calls++
	}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("[container]\nalignment = \"left\"\n"), 0644))

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, calls)
}

func TestWatcher_StopIdempotent(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.toml"), nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	require.NoError(t, w.Start())
	assert.NoError(t, w.Stop())
}
