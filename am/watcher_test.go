package am

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/logger"
)

func TestConfigWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileTOML)
	writeFile(t, path, "[style]\npreset = \"allman\"\n")

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	cw.SetDebounce(10 * time.Millisecond)

	reloaded := make(chan *Config, 4)
	cw.OnReload(func(c *Config) error {
		reloaded <- c
		return nil
	})
	cw.Start()
	t.Cleanup(func() { _ = cw.Stop() })

	// Writes to other files in the directory are ignored.
	writeFile(t, filepath.Join(dir, "other.toml"), "[style]\n")
	writeFile(t, path, "[style]\npreset = \"pico\"\n")

	select {
	case c := <-reloaded:
		assert.Equal(t, "pico", c.Style.Preset)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}

func TestConfigWatcher_InvalidFileSkipsCallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileTOML)
	writeFile(t, path, "[style]\nbrace = \"lisp\"\n")

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cw.Stop() })

	called := false
	cw.OnReload(func(*Config) error {
		called = true
		return nil
	})

	require.Error(t, cw.reload())
	assert.False(t, called)

	require.NoError(t, os.WriteFile(path, []byte("[style]\nbrace = \"knr\"\n"), 0644))
	require.NoError(t, cw.reload())
	assert.True(t, called)
}

func TestConfigWatcher_StopEndsLoop(t *testing.T) {
	cw, err := NewConfigWatcher(filepath.Join(t.TempDir(), ConfigFileTOML))
	require.NoError(t, err)
	cw.Start()
	require.NoError(t, cw.Stop())

	select {
	case <-cw.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watch loop did not exit")
	}
}

func TestConfigWatcher_OwnWrite(t *testing.T) {
	cw := &ConfigWatcher{}
	assert.False(t, cw.checkOwnWrite())
	cw.MarkOwnWrite()
	assert.True(t, cw.checkOwnWrite())
	assert.False(t, cw.checkOwnWrite(), "flag is cleared after one check")
}

func TestGlobalWatcher(t *testing.T) {
	t.Cleanup(func() { SetGlobalWatcher(nil) })
	cw := &ConfigWatcher{}
	SetGlobalWatcher(cw)
	assert.Same(t, cw, GetGlobalWatcher())
}

func TestIsBackupFile(t *testing.T) {
	assert.True(t, isBackupFile("/x/cgen.toml.back1"))
	assert.True(t, isBackupFile("cgen.yaml.back3"))
	assert.False(t, isBackupFile("cgen.toml.back4"))
	assert.False(t, isBackupFile("cgen.toml"))
}

func TestConfigWatcher_ReloadLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := logger.Logger
	logger.Logger = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Logger = prev })

	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileTOML)
	writeFile(t, path, "[style]\npreset = \"gnu\"\n")

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cw.Stop() })
	cw.OnReload(func(c *Config) error {
		return errors.New("callback failed")
	})

	require.NoError(t, cw.reload())
	assert.Equal(t, 1, logs.FilterMessage("Config reloaded successfully").Len())
	assert.Equal(t, 1, logs.FilterMessage("Config reload callback error").Len())

	writeFile(t, path, "[style]\nbrace = \"lisp\"\n")
	require.Error(t, cw.reload())
	assert.Equal(t, 1, logs.FilterMessage("Config reloaded successfully").Len())
}

func TestConfigWatcher_SetLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileTOML)
	writeFile(t, path, "[style]\npreset = \"gnu\"\n")

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cw.Stop() })

	var loaded string
	cw.SetLoader(func(p string) (*Config, error) {
		loaded = p
		return &Config{Style: StyleConfig{Preset: "pico"}}, nil
	})
	var got *Config
	cw.OnReload(func(c *Config) error {
		got = c
		return nil
	})

	require.NoError(t, cw.reload())
	assert.Equal(t, cw.Path(), loaded)
	require.NotNil(t, got)
	assert.Equal(t, "pico", got.Style.Preset)
}
