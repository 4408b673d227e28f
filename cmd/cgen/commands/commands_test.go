package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cgen/am"
	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/style"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func TestStylesTable(t *testing.T) {
	table, err := stylesTable()
	require.NoError(t, err)

	for _, p := range style.Presets() {
		assert.Contains(t, table, string(p))
	}
	for _, line := range strings.Split(table, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "lisp") {
			assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "no"), line)
		}
	}
}

func TestStylesCmd_Preview(t *testing.T) {
	var out bytes.Buffer
	StylesCmd.SetOut(&out)
	StylesCmd.SetArgs([]string{"--preview"})
	t.Cleanup(func() { stylesPreview = false })

	require.NoError(t, StylesCmd.Execute())
	assert.Contains(t, out.String(), "int sign(int value) {\n    if (value < 0) {\n")
	assert.Contains(t, out.String(), "int sign(int value)\n{\n")
}

func TestRenderSample(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderSample(&out, style.FromPreset(style.PresetKnR).WithNewline(style.LF)))
	assert.Contains(t, out.String(), "#ifndef GEOMETRY_H\n")
	assert.Contains(t, out.String(), "typedef struct {\n")
}

func TestResolve_PresetOverride(t *testing.T) {
	c := &am.Config{Style: am.StyleConfig{Preset: "allman", Newline: "lf"}}

	cfg, err := resolve(c, "pico")
	require.NoError(t, err)
	assert.Equal(t, style.Pico, cfg.Brace)
	assert.Equal(t, style.LF, cfg.Newline)
	assert.Equal(t, "allman", c.Style.Preset, "caller's config is untouched")

	_, err = resolve(c, "lisp")
	assert.True(t, errors.IsInvalidConfigError(err))
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.yaml")
	require.NoError(t, os.WriteFile(path, []byte("style:\n  preset: gnu\n"), 0644))

	got, c, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "gnu", c.Style.Preset)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[style]\nbrace = \"lisp\"\n"), 0644))
	_, _, err = loadConfig(bad)
	require.Error(t, err)
}

func TestWriteConfig(t *testing.T) {
	cfg := &am.Config{Style: am.StyleConfig{Preset: "knr", Brace: "pico"}}

	var toml bytes.Buffer
	require.NoError(t, writeConfig(&toml, cfg, "toml"))
	assert.Contains(t, toml.String(), "[style]")
	assert.Contains(t, toml.String(), "brace = 'pico'")

	var yml bytes.Buffer
	require.NoError(t, writeConfig(&yml, cfg, "yaml"))
	assert.Contains(t, yml.String(), "style:\n")
	assert.Contains(t, yml.String(), "preset: knr")

	var js bytes.Buffer
	require.NoError(t, writeConfig(&js, cfg, "json"))
	var decoded am.Config
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, *cfg, decoded)

	assert.Error(t, writeConfig(&js, cfg, "ini"))
}

func TestShowKey(t *testing.T) {
	am.Reset()
	t.Cleanup(am.Reset)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("CGEN_STYLE_BRACE", "pico")

	var out bytes.Buffer
	require.NoError(t, showKey(&out, "style.brace", "toml"))
	require.NoError(t, showKey(&out, "style.preset", "toml"))
	assert.Equal(t, "pico\ndefault\n", out.String())

	out.Reset()
	require.NoError(t, showKey(&out, "style.brace", "json"))
	assert.Equal(t, "\"pico\"\n", out.String())

	err := showKey(&out, "style.brase", "toml")
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "style.brace")
}

func TestAmInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgen.toml")

	var out bytes.Buffer
	AmCmd.SetOut(&out)
	AmCmd.SetArgs([]string{"init", path})
	require.NoError(t, AmCmd.Execute())
	assert.Contains(t, out.String(), "Wrote")

	out.Reset()
	AmCmd.SetArgs([]string{"validate", path})
	require.NoError(t, AmCmd.Execute())
	assert.Contains(t, out.String(), "is valid")

	require.NoError(t, os.WriteFile(path, []byte("[style]\nbrase = \"knr\"\n"), 0644))
	AmCmd.SetArgs([]string{"validate", path})
	assert.Error(t, AmCmd.Execute())
}

func TestSourcesTable(t *testing.T) {
	table, err := sourcesTable(&am.ConfigIntrospection{Settings: []am.SettingInfo{
		{Key: "style.preset", Value: "gnu", Source: am.SourceProject, SourcePath: "/repo/cgen.toml"},
	}})
	require.NoError(t, err)
	assert.Contains(t, table, "style.preset")
	assert.Contains(t, table, "/repo/cgen.toml")
}

func TestWatchSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgen.toml")
	require.NoError(t, os.WriteFile(path, []byte("[style]\npreset = \"allman\"\nnewline = \"lf\"\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- watchSample(ctx, out, path, "", false) }()

	// The watcher starts asynchronously, so the change is written again
	// every second (longer than the debounce) until it is picked up.
	var lastWrite time.Time
	require.Eventually(t, func() bool {
		if time.Since(lastWrite) > time.Second {
			_ = os.WriteFile(path, []byte("[style]\npreset = \"knr\"\nnewline = \"lf\"\n"), 0644)
			lastWrite = time.Now()
		}
		return strings.Contains(out.String(), "typedef struct {\n")
	}, 10*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchSample_CascadeKeepsOverrides(t *testing.T) {
	am.Reset()
	t.Cleanup(am.Reset)

	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, am.ConfigFileTOML), []byte("[style]\npreset = \"allman\"\n"), 0644))
	t.Chdir(project)
	t.Setenv("CGEN_STYLE_NEWLINE", "lf")

	path, c, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, am.ConfigFileTOML, filepath.Base(path))
	cfg, err := resolve(c, "")
	require.NoError(t, err)
	require.Equal(t, style.LF, cfg.Newline)

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- watchSample(ctx, out, path, "", true) }()

	var lastWrite time.Time
	require.Eventually(t, func() bool {
		if time.Since(lastWrite) > time.Second {
			_ = os.WriteFile(path, []byte("[style]\npreset = \"knr\"\n"), 0644)
			lastWrite = time.Now()
		}
		return strings.Contains(out.String(), "typedef struct {\n")
	}, 10*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.NotContains(t, out.String(), "\r\n", "environment override survives the reload")
}

func TestPrintError(t *testing.T) {
	var out bytes.Buffer
	PrintError(&out, errors.WithHint(errors.New("boom"), "try again"))
	assert.Contains(t, out.String(), "boom")
	assert.Contains(t, out.String(), "hint: try again")
}
