package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig("", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ProjectDir)
	assert.Equal(t, "go", cfg.GoBinary)
	assert.Equal(t, FetcherGit, cfg.Fetcher)
	assert.Equal(t, []string{"env-version"}, cfg.NDK.Strategies)
}

func TestLoadConfig_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	yml := `
project_dir: app-root
go_binary: /usr/local/go/bin/go
fetcher: go-git
ndk:
  strategies: [env-override, local-properties, env-version]
targets: [arm64, x86_64]
debug: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yml), 0644))

	cfg, err := LoadConfig("", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "app-root"), cfg.ProjectDir)
	assert.Equal(t, "/usr/local/go/bin/go", cfg.GoBinary)
	assert.Equal(t, "git", cfg.GitBinary, "unset keys keep their defaults")
	assert.Equal(t, FetcherGoGit, cfg.Fetcher)
	assert.Equal(t, []string{"env-override", "local-properties", "env-version"}, cfg.NDK.Strategies)
	assert.Equal(t, []string{"arm64", "x86_64"}, cfg.Targets)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ndk: [unclosed"), 0644))

	_, err := LoadConfig(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestSaveConfig_RoundTripsThroughLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", ConfigFileName)

	cfg := DefaultConfig()
	cfg.Targets = []string{"x86"}
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"x86"}, loaded.Targets)
	assert.Equal(t, filepath.Join(dir, "nested"), loaded.ProjectDir)
}
