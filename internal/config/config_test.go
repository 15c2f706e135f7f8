package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todosh/internal/store"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoad(t *testing.T) {
	t.Run("no config.yaml returns defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := Load(dir)
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.Dir)
		assert.Equal(t, BackendSQLite, cfg.Backend)
		assert.Equal(t, DefaultListName, cfg.List)
		assert.Equal(t, filepath.Join(dir, DBFile), cfg.DB)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Nil(t, cfg.EmptyListError)
	})

	t.Run("full config.yaml loads all values", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `backend: gtasks
list: Chores
db: /tmp/elsewhere.db
log_level: debug
empty_list_error: true
`)

		cfg, err := Load(dir)
		require.NoError(t, err)

		assert.Equal(t, BackendGTasks, cfg.Backend)
		assert.Equal(t, "Chores", cfg.List)
		assert.Equal(t, "/tmp/elsewhere.db", cfg.DB)
		assert.Equal(t, "debug", cfg.LogLevel)
		require.NotNil(t, cfg.EmptyListError)
		assert.True(t, *cfg.EmptyListError)
	})

	t.Run("partial config.yaml merges with defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "backend: gtasks\n")

		cfg, err := Load(dir)
		require.NoError(t, err)

		assert.Equal(t, BackendGTasks, cfg.Backend)
		assert.Equal(t, DefaultListName, cfg.List)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	})

	t.Run("relative db path resolves against config dir", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "db: mine.db\n")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "mine.db"), cfg.DB)
	})

	t.Run("invalid YAML returns error with filename", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "backend: [broken\n")

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ConfigFile)
	})
}

func TestApplyOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "backend: gtasks\nlist: Chores\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	cfg.Apply(Overrides{Backend: BackendSQLite, DB: "/tmp/cli.db", Debug: true})

	assert.Equal(t, BackendSQLite, cfg.Backend, "flag beats file")
	assert.Equal(t, "Chores", cfg.List, "unset flag keeps file value")
	assert.Equal(t, "/tmp/cli.db", cfg.DB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Debug)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Backend: BackendSQLite}
	require.NoError(t, cfg.Validate())

	cfg.Backend = BackendGTasks
	require.NoError(t, cfg.Validate())

	cfg.Backend = "redis"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestEmptyPolicy(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }

	t.Run("local defaults to error", func(t *testing.T) {
		cfg := &Config{Backend: BackendSQLite}
		assert.Equal(t, store.EmptyIsError, cfg.EmptyPolicy())
	})

	t.Run("remote defaults to ok", func(t *testing.T) {
		cfg := &Config{Backend: BackendGTasks}
		assert.Equal(t, store.EmptyIsOK, cfg.EmptyPolicy())
	})

	t.Run("override wins either way", func(t *testing.T) {
		cfg := &Config{Backend: BackendGTasks, EmptyListError: boolPtr(true)}
		assert.Equal(t, store.EmptyIsError, cfg.EmptyPolicy())

		cfg = &Config{Backend: BackendSQLite, EmptyListError: boolPtr(false)}
		assert.Equal(t, store.EmptyIsOK, cfg.EmptyPolicy())
	})
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	assert.Equal(t, filepath.Join("/tmp/xdg-test", AppName), DefaultConfigDir())
}

func TestPaths(t *testing.T) {
	cfg := &Config{Dir: "/etc/todosh"}
	assert.Equal(t, "/etc/todosh/oauth_client.json", cfg.OAuthClientPath())
	assert.Equal(t, "/etc/todosh/token.json", cfg.TokenPath())
}
