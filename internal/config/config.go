// Package config handles the XDG configuration directory and the
// optional config.yaml inside it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"todosh/internal/store"
)

const (
	// AppName is the application directory name.
	AppName = "todosh"

	// ConfigFile is the optional user configuration filename.
	ConfigFile = "config.yaml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// DBFile is the default SQLite database filename.
	DBFile = "todos.db"
)

// Backend names accepted in config and flags.
const (
	BackendSQLite = "sqlite"
	BackendGTasks = "gtasks"
)

// Default configuration values.
const (
	DefaultBackend  = BackendSQLite
	DefaultListName = "My Tasks (todosh)"
	DefaultLogLevel = "warn"
)

// file mirrors config.yaml. The file is user-managed and never written
// by todosh; missing keys keep their defaults.
type file struct {
	Backend        string `yaml:"backend"`
	List           string `yaml:"list"`
	DB             string `yaml:"db"`
	LogLevel       string `yaml:"log_level"`
	EmptyListError *bool  `yaml:"empty_list_error"`
}

// Config holds the resolved settings for a run. Flag overrides are
// applied by the caller after Load.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Backend selects the store implementation.
	Backend string

	// List is the remote task list title.
	List string

	// DB is the SQLite database path.
	DB string

	// LogLevel is the zerolog level name.
	LogLevel string

	// EmptyListError, when set, overrides the backend's default
	// empty-list behavior.
	EmptyListError *bool

	// Debug forces debug logging.
	Debug bool

	// Quiet suppresses the startup banner.
	Quiet bool
}

// Load resolves the config directory and reads config.yaml if present.
// If configDir is empty, uses XDG_CONFIG_HOME/todosh or
// $HOME/.config/todosh. Partial config files are merged with defaults.
func Load(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:      dir,
		Backend:  DefaultBackend,
		List:     DefaultListName,
		DB:       filepath.Join(dir, DBFile),
		LogLevel: DefaultLogLevel,
	}

	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ConfigFile, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigFile, err)
	}

	if f.Backend != "" {
		cfg.Backend = f.Backend
	}
	if f.List != "" {
		cfg.List = f.List
	}
	if f.DB != "" {
		cfg.DB = f.DB
		if !filepath.IsAbs(f.DB) {
			cfg.DB = filepath.Join(dir, f.DB)
		}
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	cfg.EmptyListError = f.EmptyListError

	return cfg, nil
}

// Overrides carries the command-line flag values. Empty strings mean
// the flag was not given.
type Overrides struct {
	Backend string
	List    string
	DB      string
	Quiet   bool
	Debug   bool
}

// Apply lays flag values over the loaded configuration; flags win over
// config.yaml. Debug forces the debug log level.
func (c *Config) Apply(o Overrides) {
	if o.Backend != "" {
		c.Backend = o.Backend
	}
	if o.List != "" {
		c.List = o.List
	}
	if o.DB != "" {
		c.DB = o.DB
	}
	c.Quiet = o.Quiet
	c.Debug = o.Debug
	if o.Debug {
		c.LogLevel = "debug"
	}
}

// Validate checks the resolved settings. Called after flag overrides.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendGTasks:
		return nil
	default:
		return fmt.Errorf("unknown backend %q (valid: %s, %s)", c.Backend, BackendSQLite, BackendGTasks)
	}
}

// EmptyPolicy returns the effective empty-list policy for the selected
// backend: the local store reports an empty list as an error, the
// remote store does not, unless the config says otherwise.
func (c *Config) EmptyPolicy() store.EmptyPolicy {
	if c.EmptyListError != nil {
		if *c.EmptyListError {
			return store.EmptyIsError
		}
		return store.EmptyIsOK
	}
	if c.Backend == BackendGTasks {
		return store.EmptyIsOK
	}
	return store.EmptyIsError
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
