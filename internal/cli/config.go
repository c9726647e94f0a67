package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-level settings loaded from the config file.
// Flags override config values, which override the built-in defaults.
type Config struct {
	// SessionDir is where derivation sessions are stored.
	// Empty means ~/.config/peirce/sessions.
	SessionDir string `toml:"session_dir"`

	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
}

// RenderConfig holds default rendering settings.
type RenderConfig struct {
	Format string `toml:"format"` // "dot", "svg" or "png"
	Shaded bool   `toml:"shaded"`
}

// ServeConfig holds default server settings.
type ServeConfig struct {
	Addr      string `toml:"addr"`
	Store     string `toml:"store"` // "memory", "file" or "mongo"
	RedisAddr string `toml:"redis_addr"`
	MongoURI  string `toml:"mongo_uri"`
	MongoDB   string `toml:"mongo_db"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() *Config {
	return &Config{
		Render: RenderConfig{Format: "svg", Shaded: true},
		Serve: ServeConfig{
			Addr:    ":8080",
			Store:   "file",
			MongoDB: appName,
		},
	}
}

// configPath returns the config file location (~/.config/peirce/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads the config file, returning defaults when the file is
// missing or unreadable. A malformed file is ignored rather than fatal so a
// broken config never locks the user out of the CLI.
func LoadConfig() *Config {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return defaultConfig()
	}
	return cfg
}
