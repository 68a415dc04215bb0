// Package config loads the conlog CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the user configuration.
type Config struct {
	Platform string              `toml:"platform"` // "auto" | "terminal" | "console"
	Divider  Divider             `toml:"divider"`
	Types    map[string][]string `toml:"types"`
}

// Divider holds the defaults for divider lines.
type Divider struct {
	Char   string   `toml:"char"`
	Length int      `toml:"length"`
	Styles []string `toml:"styles"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Platform: "auto",
		Divider: Divider{
			Char:   "-",
			Length: 40,
			Styles: []string{"gray"},
		},
		Types: map[string][]string{},
	}
}

// DefaultPath returns ~/.config/conlog/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("config: cannot determine config directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}

	return filepath.Join(dir, "conlog", "config.toml"), nil
}

// Load reads path on top of the defaults. A missing file is not an error
// unless required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown keys in %s: %v", path, undecoded)
	}

	if cfg.Types == nil {
		cfg.Types = map[string][]string{}
	}

	return cfg, nil
}
