package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when the embedded defaults were used.
const SourceEmbedded = "embedded"

var userConfigNames = []string{"config.yaml", "config.yml", "config.toml"}

// Load loads the l1t configuration and reports where it came from.
// Search order: customPath -> ~/.l1t/config.{yaml,yml,toml} -> ./configs/l1t.yaml -> embedded default
//
// Files are decoded on top of DefaultConfig, so a file only needs the keys it
// changes. The result is validated.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory
	for _, name := range userConfigNames {
		p := userConfigPath(name)
		if p == "" {
			break
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		cfg, err := loadFile(p)
		if err != nil {
			return cfg, p, err
		}
		return cfg, p, cfg.Validate()
	}

	// Try local configs directory
	local := filepath.Join("configs", "l1t.yaml")
	if _, err := os.Stat(local); err == nil {
		cfg, err := loadFile(local)
		if err != nil {
			return cfg, local, err
		}
		return cfg, local, cfg.Validate()
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile decodes one config file on top of the defaults. The format is
// chosen by extension: .toml is TOML, anything else YAML.
func loadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg using the format named by ext.
func Decode(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".l1t", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
