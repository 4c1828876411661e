// Package config provides YAML and TOML configuration loading for l1t.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/l1t/internal/game"
)

// Config contains all l1t configuration.
type Config struct {
	Levels       LevelsConfig       `yaml:"levels" toml:"levels"`
	Repositories []RepositoryConfig `yaml:"repositories" toml:"repositories"`
	Rules        RulesConfig        `yaml:"rules" toml:"rules"`
	Storage      StorageConfig      `yaml:"storage" toml:"storage"`
	Display      DisplayConfig      `yaml:"display" toml:"display"`
	Server       ServerConfig       `yaml:"server" toml:"server"`
	Logging      LoggingConfig      `yaml:"logging" toml:"logging"`
}

// LevelsConfig lists extra level directories. Each becomes a pack named
// after its key.
type LevelsConfig struct {
	Dirs map[string]string `yaml:"dirs" toml:"dirs"`
}

// RepositoryConfig is a remote level repository.
type RepositoryConfig struct {
	Name string `yaml:"name" toml:"name"`
	URL  string `yaml:"url" toml:"url"`
}

// RulesConfig selects the interaction rules.
type RulesConfig struct {
	LaserHit string `yaml:"laser_hit" toml:"laser_hit"` // "off" or "toggle"
	Buttons  string `yaml:"buttons" toml:"buttons"`     // "adjacent" or "action"
}

// StorageConfig locates the progress database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" toml:"db_path"`
}

// DisplayConfig tunes the terminal presentation.
type DisplayConfig struct {
	EndPauseMS int `yaml:"end_pause_ms" toml:"end_pause_ms"` // result banner time after a round
}

// ServerConfig configures `l1t serve`.
type ServerConfig struct {
	Address            string `yaml:"address" toml:"address"`
	HostKeyPath        string `yaml:"host_key_path" toml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes" toml:"idle_timeout_minutes"`
}

// LoggingConfig sets the log level.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for values the program cannot use.
func (c Config) Validate() error {
	if _, err := game.ParseLaserHit(c.Rules.LaserHit); err != nil {
		return &ValidationError{Field: "rules.laser_hit", Message: err.Error()}
	}
	if _, err := game.ParseButtonMode(c.Rules.Buttons); err != nil {
		return &ValidationError{Field: "rules.buttons", Message: err.Error()}
	}

	seen := make(map[string]bool, len(c.Repositories))
	for i, r := range c.Repositories {
		field := fmt.Sprintf("repositories[%d]", i)
		if strings.TrimSpace(r.Name) == "" {
			return &ValidationError{Field: field + ".name", Message: "name is required"}
		}
		if seen[r.Name] {
			return &ValidationError{Field: field + ".name", Message: fmt.Sprintf("duplicate repository %q", r.Name)}
		}
		seen[r.Name] = true
		if !strings.HasPrefix(r.URL, "http://") && !strings.HasPrefix(r.URL, "https://") {
			return &ValidationError{Field: field + ".url", Message: "url must start with http:// or https://"}
		}
	}
	for name, dir := range c.Levels.Dirs {
		if strings.TrimSpace(dir) == "" {
			return &ValidationError{Field: "levels.dirs." + name, Message: "directory is empty"}
		}
	}

	if c.Display.EndPauseMS < 0 {
		return &ValidationError{Field: "display.end_pause_ms", Message: "must not be negative"}
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return &ValidationError{Field: "server.idle_timeout_minutes", Message: "must not be negative"}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)}
	}
	return nil
}

// GameRules converts the rules section. Unknown names fall back to the
// defaults; Validate reports them.
func (c Config) GameRules() game.Rules {
	rules := game.DefaultRules()
	if h, err := game.ParseLaserHit(c.Rules.LaserHit); err == nil {
		rules.LaserHit = h
	}
	if m, err := game.ParseButtonMode(c.Rules.Buttons); err == nil {
		rules.Buttons = m
	}
	return rules
}
