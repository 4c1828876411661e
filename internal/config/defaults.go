package config

import (
	_ "embed"
)

//go:embed defaults/l1t.yaml
var defaultYAML []byte

// DefaultConfig returns the default l1t configuration.
func DefaultConfig() Config {
	return Config{
		Levels: LevelsConfig{
			Dirs: map[string]string{},
		},
		Rules: RulesConfig{
			LaserHit: "off",
			Buttons:  "adjacent",
		},
		Storage: StorageConfig{
			DBPath: "~/.l1t/progress.db",
		},
		Display: DisplayConfig{
			EndPauseMS: 500,
		},
		Server: ServerConfig{
			Address:            ":2222",
			HostKeyPath:        "~/.l1t/host_key",
			IdleTimeoutMinutes: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
