package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings read from the environment.
// They only seed CLI flag defaults; explicit flags always win.
type Env struct {
	ConfigPath string  `env:"GLYPHRUSH_CONFIG"`
	DBPath     string  `env:"GLYPHRUSH_DB"`
	Timescale  float64 `env:"GLYPHRUSH_TIMESCALE"`
	Difficulty string  `env:"GLYPHRUSH_DIFFICULTY"`
	LogLevel   string  `env:"GLYPHRUSH_LOG_LEVEL"  envDefault:"info"`
	LogFile    string  `env:"GLYPHRUSH_LOG_FILE"`
	SSHAddr    string  `env:"GLYPHRUSH_SSH_ADDR"   envDefault:"0.0.0.0:2222"`
	HostKey    string  `env:"GLYPHRUSH_HOST_KEY"   envDefault:".ssh/glyphrush_host_ed25519"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
