package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

func (cfg *Config) validate() error {
	if strings.TrimSpace(cfg.EnvFile) == "" {
		return fmt.Errorf("%w: env file name is empty", ErrInvalidConfig)
	}
	if cfg.RPCTimeout <= 0 {
		return fmt.Errorf("%w: rpc timeout must be positive, got %s", ErrInvalidConfig, cfg.RPCTimeout)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
