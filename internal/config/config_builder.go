package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	// applied after merging; mergo cannot override with a zero value
	explicit []func(*Config)
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*Config, 0, 2)}
}

// build merges the collected configs; earlier sources take precedence, and
// explicitly given boolean flags win over everything.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	cfg := new(Config)
	for _, c := range b.configs {
		if err := mergo.Merge(cfg, c); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	for _, apply := range b.explicit {
		apply(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (b *configBuilder) withFlags(name string, args []string) *configBuilder {
	cfg, explicit, err := parseFlags(name, args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	b.explicit = append(b.explicit, explicit...)
	return b
}

func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	cfg := new(Config)
	if err := parseEnv(cfg, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

// Load builds the configuration from args, the process environment and an
// optional .env file in the working directory.
func Load(name string, args []string) (*Config, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withFlags(name, args).
		withEnv(nil).
		build()
}
