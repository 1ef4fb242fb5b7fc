// Package config assembles the validator's own settings.
//
// Sources are merged in priority order: command-line flags, then
// SETUPCHECK_* environment variables (optionally loaded from a process
// .env file), then defaults. The file under validation is never read here.
package config

import (
	"time"
)

// Config holds tool settings. Field tags are read by caarlos0/env with
// the SETUPCHECK_ prefix.
type Config struct {
	// EnvFile is the environment file to validate.
	// Env: SETUPCHECK_ENV_FILE
	EnvFile string `env:"ENV_FILE" envDefault:".env.local"`

	// RPCTimeout bounds every liveness round-trip.
	// Env: SETUPCHECK_RPC_TIMEOUT
	RPCTimeout time.Duration `env:"RPC_TIMEOUT" envDefault:"10s"`

	// LogLevel is a zerolog level name.
	// Env: SETUPCHECK_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`

	// Strict makes the process exit non-zero when setup is incomplete.
	// Env: SETUPCHECK_STRICT
	Strict bool `env:"STRICT"`

	// VerifyOpenAIKey enables an online check of OPENAI_API_KEY.
	// Env: SETUPCHECK_VERIFY_OPENAI_KEY
	VerifyOpenAIKey bool `env:"VERIFY_OPENAI_KEY"`

	// WebSocketRPC probes ws:// and wss:// RPC URLs with a WebSocket
	// handshake. When off they are sent through the HTTP client and fail.
	// Env: SETUPCHECK_WEBSOCKET_RPC
	WebSocketRPC bool `env:"WEBSOCKET_RPC"`

	// OpenAIBaseURL overrides the API endpoint used for key verification.
	// Env: SETUPCHECK_OPENAI_BASE_URL
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	// ExtraPlaceholders are stripped from required values in addition to
	// the built-in example strings.
	// Env: SETUPCHECK_EXTRA_PLACEHOLDERS (comma separated)
	ExtraPlaceholders []string `env:"EXTRA_PLACEHOLDERS" envSeparator:","`

	// ShowVersion prints build information and exits. Flag only.
	ShowVersion bool
}

const envPrefix = "SETUPCHECK_"
