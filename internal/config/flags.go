package config

import (
	"flag"
	"strings"
	"time"
)

// parseFlags reads command-line flags from args (without the program name).
// Besides the parsed config it returns the boolean flags given explicitly,
// so that "-strict=false" can switch off a value enabled in the environment.
//
// Flags:
//
//	-env-file          environment file to validate
//	-rpc-timeout       liveness probe timeout (e.g. 10s)
//	-log-level         zerolog level (debug, info, warn, error)
//	-strict            exit 1 when setup is incomplete
//	-verify-openai-key check OPENAI_API_KEY against the API
//	-openai-base-url   API endpoint for key verification
//	-websocket-rpc     probe ws(s) RPC URLs over WebSocket
//	-placeholders      extra placeholder substrings, comma separated
//	-version           print version and exit
func parseFlags(name string, args []string) (*Config, []func(*Config), error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var (
		cfg          Config
		placeholders string
		timeout      time.Duration
	)
	fs.StringVar(&cfg.EnvFile, "env-file", "", "Environment file to validate")
	fs.DurationVar(&timeout, "rpc-timeout", 0, "RPC liveness probe timeout (e.g. 10s)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")
	fs.BoolVar(&cfg.Strict, "strict", false, "Exit with status 1 when setup is incomplete")
	fs.BoolVar(&cfg.VerifyOpenAIKey, "verify-openai-key", false, "Verify OPENAI_API_KEY against the API")
	fs.StringVar(&cfg.OpenAIBaseURL, "openai-base-url", "", "OpenAI API base URL")
	fs.BoolVar(&cfg.WebSocketRPC, "websocket-rpc", false, "Probe ws:// and wss:// RPC URLs over WebSocket")
	fs.StringVar(&placeholders, "placeholders", "", "Extra placeholder substrings, comma separated")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg.RPCTimeout = timeout
	if placeholders != "" {
		cfg.ExtraPlaceholders = strings.Split(placeholders, ",")
	}

	var explicit []func(*Config)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			v := cfg.Strict
			explicit = append(explicit, func(c *Config) { c.Strict = v })
		case "verify-openai-key":
			v := cfg.VerifyOpenAIKey
			explicit = append(explicit, func(c *Config) { c.VerifyOpenAIKey = v })
		case "websocket-rpc":
			v := cfg.WebSocketRPC
			explicit = append(explicit, func(c *Config) { c.WebSocketRPC = v })
		}
	})
	return &cfg, explicit, nil
}
