package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agentpay/setupcheck/internal/adapters/chain"
	"github.com/agentpay/setupcheck/internal/adapters/console"
	"github.com/agentpay/setupcheck/internal/adapters/envfile"
	"github.com/agentpay/setupcheck/internal/adapters/openai"
	"github.com/agentpay/setupcheck/internal/config"
	"github.com/agentpay/setupcheck/internal/core/domain"
	"github.com/agentpay/setupcheck/internal/core/service"
	"github.com/agentpay/setupcheck/internal/logger"
	"github.com/agentpay/setupcheck/pkg/version"
)

const appName = "setupcheck"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	cfg, err := config.Load(appName, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		bootLog, _ := logger.NewLogger(appName, "")
		bootLog.Error().Err(err).Msg("error getting configs")
		return 2
	}

	if cfg.ShowVersion {
		fmt.Fprintln(stdout, version.GetFullVersionString())
		return 0
	}

	log, err := logger.NewLogger(appName, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return 2
	}
	log.Debug().Str("env_file", cfg.EnvFile).Dur("rpc_timeout", cfg.RPCTimeout).Msg("starting")

	// A nil interface, not a typed nil, disables online key verification.
	var verifier domain.KeyVerifier
	if cfg.VerifyOpenAIKey {
		verifier = openai.NewKeyVerifier(cfg.OpenAIBaseURL, cfg.RPCTimeout, log.With("adapter", "openai"))
	}
	prober := chain.NewRPCProber(cfg.RPCTimeout, log.With("adapter", "rpc")).WithWebSocket(cfg.WebSocketRPC)

	svc := service.NewSetupService(
		cfg.EnvFile,
		envfile.FileLoader{},
		service.Checklist(prober, verifier),
		service.DefaultPlaceholders().WithSubstrings(cfg.ExtraPlaceholders...),
		console.NewPrinter("AgentPay"),
		log,
	)

	if !svc.Run(ctx, stdout) && cfg.Strict {
		return 1
	}
	return 0
}
