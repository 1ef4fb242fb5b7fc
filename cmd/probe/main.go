// Command probe runs the RPC liveness check against one or more URLs.
//
//	probe [-timeout 10s] URL...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agentpay/setupcheck/internal/adapters/chain"
	"github.com/agentpay/setupcheck/internal/core/service"
	"github.com/agentpay/setupcheck/internal/logger"
)

func main() {
	timeout := flag.Duration("timeout", chain.DefaultTimeout, "probe timeout")
	level := flag.String("log-level", "warn", "log level")
	flag.Parse()

	log, err := logger.NewLogger("probe", *level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(2)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: probe [-timeout 10s] URL...")
		os.Exit(2)
	}

	os.Exit(run(context.Background(), os.Stdout, flag.Args(), *timeout, log))
}

func run(ctx context.Context, w io.Writer, urls []string, timeout time.Duration, log *logger.Logger) int {
	validator := service.NewRPCValidator(chain.NewRPCProber(timeout, log))

	failed := 0
	for _, u := range urls {
		v := validator.Validate(ctx, u)
		glyph := "✅"
		if !v.OK {
			glyph = "❌"
			failed++
		}
		fmt.Fprintf(w, "%s %s: %s\n", glyph, u, v.Message)
	}

	if failed > 0 {
		log.Warn().Int("failed", failed).Int("total", len(urls)).Msg("some endpoints unreachable")
		return 1
	}
	return 0
}
