package domain

import (
	"context"
	"errors"
	"io"
)

// ErrEnvFileNotFound signals that the environment file is absent. Only an
// absent or unreadable file aborts a validation run.
var ErrEnvFileNotFound = errors.New("env file not found")

// Validator checks one already filtered configuration value.
type Validator interface {
	Validate(ctx context.Context, value string) Verdict
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(ctx context.Context, value string) Verdict

func (f ValidatorFunc) Validate(ctx context.Context, value string) Verdict {
	return f(ctx, value)
}

// Static wraps a validator that needs neither context nor I/O.
func Static(fn func(value string) Verdict) Validator {
	return ValidatorFunc(func(_ context.Context, value string) Verdict {
		return fn(value)
	})
}

// Check binds a configuration key to its validator.
type Check struct {
	Key      string
	Group    Group
	Validate Validator
}

// ProbeResult describes a completed round-trip to an RPC endpoint.
// StatusCode is the HTTP status; an opted-in WebSocket exchange that
// completed reports 200.
type ProbeResult struct {
	StatusCode  int
	BlockNumber *uint64
}

// RPCProber performs a liveness round-trip against a blockchain node.
// A non-nil error means the endpoint could not be reached at all.
type RPCProber interface {
	Probe(ctx context.Context, url string) (*ProbeResult, error)
}

// KeyVerifier confirms an API key against its provider.
type KeyVerifier interface {
	Verify(ctx context.Context, key string) error
}

// EnvRecord exposes parsed environment file values.
type EnvRecord interface {
	Get(key string) (string, bool)
}

// EnvLoader reads an environment file. A missing file must be reported
// with an error wrapping ErrEnvFileNotFound.
type EnvLoader interface {
	Load(path string) (EnvRecord, error)
}

// ReportPrinter renders the human-readable readiness report.
type ReportPrinter interface {
	Header(w io.Writer)
	FileNotFound(w io.Writer, name string)
	FileUnreadable(w io.Writer, name string, err error)
	Report(w io.Writer, r *Report)
}
