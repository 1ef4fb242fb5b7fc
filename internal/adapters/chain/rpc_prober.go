package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"

	"github.com/agentpay/setupcheck/internal/core/domain"
	"github.com/agentpay/setupcheck/internal/logger"
)

// DefaultTimeout bounds a single liveness round-trip.
const DefaultTimeout = 10 * time.Second

// wsReplyWait caps how long a WebSocket probe waits for the optional reply.
const wsReplyWait = 2 * time.Second

// blockNumberRequest is the JSON-RPC payload sent to every endpoint.
type blockNumberRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

func newBlockNumberRequest() blockNumberRequest {
	return blockNumberRequest{
		JSONRPC: "2.0",
		Method:  "eth_blockNumber",
		Params:  []interface{}{},
		ID:      1,
	}
}

type blockNumberResponse struct {
	Result string `json:"result"`
}

// RPCProber checks that an EVM node answers eth_blockNumber with an HTTP
// POST. When WebSocket probing is enabled, ws(s) endpoints are reached with
// a handshake followed by the same request frame instead; otherwise they go
// through the HTTP client like any other URL and fail there.
type RPCProber struct {
	timeout   time.Duration
	client    *resty.Client
	dialer    *websocket.Dialer
	websocket bool
	log       *logger.Logger
}

func NewRPCProber(timeout time.Duration, log *logger.Logger) *RPCProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	return &RPCProber{
		timeout: timeout,
		client:  resty.New().SetTimeout(timeout),
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: timeout,
		},
		log: log,
	}
}

// WithWebSocket toggles probing ws(s) URLs over WebSocket. Off by default.
func (p *RPCProber) WithWebSocket(enabled bool) *RPCProber {
	p.websocket = enabled
	return p
}

// Probe performs one round-trip. Only transport failures are returned as
// errors; any HTTP status is reported through ProbeResult.
func (p *RPCProber) Probe(ctx context.Context, rawURL string) (*domain.ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	var (
		res *domain.ProbeResult
		err error
	)
	if p.websocket && isWebSocket(rawURL) {
		res, err = p.probeWebSocket(ctx, rawURL)
	} else {
		res, err = p.probeHTTP(ctx, rawURL)
	}

	ev := p.log.Debug().Str("url", redact(rawURL)).Dur("elapsed", time.Since(start))
	if err != nil {
		ev.Err(err).Msg("rpc probe failed")
		return nil, err
	}
	if res.BlockNumber != nil {
		ev = ev.Uint64("block", *res.BlockNumber)
	}
	ev.Int("status", res.StatusCode).Msg("rpc probe finished")
	return res, nil
}

func (p *RPCProber) probeHTTP(ctx context.Context, rawURL string) (*domain.ProbeResult, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(newBlockNumberRequest()).
		Post(rawURL)
	if err != nil {
		return nil, err
	}

	res := &domain.ProbeResult{StatusCode: resp.StatusCode()}
	if resp.StatusCode() == http.StatusOK {
		res.BlockNumber = decodeBlockNumber(resp.Body())
	}
	return res, nil
}

func (p *RPCProber) probeWebSocket(ctx context.Context, rawURL string) (*domain.ProbeResult, error) {
	conn, resp, err := p.dialer.DialContext(ctx, rawURL, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("%w (status %d)", err, resp.StatusCode)
		}
		return nil, err
	}
	defer conn.Close()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(p.timeout)
	}
	_ = conn.SetWriteDeadline(deadline)
	if reply := time.Now().Add(wsReplyWait); reply.Before(deadline) {
		deadline = reply
	}
	_ = conn.SetReadDeadline(deadline)
	if err := conn.WriteJSON(newBlockNumberRequest()); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	// a completed upgrade plus a delivered request counts as an OK exchange
	res := &domain.ProbeResult{StatusCode: http.StatusOK}
	if _, msg, err := conn.ReadMessage(); err == nil {
		res.BlockNumber = decodeBlockNumber(msg)
	}
	return res, nil
}

// decodeBlockNumber extracts the hex quantity from a JSON-RPC reply.
// The verdict never depends on it; nil means the body was not usable.
func decodeBlockNumber(body []byte) *uint64 {
	var r blockNumberResponse
	if err := json.Unmarshal(body, &r); err != nil || r.Result == "" {
		return nil
	}
	n, err := hexutil.DecodeUint64(r.Result)
	if err != nil {
		return nil
	}
	return &n
}

func isWebSocket(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	s := strings.ToLower(u.Scheme)
	return s == "ws" || s == "wss"
}

// redact keeps only scheme and host; providers embed API keys in the path.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "<invalid url>"
	}
	return u.Scheme + "://" + u.Host
}
