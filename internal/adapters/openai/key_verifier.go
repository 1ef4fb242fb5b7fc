// Package openai verifies OpenAI API keys against the live API.
package openai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/agentpay/setupcheck/internal/logger"
)

// KeyVerifier lists models with the given key; any error means the key
// was rejected or the API could not be reached.
type KeyVerifier struct {
	baseURL string
	timeout time.Duration
	log     *logger.Logger
}

// NewKeyVerifier returns a verifier. An empty baseURL uses the public API.
func NewKeyVerifier(baseURL string, timeout time.Duration, log *logger.Logger) *KeyVerifier {
	if log == nil {
		log = logger.Nop()
	}
	return &KeyVerifier{baseURL: baseURL, timeout: timeout, log: log}
}

func (v *KeyVerifier) Verify(ctx context.Context, key string) error {
	cfg := goopenai.DefaultConfig(key)
	if v.baseURL != "" {
		cfg.BaseURL = v.baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: v.timeout}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	models, err := goopenai.NewClientWithConfig(cfg).ListModels(ctx)
	if err != nil {
		return fmt.Errorf("list models: %w", err)
	}

	v.log.Debug().Int("models", len(models.Models)).Msg("openai key accepted")
	return nil
}
