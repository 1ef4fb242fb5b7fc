package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentpay/setupcheck/internal/core/domain"
)

type fakeProber struct {
	res   *domain.ProbeResult
	err   error
	calls []string
}

func (f *fakeProber) Probe(_ context.Context, url string) (*domain.ProbeResult, error) {
	f.calls = append(f.calls, url)
	return f.res, f.err
}

type fakeVerifier struct {
	err   error
	calls int
}

func (f *fakeVerifier) Verify(context.Context, string) error {
	f.calls++
	return f.err
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantOK  bool
		wantMsg string
	}{
		{"valid lowercase", "0x" + strings.Repeat("a", 40), true, "Valid Ethereum address"},
		{"valid mixed case", "0x742d35Cc6634C0532925a3b844Bc9e7595f2b21D", true, "Valid Ethereum address"},
		{"too short", "0x123", false, "Invalid Ethereum address format"},
		{"too long", "0x" + strings.Repeat("a", 41), false, "Invalid Ethereum address format"},
		{"missing prefix", strings.Repeat("a", 42), false, "Invalid Ethereum address format"},
		{"upper prefix", "0X" + strings.Repeat("a", 40), false, "Invalid Ethereum address format"},
		{"non hex", "0x" + strings.Repeat("g", 40), false, "Invalid hexadecimal characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateAddress(tt.in)
			assert.Equal(t, tt.wantOK, v.OK)
			assert.Equal(t, tt.wantMsg, v.Message)
		})
	}
}

func TestValidateConfirmations(t *testing.T) {
	tests := []struct {
		in      string
		wantOK  bool
		wantMsg string
	}{
		{"5", true, "Valid confirmation count: 5"},
		{"1", true, "Valid confirmation count: 1"},
		{"20", true, "Valid confirmation count: 20"},
		{"0", false, "Confirmations should be between 1-20"},
		{"21", false, "Confirmations should be between 1-20"},
		{"-3", false, "Confirmations should be between 1-20"},
		{"abc", false, "Confirmations must be a number"},
		{"5.0", false, "Confirmations must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := ValidateConfirmations(tt.in)
			assert.Equal(t, tt.wantOK, v.OK)
			assert.Equal(t, tt.wantMsg, v.Message)
		})
	}
}

func TestPrefixedTokens(t *testing.T) {
	tests := []struct {
		name   string
		token  PrefixedToken
		in     string
		wantOK bool
	}{
		{"openai valid", OpenAIKey, "sk-" + strings.Repeat("a", 21), true},
		{"openai exactly 20", OpenAIKey, "sk-" + strings.Repeat("a", 17), false},
		{"openai short", OpenAIKey, "sk-short", false},
		{"openai wrong prefix", OpenAIKey, "pk-" + strings.Repeat("a", 21), false},
		{"google valid", GoogleAIKey, "AIza" + strings.Repeat("b", 31), true},
		{"google short", GoogleAIKey, "AIza" + strings.Repeat("b", 10), false},
		{"google wrong prefix", GoogleAIKey, "aiza" + strings.Repeat("b", 31), false},
		{"replicate valid", ReplicateToken, "r8_" + strings.Repeat("c", 11), true},
		{"replicate exactly 10", ReplicateToken, "r8_" + strings.Repeat("c", 7), false},
		{"replicate missing prefix", ReplicateToken, strings.Repeat("c", 14), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.token.Check(tt.in)
			assert.Equal(t, tt.wantOK, v.OK)
			if tt.wantOK {
				assert.Equal(t, tt.token.Valid, v.Message)
			} else {
				assert.Equal(t, tt.token.Invalid, v.Message)
			}
		})
	}
}

func TestValidateWalletConnectID(t *testing.T) {
	assert.True(t, ValidateWalletConnectID(strings.Repeat("x", 32)).OK)
	assert.True(t, ValidateWalletConnectID(strings.Repeat("x", 40)).OK)

	v := ValidateWalletConnectID(strings.Repeat("x", 31))
	assert.False(t, v.OK)
	assert.Equal(t, "Invalid WalletConnect project ID", v.Message)
}

func TestRPCValidator(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid url does not probe", func(t *testing.T) {
		p := &fakeProber{}
		for _, in := range []string{"polygon-rpc.com", "localhost:8545", "/just/a/path", "http://"} {
			v := NewRPCValidator(p).Validate(ctx, in)
			assert.False(t, v.OK, in)
			assert.Equal(t, "Invalid URL format", v.Message, in)
		}
		assert.Empty(t, p.calls)
	})

	t.Run("status 200", func(t *testing.T) {
		p := &fakeProber{res: &domain.ProbeResult{StatusCode: http.StatusOK}}
		v := NewRPCValidator(p).Validate(ctx, "https://polygon-rpc.com")
		assert.True(t, v.OK)
		assert.Equal(t, "RPC connection successful", v.Message)
		assert.Equal(t, []string{"https://polygon-rpc.com"}, p.calls)
	})

	t.Run("switching protocols is not success", func(t *testing.T) {
		p := &fakeProber{res: &domain.ProbeResult{StatusCode: http.StatusSwitchingProtocols}}
		v := NewRPCValidator(p).Validate(ctx, "wss://polygon-rpc.com")
		assert.False(t, v.OK)
		assert.Equal(t, "RPC connection failed: 101", v.Message)
	})

	t.Run("only 200 passes", func(t *testing.T) {
		for _, code := range []int{http.StatusCreated, http.StatusNoContent, http.StatusMovedPermanently} {
			p := &fakeProber{res: &domain.ProbeResult{StatusCode: code}}
			v := NewRPCValidator(p).Validate(ctx, "https://polygon-rpc.com")
			assert.False(t, v.OK, code)
		}
	})

	t.Run("non 200 status", func(t *testing.T) {
		p := &fakeProber{res: &domain.ProbeResult{StatusCode: http.StatusForbidden}}
		v := NewRPCValidator(p).Validate(ctx, "https://polygon-rpc.com")
		assert.False(t, v.OK)
		assert.Equal(t, "RPC connection failed: 403", v.Message)
	})

	t.Run("transport error", func(t *testing.T) {
		p := &fakeProber{err: errors.New("dial tcp: connection refused")}
		v := NewRPCValidator(p).Validate(ctx, "https://polygon-rpc.com")
		assert.False(t, v.OK)
		assert.Equal(t, "RPC connection error: dial tcp: connection refused", v.Message)
	})
}

func TestOpenAIKeyValidator(t *testing.T) {
	ctx := context.Background()
	good := "sk-" + strings.Repeat("a", 21)

	t.Run("format only", func(t *testing.T) {
		v := NewOpenAIKeyValidator(nil).Validate(ctx, good)
		assert.True(t, v.OK)
		assert.Equal(t, "Valid OpenAI API key format", v.Message)
	})

	t.Run("bad format skips verification", func(t *testing.T) {
		f := &fakeVerifier{}
		v := NewOpenAIKeyValidator(f).Validate(ctx, "sk-short")
		assert.False(t, v.OK)
		assert.Zero(t, f.calls)
	})

	t.Run("verified", func(t *testing.T) {
		f := &fakeVerifier{}
		v := NewOpenAIKeyValidator(f).Validate(ctx, good)
		assert.True(t, v.OK)
		assert.Equal(t, 1, f.calls)
	})

	t.Run("rejected", func(t *testing.T) {
		f := &fakeVerifier{err: errors.New("401 unauthorized")}
		v := NewOpenAIKeyValidator(f).Validate(ctx, good)
		assert.False(t, v.OK)
		assert.Equal(t, "OpenAI API key rejected: 401 unauthorized", v.Message)
	})
}
