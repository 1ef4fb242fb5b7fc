package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"

	"github.com/agentpay/setupcheck/internal/core/domain"
)

const (
	addressLength   = 42
	walletConnectID = 32

	minConfirmations = 1
	maxConfirmations = 20
)

// ValidateAddress accepts a 0x-prefixed, 40 hex digit EVM address.
// Checksum casing is not enforced.
func ValidateAddress(address string) domain.Verdict {
	if !strings.HasPrefix(address, "0x") || len(address) != addressLength {
		return domain.Fail("Invalid Ethereum address format")
	}
	if !common.IsHexAddress(address) {
		return domain.Fail("Invalid hexadecimal characters")
	}
	return domain.Pass("Valid Ethereum address")
}

// ValidateWalletConnectID only checks the length of the project ID.
func ValidateWalletConnectID(projectID string) domain.Verdict {
	if utf8.RuneCountInString(projectID) >= walletConnectID {
		return domain.Pass("Valid WalletConnect project ID")
	}
	return domain.Fail("Invalid WalletConnect project ID")
}

func ValidateConfirmations(value string) domain.Verdict {
	n, err := strconv.Atoi(value)
	if err != nil {
		return domain.Fail("Confirmations must be a number")
	}
	if n < minConfirmations || n > maxConfirmations {
		return domain.Fail("Confirmations should be between 1-20")
	}
	return domain.Pass(fmt.Sprintf("Valid confirmation count: %d", n))
}

// PrefixedToken describes an API token recognised by its vendor prefix.
// A token is valid when it starts with Prefix and is strictly longer than
// LongerThan characters.
type PrefixedToken struct {
	Prefix     string
	LongerThan int
	Valid      string
	Invalid    string
}

var (
	OpenAIKey = PrefixedToken{
		Prefix:     "sk-",
		LongerThan: 20,
		Valid:      "Valid OpenAI API key format",
		Invalid:    "Invalid OpenAI API key format",
	}
	GoogleAIKey = PrefixedToken{
		Prefix:     "AIza",
		LongerThan: 30,
		Valid:      "Valid Google AI API key format",
		Invalid:    "Invalid Google AI API key format",
	}
	ReplicateToken = PrefixedToken{
		Prefix:     "r8_",
		LongerThan: 10,
		Valid:      "Valid Replicate API token format",
		Invalid:    "Invalid Replicate API token format",
	}
)

func (p PrefixedToken) Check(token string) domain.Verdict {
	if strings.HasPrefix(token, p.Prefix) && utf8.RuneCountInString(token) > p.LongerThan {
		return domain.Pass(p.Valid)
	}
	return domain.Fail(p.Invalid)
}

// RPCValidator checks URL shape and then that the node answers.
type RPCValidator struct {
	prober domain.RPCProber
}

func NewRPCValidator(prober domain.RPCProber) *RPCValidator {
	return &RPCValidator{prober: prober}
}

func (v *RPCValidator) Validate(ctx context.Context, value string) domain.Verdict {
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return domain.Fail("Invalid URL format")
	}

	res, err := v.prober.Probe(ctx, value)
	if err != nil {
		return domain.Fail(fmt.Sprintf("RPC connection error: %v", err))
	}
	if res.StatusCode == http.StatusOK {
		return domain.Pass("RPC connection successful")
	}
	return domain.Fail(fmt.Sprintf("RPC connection failed: %d", res.StatusCode))
}

// OpenAIKeyValidator checks the key format and, when a verifier is set,
// that the API accepts it.
type OpenAIKeyValidator struct {
	verifier domain.KeyVerifier
}

// NewOpenAIKeyValidator returns a format-only validator when verifier is nil.
func NewOpenAIKeyValidator(verifier domain.KeyVerifier) *OpenAIKeyValidator {
	return &OpenAIKeyValidator{verifier: verifier}
}

func (v *OpenAIKeyValidator) Validate(ctx context.Context, key string) domain.Verdict {
	verdict := OpenAIKey.Check(key)
	if !verdict.OK || v.verifier == nil {
		return verdict
	}
	if err := v.verifier.Verify(ctx, key); err != nil {
		return domain.Fail(fmt.Sprintf("OpenAI API key rejected: %v", err))
	}
	return verdict
}
