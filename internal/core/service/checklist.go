package service

import "github.com/agentpay/setupcheck/internal/core/domain"

// Configuration keys read from the environment file.
const (
	KeyPayeeAddress      = "PAYEE_ADDRESS"
	KeyPolygonRPC        = "POLYGON_RPC_URL"
	KeyOpenAIAPIKey      = "OPENAI_API_KEY"
	KeyWalletConnectID   = "NEXT_PUBLIC_WALLETCONNECT_PROJECT_ID"
	KeyConfirmations     = "CONFIRMATIONS_REQUIRED"
	KeyEthereumRPC       = "ETHEREUM_RPC_URL"
	KeyBSCRPC            = "BSC_RPC_URL"
	KeyGoogleAIAPIKey    = "GOOGLE_AI_API_KEY"
	KeyReplicateAPIToken = "REPLICATE_API_TOKEN"
)

// Checklist returns the required checks followed by the optional ones, in
// report order. verifier may be nil.
func Checklist(prober domain.RPCProber, verifier domain.KeyVerifier) []domain.Check {
	rpc := NewRPCValidator(prober)

	required := func(key string, v domain.Validator) domain.Check {
		return domain.Check{Key: key, Group: domain.GroupRequired, Validate: v}
	}
	optional := func(key string, v domain.Validator) domain.Check {
		return domain.Check{Key: key, Group: domain.GroupOptional, Validate: v}
	}

	return []domain.Check{
		required(KeyPayeeAddress, domain.Static(ValidateAddress)),
		required(KeyPolygonRPC, rpc),
		required(KeyOpenAIAPIKey, NewOpenAIKeyValidator(verifier)),
		required(KeyWalletConnectID, domain.Static(ValidateWalletConnectID)),
		required(KeyConfirmations, domain.Static(ValidateConfirmations)),

		optional(KeyEthereumRPC, rpc),
		optional(KeyBSCRPC, rpc),
		optional(KeyGoogleAIAPIKey, domain.Static(GoogleAIKey.Check)),
		optional(KeyReplicateAPIToken, domain.Static(ReplicateToken.Check)),
	}
}
