package ports

import (
	"context"
	"net/http"

	"donation-gateway/internal/core/domain"
)

// ProviderAdapter encapsulates one payment rail: how to create an intent
// and how to verify an inbound webhook.
//
// VerifyWebhook must treat raw as opaque bytes until the signature check
// passes — never parse-before-verify — and must not panic or return
// partial results on malformed payloads.
type ProviderAdapter interface {
	Method() domain.DonationMethod

	// CreateIntent builds a payment intent. Stub adapters (no live API
	// configured) synthesize a local provider ref and report status
	// "created" with an explanatory message; that is not an error. The
	// contract tolerates adapters that do network I/O and can fail.
	CreateIntent(ctx context.Context, p IntentParams) (*IntentResult, error)

	VerifyWebhook(raw []byte, header http.Header) *WebhookVerification
}

// IntentParams is the adapter-facing slice of an intent request.
type IntentParams struct {
	Amount     int64
	Currency   string
	DonorEmail *string
	DonorName  *string
	Metadata   map[string]any
}

// IntentResult is what an adapter resolved for a new intent.
type IntentResult struct {
	ProviderRef string
	Status      domain.DonationStatus
	CheckoutURL *string
	Message     string
}

// WebhookVerification is the outcome of verifying and decoding one
// inbound provider event. When OK is false every other field except
// Message is meaningless.
type WebhookVerification struct {
	OK          bool
	EventID     string
	ProviderRef string
	Status      domain.DonationStatus // "" when the payload carried no mappable status
	Payload     map[string]any
	Message     string
}

// ProviderRegistry resolves adapters for donation methods.
type ProviderRegistry interface {
	// Get returns the adapter for a method, ok=false for unknown methods.
	Get(method domain.DonationMethod) (ProviderAdapter, bool)
	// MustGet panics on an unregistered method; every enumerated method
	// has an adapter at startup, so a miss is a programming error.
	MustGet(method domain.DonationMethod) ProviderAdapter
}

// MethodService resolves donation method availability from configuration.
type MethodService interface {
	// Mode returns the global donation mode: "hosted" (default) or "api".
	Mode() string
	MethodConfigs() []domain.DonationMethodConfig
	ConfigFor(method domain.DonationMethod) (domain.DonationMethodConfig, bool)
	HasAnyEnabled() bool
	BankInstructions() domain.BankInstructions
}

// IntentService is the intent creation orchestrator.
type IntentService interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*CreateIntentResult, error)
}

// CreateIntentRequest holds validated intent input.
type CreateIntentRequest struct {
	Provider   domain.DonationMethod
	Amount     int64  // defaulted to 5 when zero
	Currency   string // defaulted to USD, stored upper-cased
	DonorName  *string
	DonorEmail *string
	UserID     *string // nil = anonymous
	Metadata   map[string]any
}

// CreateIntentResult is the orchestrator's answer. TrackingSaved reports
// whether the transaction record was durably written; a false value does
// not fail the donation flow.
type CreateIntentResult struct {
	Mode          string
	Provider      domain.DonationMethod
	ProviderRef   string
	Status        domain.DonationStatus
	CheckoutURL   *string
	TrackingSaved bool
	Message       string
}

// WebhookService is the webhook reconciliation orchestrator.
type WebhookService interface {
	// Process verifies, deduplicates, and applies one inbound provider
	// event. Raw must be the exact request bytes.
	Process(ctx context.Context, provider domain.DonationMethod, raw []byte, header http.Header) (*WebhookResult, error)

	// SubmitBankProof is the synchronous manual-transfer path; it skips
	// webhook verification entirely.
	SubmitBankProof(ctx context.Context, req BankProofRequest) (*domain.DonationTransaction, error)
}

// WebhookResult reports the reconciliation outcome.
type WebhookResult struct {
	Duplicate bool
	Processed bool
}

// BankProofRequest holds a manual proof-of-payment submission.
type BankProofRequest struct {
	ProviderRef       string
	TransferReference string
	ProofURL          *string
	Notes             *string
	UserID            *string
}
