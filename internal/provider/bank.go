package provider

import (
	"context"
	"net/http"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
)

// bankAdapter handles manual bank transfers. A transfer is inherently
// pending until a human reviews the submitted proof, so intents start at
// pending rather than created.
type bankAdapter struct {
	secret string
}

// NewBank creates the manual bank transfer adapter.
func NewBank(secret string) ports.ProviderAdapter {
	return &bankAdapter{secret: secret}
}

func (a *bankAdapter) Method() domain.DonationMethod {
	return domain.MethodBank
}

func (a *bankAdapter) CreateIntent(_ context.Context, _ ports.IntentParams) (*ports.IntentResult, error) {
	return &ports.IntentResult{
		ProviderRef: domain.NewProviderRef(domain.MethodBank),
		Status:      domain.StatusPending,
		Message:     "Transfer the amount using the bank details shown, then submit your proof of payment.",
	}, nil
}

// VerifyWebhook covers back-office confirmations of reviewed transfers;
// donor-facing proof submission uses the synchronous submit-proof path.
func (a *bankAdapter) VerifyWebhook(raw []byte, header http.Header) *ports.WebhookVerification {
	return verifySharedSecretWebhook(domain.MethodBank, a.secret,
		header.Get("X-Provider-Signature"), raw)
}
