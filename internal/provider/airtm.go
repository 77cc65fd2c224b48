package provider

import (
	"context"
	"net/http"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
)

// airtmAdapter handles Airtm. No live integration exists; the method
// stays disabled in configuration until one does, but webhooks are
// already verifiable so historical events are not lost.
type airtmAdapter struct {
	secret string
}

// NewAirtm creates the Airtm adapter.
func NewAirtm(secret string) ports.ProviderAdapter {
	return &airtmAdapter{secret: secret}
}

func (a *airtmAdapter) Method() domain.DonationMethod {
	return domain.MethodAirtm
}

func (a *airtmAdapter) CreateIntent(_ context.Context, _ ports.IntentParams) (*ports.IntentResult, error) {
	return stubIntent(domain.MethodAirtm,
		"Airtm integration is not configured yet; the intent was recorded locally."), nil
}

func (a *airtmAdapter) VerifyWebhook(raw []byte, header http.Header) *ports.WebhookVerification {
	return verifySharedSecretWebhook(domain.MethodAirtm, a.secret,
		header.Get("X-Provider-Signature"), raw)
}
