package provider

import (
	"context"
	"net/http"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
)

// coffeeAdapter handles the Buy Me a Coffee rail. The rail is hosted-link
// only: donors follow the configured checkout page, so CreateIntent is a
// local stub even in api mode.
type coffeeAdapter struct {
	secret string
}

// NewBuyMeACoffee creates the Buy Me a Coffee adapter.
func NewBuyMeACoffee(secret string) ports.ProviderAdapter {
	return &coffeeAdapter{secret: secret}
}

func (a *coffeeAdapter) Method() domain.DonationMethod {
	return domain.MethodBuyMeACoffee
}

func (a *coffeeAdapter) CreateIntent(_ context.Context, _ ports.IntentParams) (*ports.IntentResult, error) {
	return stubIntent(domain.MethodBuyMeACoffee,
		"Buy Me a Coffee has no API intent flow; use the hosted checkout link."), nil
}

func (a *coffeeAdapter) VerifyWebhook(raw []byte, header http.Header) *ports.WebhookVerification {
	return verifySharedSecretWebhook(domain.MethodBuyMeACoffee, a.secret,
		header.Get("X-Provider-Signature"), raw)
}
