package provider

import (
	"context"
	"net/http"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
)

// stripeAdapter handles Stripe. PaymentIntent API calls are not wired
// yet; hosted payment links cover the checkout path meanwhile.
type stripeAdapter struct {
	secret string
}

// NewStripe creates the Stripe adapter.
func NewStripe(secret string) ports.ProviderAdapter {
	return &stripeAdapter{secret: secret}
}

func (a *stripeAdapter) Method() domain.DonationMethod {
	return domain.MethodStripe
}

func (a *stripeAdapter) CreateIntent(_ context.Context, _ ports.IntentParams) (*ports.IntentResult, error) {
	return stubIntent(domain.MethodStripe,
		"Stripe API integration is not configured yet; the intent was recorded locally."), nil
}

func (a *stripeAdapter) VerifyWebhook(raw []byte, header http.Header) *ports.WebhookVerification {
	return verifySharedSecretWebhook(domain.MethodStripe, a.secret,
		header.Get("Stripe-Signature"), raw)
}
