package provider

import (
	"context"
	"net/http"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
)

// paypalAdapter handles PayPal. No live Orders API call is wired yet;
// intents are recorded locally and reconciled via webhooks.
type paypalAdapter struct {
	secret string
}

// NewPayPal creates the PayPal adapter.
func NewPayPal(secret string) ports.ProviderAdapter {
	return &paypalAdapter{secret: secret}
}

func (a *paypalAdapter) Method() domain.DonationMethod {
	return domain.MethodPayPal
}

func (a *paypalAdapter) CreateIntent(_ context.Context, _ ports.IntentParams) (*ports.IntentResult, error) {
	return stubIntent(domain.MethodPayPal,
		"PayPal API integration is not configured yet; the intent was recorded locally."), nil
}

func (a *paypalAdapter) VerifyWebhook(raw []byte, header http.Header) *ports.WebhookVerification {
	return verifySharedSecretWebhook(domain.MethodPayPal, a.secret,
		header.Get("Paypal-Transmission-Sig"), raw)
}
