package provider

import (
	"context"
	"net/http"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
)

// mpesaAdapter handles M-Pesa. The rail is API-only (STK push, no hosted
// checkout page); until the Daraja integration lands, intents are stubs.
type mpesaAdapter struct {
	secret string
}

// NewMpesa creates the M-Pesa adapter.
func NewMpesa(secret string) ports.ProviderAdapter {
	return &mpesaAdapter{secret: secret}
}

func (a *mpesaAdapter) Method() domain.DonationMethod {
	return domain.MethodMpesa
}

func (a *mpesaAdapter) CreateIntent(_ context.Context, _ ports.IntentParams) (*ports.IntentResult, error) {
	return stubIntent(domain.MethodMpesa,
		"M-Pesa STK push is not configured yet; the intent was recorded locally."), nil
}

func (a *mpesaAdapter) VerifyWebhook(raw []byte, header http.Header) *ports.WebhookVerification {
	return verifySharedSecretWebhook(domain.MethodMpesa, a.secret,
		header.Get("X-Provider-Signature"), raw)
}
