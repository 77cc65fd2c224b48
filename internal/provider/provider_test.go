package provider

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"donation-gateway/config"
	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_0123456789"

func signedHeader(name string) http.Header {
	h := http.Header{}
	h.Set(name, testSecret)
	return h
}

// ==================== Shared verification pipeline ====================

func TestSharedSecretMatch(t *testing.T) {
	assert.True(t, sharedSecretMatch("s3cret", "s3cret"))
	assert.False(t, sharedSecretMatch("s3cret", "wrong"))
	// An unconfigured secret must fail closed, even against an empty header.
	assert.False(t, sharedSecretMatch("", ""))
	assert.False(t, sharedSecretMatch("", "anything"))
	assert.False(t, sharedSecretMatch("s3cret", ""))
}

func TestVerifySharedSecretWebhook_Valid(t *testing.T) {
	raw := []byte(`{"id":"evt_123","provider_ref":"stripe_abc","status":"paid","amount":500}`)

	v := verifySharedSecretWebhook(domain.MethodStripe, testSecret, testSecret, raw)
	require.True(t, v.OK)
	assert.Equal(t, "evt_123", v.EventID)
	assert.Equal(t, "stripe_abc", v.ProviderRef)
	assert.Equal(t, domain.StatusPaid, v.Status)
	assert.Equal(t, float64(500), v.Payload["amount"])
}

func TestVerifySharedSecretWebhook_BadSignature(t *testing.T) {
	raw := []byte(`{"id":"evt_123"}`)

	v := verifySharedSecretWebhook(domain.MethodStripe, testSecret, "wrong", raw)
	require.False(t, v.OK)
	assert.Empty(t, v.EventID)
	assert.Nil(t, v.Payload)
}

func TestVerifySharedSecretWebhook_MalformedJSONAfterValidSignature(t *testing.T) {
	// A valid signature never rescues an unparsable body.
	raw := []byte(`{"id": "evt_123"`)

	v := verifySharedSecretWebhook(domain.MethodStripe, testSecret, testSecret, raw)
	require.False(t, v.OK)
	assert.Equal(t, "malformed webhook payload", v.Message)
}

func TestVerifySharedSecretWebhook_BadJSONWithBadSignatureStaysSignatureFailure(t *testing.T) {
	v := verifySharedSecretWebhook(domain.MethodStripe, testSecret, "wrong", []byte(`not json`))
	require.False(t, v.OK)
	assert.Equal(t, "signature verification failed", v.Message)
}

func TestVerifySharedSecretWebhook_EventIDFallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"id", `{"id":"evt_a"}`, "evt_a"},
		{"event_id", `{"event_id":"evt_b"}`, "evt_b"},
		{"eventId", `{"eventId":"evt_c"}`, "evt_c"},
		{"id wins over event_id", `{"id":"evt_a","event_id":"evt_b"}`, "evt_a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := verifySharedSecretWebhook(domain.MethodStripe, testSecret, testSecret, []byte(tt.raw))
			require.True(t, v.OK)
			assert.Equal(t, tt.want, v.EventID)
		})
	}
}

func TestVerifySharedSecretWebhook_SynthesizedEventID(t *testing.T) {
	v := verifySharedSecretWebhook(domain.MethodPayPal, testSecret, testSecret, []byte(`{"status":"paid"}`))
	require.True(t, v.OK)
	assert.True(t, strings.HasPrefix(v.EventID, "paypal_evt_"))

	// Each delivery without a native id gets a fresh one.
	v2 := verifySharedSecretWebhook(domain.MethodPayPal, testSecret, testSecret, []byte(`{"status":"paid"}`))
	assert.NotEqual(t, v.EventID, v2.EventID)
}

func TestVerifySharedSecretWebhook_ProviderRefFallbacks(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`{"id":"e","provider_ref":"ref_a"}`, "ref_a"},
		{`{"id":"e","providerRef":"ref_b"}`, "ref_b"},
		{`{"id":"e","reference":"ref_c"}`, "ref_c"},
		{`{"id":"e"}`, ""},
	}

	for _, tt := range tests {
		v := verifySharedSecretWebhook(domain.MethodStripe, testSecret, testSecret, []byte(tt.raw))
		require.True(t, v.OK)
		assert.Equal(t, tt.want, v.ProviderRef)
	}
}

func TestVerifySharedSecretWebhook_StatusNormalization(t *testing.T) {
	tests := []struct {
		name   string
		method domain.DonationMethod
		raw    string
		want   domain.DonationStatus
	}{
		{"stripe event type", domain.MethodStripe, `{"id":"e","type":"payment_intent.succeeded"}`, domain.StatusPaid},
		{"paypal event_type", domain.MethodPayPal, `{"id":"e","event_type":"PAYMENT.CAPTURE.COMPLETED"}`, domain.StatusPaid},
		{"coffee event", domain.MethodBuyMeACoffee, `{"id":"e","event":"donation.created"}`, domain.StatusPaid},
		{"canonical passthrough", domain.MethodMpesa, `{"id":"e","status":"refunded"}`, domain.StatusRefunded},
		{"unknown stays empty", domain.MethodStripe, `{"id":"e","status":"weird_thing"}`, ""},
		{"no status field", domain.MethodStripe, `{"id":"e"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := verifySharedSecretWebhook(tt.method, testSecret, testSecret, []byte(tt.raw))
			require.True(t, v.OK)
			assert.Equal(t, tt.want, v.Status)
		})
	}
}

// ==================== Adapters ====================

func TestAdapters_SignatureHeaders(t *testing.T) {
	raw := []byte(`{"id":"evt_1","status":"paid"}`)

	tests := []struct {
		adapter ports.ProviderAdapter
		header  string
	}{
		{NewBuyMeACoffee(testSecret), "X-Provider-Signature"},
		{NewPayPal(testSecret), "Paypal-Transmission-Sig"},
		{NewStripe(testSecret), "Stripe-Signature"},
		{NewMpesa(testSecret), "X-Provider-Signature"},
		{NewAirtm(testSecret), "X-Provider-Signature"},
		{NewBank(testSecret), "X-Provider-Signature"},
	}

	for _, tt := range tests {
		t.Run(string(tt.adapter.Method()), func(t *testing.T) {
			v := tt.adapter.VerifyWebhook(raw, signedHeader(tt.header))
			assert.True(t, v.OK, "expected %s header to verify", tt.header)

			v = tt.adapter.VerifyWebhook(raw, http.Header{})
			assert.False(t, v.OK, "missing header must fail")
		})
	}
}

func TestStubAdapters_CreateIntent(t *testing.T) {
	ctx := context.Background()

	for _, a := range []ports.ProviderAdapter{
		NewBuyMeACoffee(testSecret),
		NewPayPal(testSecret),
		NewStripe(testSecret),
		NewMpesa(testSecret),
		NewAirtm(testSecret),
	} {
		intent, err := a.CreateIntent(ctx, ports.IntentParams{Amount: 500, Currency: "USD"})
		require.NoError(t, err, string(a.Method()))
		assert.Equal(t, domain.StatusCreated, intent.Status)
		assert.True(t, strings.HasPrefix(intent.ProviderRef, string(a.Method())+"_"))
		assert.NotEmpty(t, intent.Message)
	}
}

func TestBankAdapter_CreateIntentStartsPending(t *testing.T) {
	a := NewBank("")
	intent, err := a.CreateIntent(context.Background(), ports.IntentParams{Amount: 100, Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, intent.Status)
	assert.True(t, strings.HasPrefix(intent.ProviderRef, "bank_"))
	assert.Nil(t, intent.CheckoutURL)
}

// ==================== Registry ====================

func TestRegistry_CoversAllMethods(t *testing.T) {
	r := NewRegistry(config.DonationConfig{})

	for _, m := range domain.AllMethods {
		a, ok := r.Get(m)
		require.True(t, ok, string(m))
		assert.Equal(t, m, a.Method())
		assert.NotPanics(t, func() { r.MustGet(m) })
	}
}

func TestRegistry_UnknownMethod(t *testing.T) {
	r := NewRegistry(config.DonationConfig{})

	_, ok := r.Get(domain.DonationMethod("venmo"))
	assert.False(t, ok)
	assert.Panics(t, func() { r.MustGet(domain.DonationMethod("venmo")) })
}

func TestRegistry_UsesConfiguredSecrets(t *testing.T) {
	r := NewRegistry(config.DonationConfig{
		Secrets: map[string]string{"stripe": testSecret},
	})
	raw := []byte(`{"id":"evt_1"}`)

	stripe := r.MustGet(domain.MethodStripe)
	assert.True(t, stripe.VerifyWebhook(raw, signedHeader("Stripe-Signature")).OK)

	// PayPal has no secret configured and must reject everything.
	paypal := r.MustGet(domain.MethodPayPal)
	assert.False(t, paypal.VerifyWebhook(raw, signedHeader("Paypal-Transmission-Sig")).OK)
}
