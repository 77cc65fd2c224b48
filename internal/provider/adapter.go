// Package provider holds one adapter per payment rail. Adapters share a
// verify-then-parse webhook pipeline: the raw body is opaque until the
// shared-secret signature check passes, and only then is it decoded.
package provider

import (
	"crypto/hmac"
	"encoding/json"
	"strings"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"

	"github.com/google/uuid"
)

// sharedSecretMatch compares the presented signature header against the
// configured secret in constant time. An empty secret fails closed.
func sharedSecretMatch(secret, presented string) bool {
	if secret == "" || presented == "" {
		return false
	}
	return hmac.Equal([]byte(secret), []byte(presented))
}

// stringField returns the first non-empty string value among keys.
func stringField(payload map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := payload[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// verifySharedSecretWebhook is the common webhook pipeline: signature
// check, then decode, then field extraction and status normalization.
// It never panics and never reports partial success.
func verifySharedSecretWebhook(method domain.DonationMethod, secret, presented string, raw []byte) *ports.WebhookVerification {
	if !sharedSecretMatch(secret, presented) {
		return &ports.WebhookVerification{OK: false, Message: "signature verification failed"}
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Malformed JSON after a valid signature is still a verification
		// failure; nothing downstream may touch persisted state.
		return &ports.WebhookVerification{OK: false, Message: "malformed webhook payload"}
	}

	v := &ports.WebhookVerification{OK: true, Payload: payload}

	v.EventID = stringField(payload, "id", "event_id", "eventId")
	if v.EventID == "" {
		// A payload without a stable id gets a synthesized one. This
		// defeats idempotency for provider retries of that delivery —
		// kept until payload determinism is confirmed per provider.
		v.EventID = string(method) + "_evt_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	v.ProviderRef = stringField(payload, "provider_ref", "providerRef", "reference")

	if native := stringField(payload, "status", "event_type", "type", "event"); native != "" {
		if status, ok := domain.NormalizeProviderStatus(method, native); ok {
			v.Status = status
		}
	}

	return v
}

// stubIntent is the answer of an adapter with no live API configured:
// a locally synthesized ref, status created, and an explanatory message.
// Not an error — it signals "integration pending".
func stubIntent(method domain.DonationMethod, message string) *ports.IntentResult {
	return &ports.IntentResult{
		ProviderRef: domain.NewProviderRef(method),
		Status:      domain.StatusCreated,
		Message:     message,
	}
}
