package domain

import "strings"

// providerStatusTables maps each provider's native status/event vocabulary
// onto the shared six-value taxonomy. Adding a provider means adding a
// table here, not new control flow. Keys are compared lower-cased.
var providerStatusTables = map[DonationMethod]map[string]DonationStatus{
	MethodBuyMeACoffee: {
		"donation.created":  StatusPaid,
		"donation.refunded": StatusRefunded,
		"support.created":   StatusPaid,
	},
	MethodPayPal: {
		"payment.capture.completed": StatusPaid,
		"payment.capture.pending":   StatusPending,
		"payment.capture.denied":    StatusFailed,
		"payment.capture.declined":  StatusFailed,
		"payment.capture.refunded":  StatusRefunded,
		"payment.capture.reversed":  StatusRefunded,
		"customer.dispute.created":  StatusDisputed,
	},
	MethodStripe: {
		"payment_intent.created":        StatusCreated,
		"payment_intent.processing":     StatusPending,
		"payment_intent.succeeded":      StatusPaid,
		"payment_intent.payment_failed": StatusFailed,
		"payment_intent.canceled":       StatusFailed,
		"checkout.session.completed":    StatusPaid,
		"charge.refunded":               StatusRefunded,
		"charge.dispute.created":        StatusDisputed,
	},
	MethodMpesa: {
		"queued":    StatusPending,
		"initiated": StatusPending,
		"completed": StatusPaid,
		"success":   StatusPaid,
		"cancelled": StatusFailed,
		"timeout":   StatusFailed,
		"reversed":  StatusRefunded,
	},
	MethodAirtm: {
		"processing": StatusPending,
		"accepted":   StatusPending,
		"confirmed":  StatusPaid,
		"released":   StatusPaid,
		"declined":   StatusFailed,
		"expired":    StatusFailed,
		"returned":   StatusRefunded,
	},
	MethodBank: {
		"proof_submitted": StatusPending,
		"under_review":    StatusPending,
		"confirmed":       StatusPaid,
		"received":        StatusPaid,
		"rejected":        StatusFailed,
		"returned":        StatusRefunded,
	},
}

// NormalizeProviderStatus translates a provider-native status or event
// name into the shared taxonomy. Values that already are canonical
// statuses pass through, so providers that speak our vocabulary need no
// table entries.
func NormalizeProviderStatus(method DonationMethod, native string) (DonationStatus, bool) {
	key := strings.ToLower(strings.TrimSpace(native))
	if key == "" {
		return "", false
	}
	if table, ok := providerStatusTables[method]; ok {
		if mapped, ok := table[key]; ok {
			return mapped, true
		}
	}
	if s := DonationStatus(key); ValidStatus(s) {
		return s, true
	}
	return "", false
}
