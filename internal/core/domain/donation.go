package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DonationMethod identifies an external payment rail.
type DonationMethod string

const (
	MethodBuyMeACoffee DonationMethod = "buymeacoffee"
	MethodPayPal       DonationMethod = "paypal"
	MethodStripe       DonationMethod = "stripe"
	MethodMpesa        DonationMethod = "mpesa"
	MethodAirtm        DonationMethod = "airtm"
	MethodBank         DonationMethod = "bank"
)

// AllMethods lists every supported donation method. The set is fixed at
// compile time; the registry must carry an adapter for each entry.
var AllMethods = []DonationMethod{
	MethodBuyMeACoffee,
	MethodPayPal,
	MethodStripe,
	MethodMpesa,
	MethodAirtm,
	MethodBank,
}

// ParseMethod resolves a method identifier from request input.
func ParseMethod(s string) (DonationMethod, bool) {
	m := DonationMethod(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllMethods {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// DonationStatus is the lifecycle state of a donation transaction.
// created -> pending -> {paid | failed}; paid -> {refunded | disputed}.
// The reconciliation layer trusts the adapter's normalized status as the
// new state; only event identity is protected against replay.
type DonationStatus string

const (
	StatusCreated  DonationStatus = "created"
	StatusPending  DonationStatus = "pending"
	StatusPaid     DonationStatus = "paid"
	StatusFailed   DonationStatus = "failed"
	StatusRefunded DonationStatus = "refunded"
	StatusDisputed DonationStatus = "disputed"
)

// ValidStatus reports whether s is a member of the shared status taxonomy.
func ValidStatus(s DonationStatus) bool {
	switch s {
	case StatusCreated, StatusPending, StatusPaid, StatusFailed, StatusRefunded, StatusDisputed:
		return true
	}
	return false
}

// IsTerminal reports whether no further provider update is expected.
func (s DonationStatus) IsTerminal() bool {
	switch s {
	case StatusFailed, StatusRefunded, StatusDisputed:
		return true
	}
	return false
}

// DonationTransaction is the durable record of one payment attempt.
// Amount is a positive integer in the provider's unit convention (minor
// units or whole units, whichever the provider uses). (Provider,
// ProviderRef) is globally unique and is the correlation key for webhooks.
type DonationTransaction struct {
	ID            uuid.UUID      `json:"id"`
	UserID        *string        `json:"user_id,omitempty"` // nil = anonymous donor
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency"` // stored upper-cased, 3-6 chars
	Provider      DonationMethod `json:"provider"`
	Status        DonationStatus `json:"status"`
	ProviderRef   string         `json:"provider_ref"`
	DonorEmail    *string        `json:"donor_email,omitempty"`
	DonorName     *string        `json:"donor_name,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	WebhookEvents []string       `json:"webhook_events,omitempty"` // applied event ids, deduplicated
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NewProviderRef synthesizes a locally unique provider reference in the
// form {provider}_{token}. Used whenever no live provider call hands us
// a native intent id.
func NewProviderRef(method DonationMethod) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return string(method) + "_" + token
}

// DonationMethodConfig is the per-method availability answer. It is
// recomputed on every read and never persisted.
type DonationMethodConfig struct {
	Method      DonationMethod `json:"method"`
	Label       string         `json:"label"`
	Enabled     bool           `json:"enabled"`
	HostedURL   *string        `json:"hosted_url,omitempty"`
	Description string         `json:"description"`
}

// BankInstructions holds the manual transfer display details.
type BankInstructions struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	SwiftCode     string `json:"swift_code,omitempty"`
	ReferenceNote string `json:"reference_note,omitempty"`
}
