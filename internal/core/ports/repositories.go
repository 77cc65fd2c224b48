package ports

import (
	"context"
	"errors"
	"time"

	"donation-gateway/internal/core/domain"
)

// ErrStoreUnavailable marks store failures that are connectivity-level
// (unreachable, unconfigured) rather than logical. Callers translate it
// to a retryable 503 instead of a generic 500.
var ErrStoreUnavailable = errors.New("store unavailable")

// DonationRepository persists donation transactions. Mutations are
// single-statement find-and-update primitives; the (provider,
// provider_ref) uniqueness constraint lives in the store, not in
// application-level locking.
type DonationRepository interface {
	// Create inserts a new transaction. The (provider, provider_ref)
	// unique constraint makes a duplicate insert fail.
	Create(ctx context.Context, t *domain.DonationTransaction) error

	GetByProviderRef(ctx context.Context, provider domain.DonationMethod, ref string) (*domain.DonationTransaction, error)

	// ApplyWebhookUpdate atomically sets status, replaces metadata
	// wholesale, and appends the event id to webhook_events if absent.
	// Returns false when no transaction matches (provider, ref) — a
	// legitimate case for webhooks of untracked intents.
	ApplyWebhookUpdate(ctx context.Context, u WebhookUpdate) (bool, error)

	// AttachBankProof atomically merges proof metadata into the matching
	// bank transaction and moves it to pending. Returns nil, nil when no
	// transaction matches the ref.
	AttachBankProof(ctx context.Context, ref string, proof BankProof) (*domain.DonationTransaction, error)
}

// WebhookUpdate is the state a verified provider event applies to a
// tracked transaction.
type WebhookUpdate struct {
	Provider    domain.DonationMethod
	ProviderRef string
	EventID     string
	Status      domain.DonationStatus
	Metadata    map[string]any // replaces the stored metadata wholesale
}

// BankProof holds a manual transfer proof submission.
type BankProof struct {
	TransferReference string
	ProofURL          *string
	Notes             *string
	SubmittedBy       *string
	SubmittedAt       time.Time
}

// WebhookEventRepository is the append-only idempotency ledger.
type WebhookEventRepository interface {
	// InsertIfAbsent records (provider, event_id) and returns true if the
	// row was newly inserted, false if the event was already processed.
	// The store's unique constraint is the serialization point for
	// concurrent deliveries of the same event.
	InsertIfAbsent(ctx context.Context, provider domain.DonationMethod, eventID string) (bool, error)
}

// EventDedupCache is an advisory fast path in front of the ledger. A
// cache miss or error never implies "not processed"; only the ledger
// insert decides that.
type EventDedupCache interface {
	Seen(ctx context.Context, provider domain.DonationMethod, eventID string) (bool, error)
	MarkSeen(ctx context.Context, provider domain.DonationMethod, eventID string, ttl time.Duration) error
}
