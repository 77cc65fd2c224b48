package domain

import "time"

// WebhookEvent is one row of the append-only idempotency ledger.
// (Provider, EventID) is globally unique; the insert of this row is the
// serialization point that guarantees at-most-once application of a
// provider event, independent of any transaction mutation.
type WebhookEvent struct {
	Provider    DonationMethod `json:"provider"`
	EventID     string         `json:"event_id"`
	ProcessedAt time.Time      `json:"processed_at"`
}

// Metadata keys written by the reconciliation flow. Metadata is an open
// bag; these are conventions, not a contract.
const (
	MetaWebhookPayload = "webhookPayload"
	MetaLastWebhookAt  = "lastWebhookAt"

	MetaTransferReference = "transferReference"
	MetaProofURL          = "proofUrl"
	MetaProofNotes        = "notes"
	MetaProofSubmittedAt  = "proofSubmittedAt"
	MetaProofSubmittedBy  = "proofSubmittedBy"
)
