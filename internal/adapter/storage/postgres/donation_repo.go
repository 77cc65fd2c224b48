package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const donationColumns = `id, user_id, amount, currency, provider, status, provider_ref,
	donor_email, donor_name, metadata, webhook_events, created_at, updated_at`

// DonationRepo implements ports.DonationRepository. Every mutation is a
// single statement; the store's constraints and conditional expressions
// carry the atomicity, not application-level locking.
type DonationRepo struct {
	pool Pool
}

// NewDonationRepo creates a new DonationRepo.
func NewDonationRepo(pool Pool) *DonationRepo {
	return &DonationRepo{pool: pool}
}

// Create inserts a new donation transaction. The unique index on
// (provider, provider_ref) rejects duplicate refs.
func (r *DonationRepo) Create(ctx context.Context, t *domain.DonationTransaction) error {
	meta, err := marshalMetadata(t.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	query := `INSERT INTO donation_transactions (` + donationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.pool.Exec(ctx, query,
		t.ID, t.UserID, t.Amount, t.Currency, t.Provider, t.Status, t.ProviderRef,
		t.DonorEmail, t.DonorName, meta, t.WebhookEvents, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return storeErr("insert donation transaction", err)
	}
	return nil
}

// GetByProviderRef fetches a transaction by its provider correlation
// key. Returns nil, nil when nothing matches.
func (r *DonationRepo) GetByProviderRef(ctx context.Context, provider domain.DonationMethod, ref string) (*domain.DonationTransaction, error) {
	query := `SELECT ` + donationColumns + `
		FROM donation_transactions WHERE provider = $1 AND provider_ref = $2`

	return r.scanDonation(r.pool.QueryRow(ctx, query, provider, ref))
}

// ApplyWebhookUpdate sets the status, replaces the stored metadata, and
// appends the event id to webhook_events unless it is already there, all
// in one statement. Returns false when no transaction matches.
func (r *DonationRepo) ApplyWebhookUpdate(ctx context.Context, u ports.WebhookUpdate) (bool, error) {
	meta, err := marshalMetadata(u.Metadata)
	if err != nil {
		return false, fmt.Errorf("encode metadata: %w", err)
	}

	query := `UPDATE donation_transactions
		SET status = $3,
			metadata = $4,
			webhook_events = CASE
				WHEN $5 = ANY(webhook_events) THEN webhook_events
				ELSE array_append(webhook_events, $5)
			END,
			updated_at = $6
		WHERE provider = $1 AND provider_ref = $2`

	tag, err := r.pool.Exec(ctx, query,
		u.Provider, u.ProviderRef, u.Status, meta, u.EventID, time.Now().UTC(),
	)
	if err != nil {
		return false, storeErr("apply webhook update", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AttachBankProof merges the proof fields into the matching bank
// transaction's metadata and moves it to pending, returning the updated
// row. Returns nil, nil when no transaction matches the ref.
func (r *DonationRepo) AttachBankProof(ctx context.Context, ref string, proof ports.BankProof) (*domain.DonationTransaction, error) {
	fields := map[string]any{
		domain.MetaTransferReference: proof.TransferReference,
		domain.MetaProofSubmittedAt:  proof.SubmittedAt.Format(time.RFC3339),
	}
	if proof.ProofURL != nil {
		fields[domain.MetaProofURL] = *proof.ProofURL
	}
	if proof.Notes != nil {
		fields[domain.MetaProofNotes] = *proof.Notes
	}
	if proof.SubmittedBy != nil {
		fields[domain.MetaProofSubmittedBy] = *proof.SubmittedBy
	}
	merge, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode proof metadata: %w", err)
	}

	query := `UPDATE donation_transactions
		SET status = $2,
			metadata = COALESCE(metadata, '{}'::jsonb) || $3::jsonb,
			updated_at = $4
		WHERE provider = $1 AND provider_ref = $5
		RETURNING ` + donationColumns

	return r.scanDonation(r.pool.QueryRow(ctx, query,
		domain.MethodBank, domain.StatusPending, merge, time.Now().UTC(), ref,
	))
}

// scanDonation scans a single row into a DonationTransaction, mapping
// no-rows to nil, nil.
func (r *DonationRepo) scanDonation(row pgx.Row) (*domain.DonationTransaction, error) {
	t := &domain.DonationTransaction{}
	var meta []byte
	err := row.Scan(
		&t.ID, &t.UserID, &t.Amount, &t.Currency, &t.Provider, &t.Status, &t.ProviderRef,
		&t.DonorEmail, &t.DonorName, &meta, &t.WebhookEvents, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("scan donation transaction", err)
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &t.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return t, nil
}

// marshalMetadata encodes metadata for a jsonb column, writing an empty
// object rather than NULL for absent metadata.
func marshalMetadata(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}
