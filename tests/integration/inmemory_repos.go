package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
)

// In-memory repository implementations backing the integration tests.
// They enforce the same uniqueness guarantees as the postgres layer:
// (provider, provider_ref) for transactions and (provider, event_id)
// for the webhook ledger.

func txnKey(provider domain.DonationMethod, ref string) string {
	return string(provider) + "|" + ref
}

type inMemoryDonationRepo struct {
	mu   sync.RWMutex
	txns map[string]*domain.DonationTransaction
}

func newInMemoryDonationRepo() *inMemoryDonationRepo {
	return &inMemoryDonationRepo{txns: make(map[string]*domain.DonationTransaction)}
}

func (r *inMemoryDonationRepo) Create(_ context.Context, t *domain.DonationTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := txnKey(t.Provider, t.ProviderRef)
	if _, exists := r.txns[key]; exists {
		return fmt.Errorf("duplicate provider ref %s", t.ProviderRef)
	}
	r.txns[key] = cloneTxn(t)
	return nil
}

func (r *inMemoryDonationRepo) GetByProviderRef(_ context.Context, provider domain.DonationMethod, ref string) (*domain.DonationTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.txns[txnKey(provider, ref)]
	if !ok {
		return nil, nil
	}
	return cloneTxn(t), nil
}

func (r *inMemoryDonationRepo) ApplyWebhookUpdate(_ context.Context, u ports.WebhookUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.txns[txnKey(u.Provider, u.ProviderRef)]
	if !ok {
		return false, nil
	}

	t.Status = u.Status
	t.Metadata = cloneMeta(u.Metadata)
	applied := false
	for _, e := range t.WebhookEvents {
		if e == u.EventID {
			applied = true
			break
		}
	}
	if !applied {
		t.WebhookEvents = append(t.WebhookEvents, u.EventID)
	}
	t.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *inMemoryDonationRepo) AttachBankProof(_ context.Context, ref string, proof ports.BankProof) (*domain.DonationTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.txns[txnKey(domain.MethodBank, ref)]
	if !ok {
		return nil, nil
	}

	if t.Metadata == nil {
		t.Metadata = make(map[string]any)
	}
	t.Metadata[domain.MetaTransferReference] = proof.TransferReference
	t.Metadata[domain.MetaProofSubmittedAt] = proof.SubmittedAt.Format(time.RFC3339)
	if proof.ProofURL != nil {
		t.Metadata[domain.MetaProofURL] = *proof.ProofURL
	}
	if proof.Notes != nil {
		t.Metadata[domain.MetaProofNotes] = *proof.Notes
	}
	if proof.SubmittedBy != nil {
		t.Metadata[domain.MetaProofSubmittedBy] = *proof.SubmittedBy
	}
	t.Status = domain.StatusPending
	t.UpdatedAt = time.Now().UTC()
	return cloneTxn(t), nil
}

func cloneTxn(t *domain.DonationTransaction) *domain.DonationTransaction {
	c := *t
	c.Metadata = cloneMeta(t.Metadata)
	c.WebhookEvents = append([]string(nil), t.WebhookEvents...)
	return &c
}

func cloneMeta(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

type inMemoryWebhookEventRepo struct {
	mu     sync.Mutex
	events map[string]time.Time
}

func newInMemoryWebhookEventRepo() *inMemoryWebhookEventRepo {
	return &inMemoryWebhookEventRepo{events: make(map[string]time.Time)}
}

func (r *inMemoryWebhookEventRepo) InsertIfAbsent(_ context.Context, provider domain.DonationMethod, eventID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := string(provider) + "|" + eventID
	if _, exists := r.events[key]; exists {
		return false, nil
	}
	r.events[key] = time.Now().UTC()
	return true, nil
}

func (r *inMemoryWebhookEventRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
