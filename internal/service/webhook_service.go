package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
	"donation-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// dedupCacheTTL bounds the advisory redis fast path. The postgres ledger
// is unbounded and remains the source of truth after expiry.
const dedupCacheTTL = 48 * time.Hour

// WebhookServiceImpl implements ports.WebhookService.
type WebhookServiceImpl struct {
	registry ports.ProviderRegistry
	events   ports.WebhookEventRepository
	txns     ports.DonationRepository
	cache    ports.EventDedupCache // nil = fast path disabled
	log      zerolog.Logger
}

// NewWebhookService creates a new WebhookServiceImpl.
func NewWebhookService(
	registry ports.ProviderRegistry,
	events ports.WebhookEventRepository,
	txns ports.DonationRepository,
	cache ports.EventDedupCache,
	log zerolog.Logger,
) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		registry: registry,
		events:   events,
		txns:     txns,
		cache:    cache,
		log:      log,
	}
}

// Process verifies, deduplicates, and applies one inbound provider event.
//
// The ledger insert happens before any transaction mutation: once
// (provider, event_id) is recorded, a concurrent or retried delivery of
// the same event can only land on the duplicate path. Providers deliver
// at-least-once; this is what makes application at-most-once.
func (s *WebhookServiceImpl) Process(ctx context.Context, provider domain.DonationMethod, raw []byte, header http.Header) (*ports.WebhookResult, error) {
	adapter, ok := s.registry.Get(provider)
	if !ok {
		return nil, apperror.ErrUnsupportedProvider(string(provider))
	}
	if s.events == nil || s.txns == nil {
		return nil, apperror.ErrStoreUnavailable(errors.New("transaction store not configured"))
	}

	v := s.safeVerify(adapter, raw, header)
	if !v.OK || v.EventID == "" {
		s.log.Warn().
			Str("provider", string(provider)).
			Str("reason", v.Message).
			Msg("webhook rejected")
		return nil, apperror.ErrWebhookVerification()
	}

	// Advisory fast path. A cache error or miss falls through to the
	// ledger; only a positive hit short-circuits.
	if s.cache != nil {
		seen, err := s.cache.Seen(ctx, provider, v.EventID)
		if err != nil {
			s.log.Warn().Err(err).Str("event_id", v.EventID).Msg("dedup cache check failed, falling through to ledger")
		} else if seen {
			return &ports.WebhookResult{Duplicate: true}, nil
		}
	}

	inserted, err := s.events.InsertIfAbsent(ctx, provider, v.EventID)
	if err != nil {
		return nil, s.storeError("record webhook event", err)
	}
	if !inserted {
		s.markSeen(ctx, provider, v.EventID)
		return &ports.WebhookResult{Duplicate: true}, nil
	}

	if v.ProviderRef != "" && v.Status != "" {
		update := ports.WebhookUpdate{
			Provider:    provider,
			ProviderRef: v.ProviderRef,
			EventID:     v.EventID,
			Status:      v.Status,
			Metadata: map[string]any{
				domain.MetaWebhookPayload: v.Payload,
				domain.MetaLastWebhookAt:  time.Now().UTC().Format(time.RFC3339),
			},
		}
		found, err := s.txns.ApplyWebhookUpdate(ctx, update)
		if err != nil {
			return nil, s.storeError("apply webhook update", err)
		}
		if !found {
			// A webhook may arrive before, or without, a tracked intent
			// (e.g. abandoned checkout). The event stays recorded.
			s.log.Info().
				Str("provider", string(provider)).
				Str("provider_ref", v.ProviderRef).
				Str("event_id", v.EventID).
				Msg("webhook event has no tracked transaction, recorded anyway")
		} else {
			s.log.Info().
				Str("provider", string(provider)).
				Str("provider_ref", v.ProviderRef).
				Str("event_id", v.EventID).
				Str("status", string(v.Status)).
				Bool("terminal", v.Status.IsTerminal()).
				Msg("webhook applied to transaction")
		}
	}

	s.markSeen(ctx, provider, v.EventID)
	return &ports.WebhookResult{Processed: true}, nil
}

// safeVerify shields the orchestrator from a panicking adapter; any
// panic is a verification failure, never a crash surfaced to the caller.
func (s *WebhookServiceImpl) safeVerify(adapter ports.ProviderAdapter, raw []byte, header http.Header) (v *ports.WebhookVerification) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("provider", string(adapter.Method())).
				Interface("panic", r).
				Msg("webhook verifier panicked")
			v = &ports.WebhookVerification{OK: false, Message: "verifier failure"}
		}
	}()
	v = adapter.VerifyWebhook(raw, header)
	if v == nil {
		v = &ports.WebhookVerification{OK: false, Message: "verifier returned no result"}
	}
	return v
}

// markSeen populates the advisory cache best-effort after the ledger
// has decided.
func (s *WebhookServiceImpl) markSeen(ctx context.Context, provider domain.DonationMethod, eventID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.MarkSeen(ctx, provider, eventID, dedupCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("event_id", eventID).Msg("failed to mark webhook event in dedup cache")
	}
}

// SubmitBankProof is the synchronous manual-transfer path: it bypasses
// webhook verification, moves the matching bank transaction to pending,
// and merges the proof fields into its metadata.
func (s *WebhookServiceImpl) SubmitBankProof(ctx context.Context, req ports.BankProofRequest) (*domain.DonationTransaction, error) {
	if s.txns == nil {
		return nil, apperror.ErrStoreUnavailable(errors.New("transaction store not configured"))
	}

	proof := ports.BankProof{
		TransferReference: req.TransferReference,
		ProofURL:          req.ProofURL,
		Notes:             req.Notes,
		SubmittedBy:       req.UserID,
		SubmittedAt:       time.Now().UTC(),
	}

	txn, err := s.txns.AttachBankProof(ctx, req.ProviderRef, proof)
	if err != nil {
		return nil, s.storeError("attach bank proof", err)
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("bank transaction")
	}

	s.log.Info().
		Str("provider_ref", req.ProviderRef).
		Str("transfer_reference", req.TransferReference).
		Msg("bank transfer proof submitted")
	return txn, nil
}

// storeError keeps the 503/500 distinction: connectivity-level failures
// are retryable, everything else is a generic internal error.
func (s *WebhookServiceImpl) storeError(op string, err error) error {
	if errors.Is(err, ports.ErrStoreUnavailable) {
		return apperror.ErrStoreUnavailable(err)
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}
