package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
	"donation-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultAmount   = 5
	defaultCurrency = "USD"
)

// IntentServiceImpl implements ports.IntentService.
type IntentServiceImpl struct {
	registry ports.ProviderRegistry
	methods  ports.MethodService
	repo     ports.DonationRepository // nil = tracking store not configured
	log      zerolog.Logger
}

// NewIntentService creates a new IntentServiceImpl.
func NewIntentService(
	registry ports.ProviderRegistry,
	methods ports.MethodService,
	repo ports.DonationRepository,
	log zerolog.Logger,
) *IntentServiceImpl {
	return &IntentServiceImpl{
		registry: registry,
		methods:  methods,
		repo:     repo,
		log:      log,
	}
}

// CreateIntent resolves a checkout destination for a donation and
// persists a tracking record. The persistence is best-effort: a tracking
// store outage must never block the donor's path to checkout, so a
// failed write only flips TrackingSaved to false.
func (s *IntentServiceImpl) CreateIntent(ctx context.Context, req ports.CreateIntentRequest) (*ports.CreateIntentResult, error) {
	adapter, ok := s.registry.Get(req.Provider)
	if !ok {
		return nil, apperror.ErrUnsupportedProvider(string(req.Provider))
	}
	if _, ok := s.methods.ConfigFor(req.Provider); !ok {
		return nil, apperror.ErrUnsupportedProvider(string(req.Provider))
	}

	amount := req.Amount
	if amount == 0 {
		amount = defaultAmount
	}
	if amount < 0 {
		return nil, apperror.Validation("amount must be a positive integer")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	if len(currency) < 3 || len(currency) > 6 {
		return nil, apperror.Validation("currency must be 3-6 characters")
	}

	mode := s.methods.Mode()
	intent, err := s.resolveIntent(ctx, mode, adapter, req, amount, currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := &domain.DonationTransaction{
		ID:            uuid.New(),
		UserID:        req.UserID,
		Amount:        amount,
		Currency:      currency,
		Provider:      req.Provider,
		Status:        intent.Status,
		ProviderRef:   intent.ProviderRef,
		DonorEmail:    req.DonorEmail,
		DonorName:     req.DonorName,
		Metadata:      req.Metadata,
		WebhookEvents: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	saved := false
	if s.repo != nil {
		if err := s.repo.Create(ctx, txn); err != nil {
			s.log.Warn().Err(err).
				Str("provider", string(req.Provider)).
				Str("provider_ref", intent.ProviderRef).
				Msg("failed to persist donation tracking record, continuing without it")
		} else {
			saved = true
		}
	}

	s.log.Info().
		Str("provider", string(req.Provider)).
		Str("provider_ref", intent.ProviderRef).
		Str("mode", mode).
		Int64("amount", amount).
		Str("currency", currency).
		Bool("tracking_saved", saved).
		Msg("donation intent created")

	return &ports.CreateIntentResult{
		Mode:          mode,
		Provider:      req.Provider,
		ProviderRef:   intent.ProviderRef,
		Status:        intent.Status,
		CheckoutURL:   intent.CheckoutURL,
		TrackingSaved: saved,
		Message:       intent.Message,
	}, nil
}

// resolveIntent picks the checkout destination for the active mode.
func (s *IntentServiceImpl) resolveIntent(
	ctx context.Context,
	mode string,
	adapter ports.ProviderAdapter,
	req ports.CreateIntentRequest,
	amount int64,
	currency string,
) (*ports.IntentResult, error) {
	params := ports.IntentParams{
		Amount:     amount,
		Currency:   currency,
		DonorEmail: req.DonorEmail,
		DonorName:  req.DonorName,
		Metadata:   req.Metadata,
	}

	if mode == "api" || req.Provider == domain.MethodBank {
		// Bank has no hosted checkout in any mode; its adapter answers
		// pending immediately. In api mode every adapter decides.
		intent, err := adapter.CreateIntent(ctx, params)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create %s intent: %w", req.Provider, err))
		}
		return intent, nil
	}

	cfg, _ := s.methods.ConfigFor(req.Provider)
	if cfg.HostedURL == nil {
		// A hosted method without a validated URL must not be offered.
		return nil, apperror.ErrMethodNotConfigured(string(req.Provider))
	}
	return &ports.IntentResult{
		ProviderRef: domain.NewProviderRef(req.Provider),
		Status:      domain.StatusCreated,
		CheckoutURL: cfg.HostedURL,
		Message:     "Complete your donation at the hosted checkout page.",
	}, nil
}
