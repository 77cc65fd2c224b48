package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
	"donation-gateway/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type intentTestDeps struct {
	svc      *IntentServiceImpl
	registry *mocks.MockProviderRegistry
	methods  *mocks.MockMethodService
	repo     *mocks.MockDonationRepository
	adapter  *mocks.MockProviderAdapter
	ctrl     *gomock.Controller
}

func setupIntentService(t *testing.T) *intentTestDeps {
	ctrl := gomock.NewController(t)
	d := &intentTestDeps{
		registry: mocks.NewMockProviderRegistry(ctrl),
		methods:  mocks.NewMockMethodService(ctrl),
		repo:     mocks.NewMockDonationRepository(ctrl),
		adapter:  mocks.NewMockProviderAdapter(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewIntentService(d.registry, d.methods, d.repo, zerolog.Nop())
	return d
}

func hostedConfig(method domain.DonationMethod, url string) domain.DonationMethodConfig {
	cfg := domain.DonationMethodConfig{Method: method, Enabled: url != ""}
	if url != "" {
		cfg.HostedURL = &url
	}
	return cfg
}

// ==================== CreateIntent Tests ====================

func TestIntentService_CreateIntent_HostedSuccess(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.registry.EXPECT().Get(domain.MethodStripe).Return(d.adapter, true)
	d.methods.EXPECT().ConfigFor(domain.MethodStripe).
		Return(hostedConfig(domain.MethodStripe, "https://buy.stripe.com/abc123"), true).AnyTimes()
	d.methods.EXPECT().Mode().Return("hosted")

	var saved *domain.DonationTransaction
	d.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.DonationTransaction) error {
			saved = txn
			return nil
		})

	result, err := d.svc.CreateIntent(ctx, ports.CreateIntentRequest{
		Provider: domain.MethodStripe,
		Amount:   1500,
		Currency: "usd",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "hosted", result.Mode)
	assert.Equal(t, domain.StatusCreated, result.Status)
	assert.True(t, result.TrackingSaved)
	require.NotNil(t, result.CheckoutURL)
	assert.Equal(t, "https://buy.stripe.com/abc123", *result.CheckoutURL)
	assert.True(t, strings.HasPrefix(result.ProviderRef, "stripe_"))

	require.NotNil(t, saved)
	assert.Equal(t, int64(1500), saved.Amount)
	assert.Equal(t, "USD", saved.Currency)
	assert.Equal(t, result.ProviderRef, saved.ProviderRef)
	assert.Empty(t, saved.WebhookEvents)
}

func TestIntentService_CreateIntent_DefaultsAmountAndCurrency(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.registry.EXPECT().Get(domain.MethodBuyMeACoffee).Return(d.adapter, true)
	d.methods.EXPECT().ConfigFor(domain.MethodBuyMeACoffee).
		Return(hostedConfig(domain.MethodBuyMeACoffee, "https://buymeacoffee.com/someone"), true).AnyTimes()
	d.methods.EXPECT().Mode().Return("hosted")

	var saved *domain.DonationTransaction
	d.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.DonationTransaction) error {
			saved = txn
			return nil
		})

	_, err := d.svc.CreateIntent(ctx, ports.CreateIntentRequest{
		Provider: domain.MethodBuyMeACoffee,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(5), saved.Amount)
	assert.Equal(t, "USD", saved.Currency)
}

func TestIntentService_CreateIntent_UnknownProvider(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	d.registry.EXPECT().Get(domain.DonationMethod("venmo")).Return(nil, false)

	result, err := d.svc.CreateIntent(context.Background(), ports.CreateIntentRequest{
		Provider: domain.DonationMethod("venmo"),
	})
	assert.Nil(t, result)
	require.Error(t, err)
	assertAppError(t, err, "VAL_002")
}

func TestIntentService_CreateIntent_NegativeAmount(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	d.registry.EXPECT().Get(domain.MethodStripe).Return(d.adapter, true)
	d.methods.EXPECT().ConfigFor(domain.MethodStripe).
		Return(hostedConfig(domain.MethodStripe, "https://buy.stripe.com/abc"), true).AnyTimes()

	result, err := d.svc.CreateIntent(context.Background(), ports.CreateIntentRequest{
		Provider: domain.MethodStripe,
		Amount:   -10,
	})
	assert.Nil(t, result)
	require.Error(t, err)
	assertAppError(t, err, "VAL_001")
}

func TestIntentService_CreateIntent_BadCurrency(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	d.registry.EXPECT().Get(domain.MethodStripe).Return(d.adapter, true)
	d.methods.EXPECT().ConfigFor(domain.MethodStripe).
		Return(hostedConfig(domain.MethodStripe, "https://buy.stripe.com/abc"), true).AnyTimes()

	result, err := d.svc.CreateIntent(context.Background(), ports.CreateIntentRequest{
		Provider: domain.MethodStripe,
		Currency: "eu",
	})
	assert.Nil(t, result)
	require.Error(t, err)
	assertAppError(t, err, "VAL_001")
}

func TestIntentService_CreateIntent_HostedMethodWithoutURL(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	d.registry.EXPECT().Get(domain.MethodPayPal).Return(d.adapter, true)
	d.methods.EXPECT().ConfigFor(domain.MethodPayPal).
		Return(hostedConfig(domain.MethodPayPal, ""), true).AnyTimes()
	d.methods.EXPECT().Mode().Return("hosted")

	result, err := d.svc.CreateIntent(context.Background(), ports.CreateIntentRequest{
		Provider: domain.MethodPayPal,
	})
	assert.Nil(t, result)
	require.Error(t, err)
	assertAppError(t, err, "VAL_003")
}

func TestIntentService_CreateIntent_BankUsesAdapterEvenInHostedMode(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.registry.EXPECT().Get(domain.MethodBank).Return(d.adapter, true)
	d.methods.EXPECT().ConfigFor(domain.MethodBank).
		Return(domain.DonationMethodConfig{Method: domain.MethodBank, Enabled: true}, true).AnyTimes()
	d.methods.EXPECT().Mode().Return("hosted")
	d.adapter.EXPECT().CreateIntent(ctx, gomock.Any()).Return(&ports.IntentResult{
		ProviderRef: "bank_abc",
		Status:      domain.StatusPending,
		Message:     "Transfer manually and submit proof.",
	}, nil)
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.CreateIntent(ctx, ports.CreateIntentRequest{
		Provider: domain.MethodBank,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, result.Status)
	assert.Equal(t, "bank_abc", result.ProviderRef)
	assert.Nil(t, result.CheckoutURL)
}

func TestIntentService_CreateIntent_APIModeDelegatesToAdapter(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.registry.EXPECT().Get(domain.MethodStripe).Return(d.adapter, true)
	d.methods.EXPECT().ConfigFor(domain.MethodStripe).
		Return(hostedConfig(domain.MethodStripe, "https://buy.stripe.com/abc"), true).AnyTimes()
	d.methods.EXPECT().Mode().Return("api")

	var gotParams ports.IntentParams
	d.adapter.EXPECT().CreateIntent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p ports.IntentParams) (*ports.IntentResult, error) {
			gotParams = p
			return &ports.IntentResult{
				ProviderRef: "stripe_native_ref",
				Status:      domain.StatusCreated,
				Message:     "Stripe API integration is not configured yet; the intent was recorded locally.",
			}, nil
		})
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.CreateIntent(ctx, ports.CreateIntentRequest{
		Provider: domain.MethodStripe,
		Amount:   2000,
		Currency: "eur",
	})
	require.NoError(t, err)
	assert.Equal(t, "api", result.Mode)
	assert.Equal(t, "stripe_native_ref", result.ProviderRef)
	assert.Equal(t, int64(2000), gotParams.Amount)
	assert.Equal(t, "EUR", gotParams.Currency)
}

func TestIntentService_CreateIntent_AdapterFailure(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.registry.EXPECT().Get(domain.MethodBank).Return(d.adapter, true)
	d.methods.EXPECT().ConfigFor(domain.MethodBank).
		Return(domain.DonationMethodConfig{Method: domain.MethodBank, Enabled: true}, true).AnyTimes()
	d.methods.EXPECT().Mode().Return("hosted")
	d.adapter.EXPECT().CreateIntent(ctx, gomock.Any()).Return(nil, errors.New("provider down"))

	result, err := d.svc.CreateIntent(ctx, ports.CreateIntentRequest{
		Provider: domain.MethodBank,
	})
	assert.Nil(t, result)
	require.Error(t, err)
	assertAppError(t, err, "SYS_001")
}

func TestIntentService_CreateIntent_TrackingFailureDoesNotBlock(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.registry.EXPECT().Get(domain.MethodStripe).Return(d.adapter, true)
	d.methods.EXPECT().ConfigFor(domain.MethodStripe).
		Return(hostedConfig(domain.MethodStripe, "https://buy.stripe.com/abc"), true).AnyTimes()
	d.methods.EXPECT().Mode().Return("hosted")
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(ports.ErrStoreUnavailable)

	result, err := d.svc.CreateIntent(ctx, ports.CreateIntentRequest{
		Provider: domain.MethodStripe,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.TrackingSaved)
	require.NotNil(t, result.CheckoutURL)
}

func TestIntentService_CreateIntent_NoStoreConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockProviderRegistry(ctrl)
	methods := mocks.NewMockMethodService(ctrl)
	adapter := mocks.NewMockProviderAdapter(ctrl)
	svc := NewIntentService(registry, methods, nil, zerolog.Nop())

	registry.EXPECT().Get(domain.MethodStripe).Return(adapter, true)
	methods.EXPECT().ConfigFor(domain.MethodStripe).
		Return(hostedConfig(domain.MethodStripe, "https://buy.stripe.com/abc"), true).AnyTimes()
	methods.EXPECT().Mode().Return("hosted")

	result, err := svc.CreateIntent(context.Background(), ports.CreateIntentRequest{
		Provider: domain.MethodStripe,
	})
	require.NoError(t, err)
	assert.False(t, result.TrackingSaved)
}
