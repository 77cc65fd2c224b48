package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"donation-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Providers deliver webhooks at-least-once and retry aggressively, so
// the same event can arrive on parallel connections. Exactly one
// delivery may mutate the transaction.

func TestConcurrency_DuplicateWebhookDeliveries(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	ctx := context.Background()

	_, intent := app.postJSON(t, "/api/v1/payments/create-intent", map[string]interface{}{
		"provider": "stripe",
		"amount":   5000,
	})
	ref := intent["provider_ref"].(string)
	require.NotEmpty(t, ref)

	payload, _ := json.Marshal(map[string]interface{}{
		"id":           "evt_concurrent_1",
		"type":         "payment_intent.succeeded",
		"provider_ref": ref,
	})

	const deliveries = 20
	var (
		wg        sync.WaitGroup
		processed atomic.Int64
		duplicate atomic.Int64
	)

	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, ack := app.postWebhook(t, "stripe", payload, stripeTestSecret)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			if ack["processed"] == true {
				processed.Add(1)
			} else if ack["duplicate"] == true {
				duplicate.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), processed.Load(), "exactly one delivery may apply the event")
	assert.Equal(t, int64(deliveries-1), duplicate.Load())
	assert.Equal(t, 1, app.eventRepo.count())

	txn, err := app.donationRepo.GetByProviderRef(ctx, domain.MethodStripe, ref)
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, domain.StatusPaid, txn.Status)
	assert.Equal(t, []string{"evt_concurrent_1"}, txn.WebhookEvents)
}

func TestConcurrency_LedgerInsertIfAbsent(t *testing.T) {
	repo := newInMemoryWebhookEventRepo()
	ctx := context.Background()

	const workers = 50
	var (
		wg       sync.WaitGroup
		inserted atomic.Int64
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.InsertIfAbsent(ctx, domain.MethodPayPal, "evt_race")
			assert.NoError(t, err)
			if ok {
				inserted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), inserted.Load())
	assert.Equal(t, 1, repo.count())
}

func TestConcurrency_DistinctEventsAllApply(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	ctx := context.Background()

	_, intent := app.postJSON(t, "/api/v1/payments/create-intent", map[string]interface{}{
		"provider": "stripe",
	})
	ref := intent["provider_ref"].(string)

	events := []string{"evt_a", "evt_b", "evt_c", "evt_d", "evt_e"}
	var wg sync.WaitGroup
	for _, id := range events {
		wg.Add(1)
		go func(eventID string) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]interface{}{
				"id":           eventID,
				"type":         "payment_intent.succeeded",
				"provider_ref": ref,
			})
			resp, _ := app.postWebhook(t, "stripe", payload, stripeTestSecret)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}(id)
	}
	wg.Wait()

	assert.Equal(t, len(events), app.eventRepo.count())

	txn, err := app.donationRepo.GetByProviderRef(ctx, domain.MethodStripe, ref)
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Len(t, txn.WebhookEvents, len(events))
}
