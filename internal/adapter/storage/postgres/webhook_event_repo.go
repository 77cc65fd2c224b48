package postgres

import (
	"context"
	"time"

	"donation-gateway/internal/core/domain"
)

// WebhookEventRepo implements ports.WebhookEventRepository on top of the
// webhook_events table. The table's primary key (provider, event_id) is
// what makes concurrent deliveries of the same event collapse to one.
type WebhookEventRepo struct {
	pool Pool
}

// NewWebhookEventRepo creates a new WebhookEventRepo.
func NewWebhookEventRepo(pool Pool) *WebhookEventRepo {
	return &WebhookEventRepo{pool: pool}
}

// InsertIfAbsent records (provider, event_id), returning true when this
// call inserted the row and false when the event was already recorded.
func (r *WebhookEventRepo) InsertIfAbsent(ctx context.Context, provider domain.DonationMethod, eventID string) (bool, error) {
	query := `INSERT INTO webhook_events (provider, event_id, processed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (provider, event_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, provider, eventID, time.Now().UTC())
	if err != nil {
		return false, storeErr("insert webhook event", err)
	}
	return tag.RowsAffected() > 0, nil
}
