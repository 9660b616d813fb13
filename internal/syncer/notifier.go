package syncer

import (
	"context"
	"time"

	"agency_admin/internal/logger"
	"agency_admin/internal/models"
)

// ItemSnapshot is the wire shape of one catalog entry handed to the consumer
// process. The schema is explicit so the consumer does not depend on this
// service's internal types.
type ItemSnapshot struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	ImageFilename string    `json:"image_filename"`
	CreatedAt     time.Time `json:"created_at"`
}

// Notifier propagates the full post-mutation catalog to the external
// consumer. Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, snapshot []ItemSnapshot) error
}

// Snapshot converts catalog rows into their wire shape.
func Snapshot(items []models.PortfolioItem) []ItemSnapshot {
	out := make([]ItemSnapshot, 0, len(items))
	for _, item := range items {
		out = append(out, ItemSnapshot{
			ID:            item.ID,
			Title:         item.Title,
			Description:   item.Description,
			Category:      item.Category,
			ImageFilename: item.ImageFilename,
			CreatedAt:     item.CreatedAt,
		})
	}
	return out
}

// Dispatch runs Notify in the background with a bounded timeout. Notifier
// failures are logged and absorbed: a sync problem must never fail or delay
// the catalog mutation that triggered it.
func Dispatch(n Notifier, snapshot []ItemSnapshot, timeout time.Duration) {
	if n == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := n.Notify(ctx, snapshot); err != nil {
			logger.Error("portfolio sync failed", "error", err, "items", len(snapshot))
			return
		}
		logger.Debug("portfolio sync completed", "items", len(snapshot))
	}()
}

// NopNotifier discards snapshots; used when sync is disabled.
type NopNotifier struct{}

func (NopNotifier) Notify(ctx context.Context, snapshot []ItemSnapshot) error {
	return nil
}
