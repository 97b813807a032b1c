package worker

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"steam_trader/internal/domain/entity"
	"steam_trader/pkg/logx"
)

const (
	processedTTL        = 24 * time.Hour
	defaultPollInterval = 30 * time.Second
)

// OfferSource lists received offers updated since the cursor.
type OfferSource interface {
	RecentOffers(ctx context.Context, since time.Time) ([]entity.Offer, error)
}

// OfferHandler drives one offer to a terminal outcome.
type OfferHandler interface {
	HandleOffer(ctx context.Context, offer entity.Offer) error
}

// CursorStore persists the poll cursor between restarts so already-decided
// offers are not reprocessed.
type CursorStore interface {
	Load(ctx context.Context) (time.Time, error)
	Save(ctx context.Context, cursor time.Time) error
}

// OfferPoller polls the marketplace for new received offers and hands them to
// the handler one at a time. Handling is sequential, so executor side effects
// for a given offer are never raced.
type OfferPoller struct {
	source   OfferSource
	handler  OfferHandler
	cursor   CursorStore
	interval time.Duration

	since     time.Time
	processed *cache.Cache
}

func NewOfferPoller(
	source OfferSource,
	handler OfferHandler,
	cursor CursorStore,
	interval time.Duration,
) *OfferPoller {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &OfferPoller{
		source:    source,
		handler:   handler,
		cursor:    cursor,
		interval:  interval,
		processed: cache.New(processedTTL, time.Hour),
	}
}

func (w *OfferPoller) Run(ctx context.Context) error {
	since, err := w.cursor.Load(ctx)
	if err != nil {
		logger(ctx).Warn("poll cursor load failed, starting from scratch", logx.Error(err))
	}

	w.since = since

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger(ctx).Info("offer poller started", "interval", w.interval.String())

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("offer poller stopped")
			return ctx.Err()
		case <-ticker.C:
			w.pollOnce(ctx)
		}
	}
}

func (w *OfferPoller) pollOnce(ctx context.Context) {
	offers, err := w.source.RecentOffers(ctx, w.since)
	if err != nil {
		logger(ctx).Error("offer poll failed", logx.Error(err))
		return
	}

	for _, offer := range offers {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, seen := w.processed.Get(offer.ID); seen {
			continue
		}

		if err := w.handler.HandleOffer(ctx, offer); err != nil {
			// Left out of the processed cache so the next cycle retries it.
			logger(ctx).Error("offer handling failed", logx.FieldOfferID, offer.ID, logx.Error(err))
			continue
		}

		w.processed.Set(offer.ID, true, cache.DefaultExpiration)

		if offer.UpdatedAt.After(w.since) {
			w.since = offer.UpdatedAt
		}
	}

	if err := w.cursor.Save(ctx, w.since); err != nil {
		logger(ctx).Error("poll cursor save failed", logx.Error(err))
	}
}
