package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"steam_trader/internal/domain/value"
	"steam_trader/pkg/logx"
)

// Refresh cycles are whole fetches against an external feed; anything below
// a minute would hammer it for no benefit.
const minRefreshInterval = time.Minute

// PriceFeed fetches the price page for one app.
type PriceFeed interface {
	Fetch(ctx context.Context, appID int64) (map[string]float64, error)
}

type priceSnapshot struct {
	table     value.PriceTable
	updatedAt time.Time
}

// PriceTableHolder publishes the active price table. Single writer (the
// refresher), many readers; readers always see either the old or the new
// table, never a partially built one.
type PriceTableHolder struct {
	current atomic.Pointer[priceSnapshot]
}

func NewPriceTableHolder() *PriceTableHolder {
	h := &PriceTableHolder{}
	h.current.Store(&priceSnapshot{table: value.PriceTable{}})

	return h
}

func (h *PriceTableHolder) Current() value.PriceTable {
	return h.current.Load().table
}

func (h *PriceTableHolder) UpdatedAt() time.Time {
	return h.current.Load().updatedAt
}

func (h *PriceTableHolder) swap(table value.PriceTable) {
	h.current.Store(&priceSnapshot{table: table, updatedAt: time.Now()})
}

// PriceRefresher rebuilds the price table on a fixed interval. A cycle is
// all-or-nothing: if any app page fails, the cycle aborts and the previous
// table stays authoritative until the next tick.
type PriceRefresher struct {
	feed     PriceFeed
	holder   *PriceTableHolder
	apps     []int64
	interval time.Duration
}

func NewPriceRefresher(
	feed PriceFeed,
	holder *PriceTableHolder,
	apps []int64,
	interval time.Duration,
) *PriceRefresher {
	if interval < minRefreshInterval {
		interval = minRefreshInterval
	}

	return &PriceRefresher{
		feed:     feed,
		holder:   holder,
		apps:     apps,
		interval: interval,
	}
}

func (w *PriceRefresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.RefreshOnce(ctx); err != nil {
				logger(ctx).Error("price refresh cycle failed", logx.Error(err))
			}
		}
	}
}

// RefreshOnce fetches one page per configured app and swaps in the new table
// only when every page succeeded.
func (w *PriceRefresher) RefreshOnce(ctx context.Context) error {
	next := make(value.PriceTable, len(w.apps))

	for _, appID := range w.apps {
		prices, err := w.feed.Fetch(ctx, appID)
		if err != nil {
			return fmt.Errorf("fetch prices for app %d: %w", appID, err)
		}

		next[appID] = prices
	}

	w.holder.swap(next)

	logger(ctx).Info("price table refreshed", "apps", len(w.apps), "items", next.Items())

	return nil
}
