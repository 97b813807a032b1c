package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"steam_trader/internal/worker"
)

type fakePriceFeed struct {
	pages map[int64]map[string]float64
	errs  map[int64]error
}

func (f fakePriceFeed) Fetch(_ context.Context, appID int64) (map[string]float64, error) {
	if err := f.errs[appID]; err != nil {
		return nil, err
	}

	return f.pages[appID], nil
}

func TestPriceTableHolderStartsEmpty(t *testing.T) {
	rq := require.New(t)

	holder := worker.NewPriceTableHolder()

	rq.Equal(0, holder.Current().Items())
	rq.True(holder.UpdatedAt().IsZero())
}

func TestRefreshOnceSwapsTable(t *testing.T) {
	rq := require.New(t)

	feed := fakePriceFeed{
		pages: map[int64]map[string]float64{
			730: {"AWP | Dragon Lore": 100, "AK-47 | Redline": 10},
			440: {"Mann Co. Supply Crate Key": 2},
		},
	}

	holder := worker.NewPriceTableHolder()
	refresher := worker.NewPriceRefresher(feed, holder, []int64{730, 440}, time.Hour)

	rq.NoError(refresher.RefreshOnce(context.Background()))

	table := holder.Current()
	rq.Equal(3, table.Items())
	rq.InDelta(100, table.Lookup(730, "AWP | Dragon Lore"), 0.001)
	rq.InDelta(2, table.Lookup(440, "Mann Co. Supply Crate Key"), 0.001)
	rq.False(holder.UpdatedAt().IsZero())
}

func TestRefreshOnceKeepsOldTableOnPartialFailure(t *testing.T) {
	rq := require.New(t)

	holder := worker.NewPriceTableHolder()

	good := fakePriceFeed{
		pages: map[int64]map[string]float64{
			730: {"AWP | Dragon Lore": 100},
			440: {"Mann Co. Supply Crate Key": 2},
		},
	}

	rq.NoError(worker.NewPriceRefresher(good, holder, []int64{730, 440}, time.Hour).
		RefreshOnce(context.Background()))

	updatedAt := holder.UpdatedAt()

	// Second cycle: one app page fails, the whole cycle aborts.
	bad := fakePriceFeed{
		pages: map[int64]map[string]float64{
			730: {"AWP | Dragon Lore": 120},
		},
		errs: map[int64]error{440: errors.New("feed unavailable")},
	}

	err := worker.NewPriceRefresher(bad, holder, []int64{730, 440}, time.Hour).
		RefreshOnce(context.Background())
	rq.Error(err)

	table := holder.Current()
	rq.InDelta(100, table.Lookup(730, "AWP | Dragon Lore"), 0.001)
	rq.Equal(updatedAt, holder.UpdatedAt())
}
