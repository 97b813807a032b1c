package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"steam_trader/internal/domain/entity"
	"steam_trader/internal/domain/value"
	"steam_trader/internal/server"
	"steam_trader/pkg/middlewarex"
	"steam_trader/pkg/rest"
	"steam_trader/pkg/tests"
)

type fakePriceReader struct {
	table     value.PriceTable
	updatedAt time.Time
}

func (f fakePriceReader) Current() value.PriceTable {
	return f.table
}

func (f fakePriceReader) UpdatedAt() time.Time {
	return f.updatedAt
}

type fakeTradeReader struct {
	records []entity.TradeRecord
}

func (f fakeTradeReader) List(_ context.Context, limit, offset int) ([]entity.TradeRecord, error) {
	if offset >= len(f.records) {
		return nil, nil
	}

	end := offset + limit
	if end > len(f.records) {
		end = len(f.records)
	}

	return f.records[offset:end], nil
}

func newTestAPI(t *testing.T, prices fakePriceReader, trades fakeTradeReader) tests.APIClient {
	t.Helper()

	router := chi.NewRouter()
	router.Use(
		middlewarex.Recovery,
		middlewarex.TraceID,
		middlewarex.Logger,
	)

	srv := server.NewServer("steam-trader", "v0.0.1-test", []int64{730, 440}, prices, trades)
	srv.RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	t.Cleanup(httpServer.Close)

	return tests.NewAPIClient(httpServer.URL, httpServer.Client())
}

func TestGetV1Status(t *testing.T) {
	rq := require.New(t)

	updatedAt := time.Now().Truncate(time.Second)

	api := newTestAPI(t, fakePriceReader{
		table: value.PriceTable{
			730: {"AWP | Dragon Lore": 100, "AK-47 | Redline": 10},
			440: {"Mann Co. Supply Crate Key": 2},
		},
		updatedAt: updatedAt,
	}, fakeTradeReader{})

	var status rest.Status

	resp, err := api.Get(context.Background(), "/v1/status", nil, &status, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Equal("steam-trader", status.Name)
	rq.Equal("v0.0.1-test", status.Version)
	rq.Equal([]int64{730, 440}, status.Apps)
	rq.Equal(3, status.PricedItems)
	rq.True(updatedAt.Equal(status.PricesUpdatedAt))
}

func TestGetV1Prices(t *testing.T) {
	rq := require.New(t)

	api := newTestAPI(t, fakePriceReader{
		table: value.PriceTable{
			730: {"AWP | Dragon Lore": 100, "AK-47 | Redline": 10},
		},
	}, fakeTradeReader{})

	t.Run("app summary", func(*testing.T) {
		var prices rest.AppPrices

		resp, err := api.Get(context.Background(), "/v1/prices/730", nil, &prices, nil)
		rq.NoError(err)
		rq.Equal(http.StatusOK, resp.StatusCode)

		rq.Equal(int64(730), prices.AppID)
		rq.Equal(2, prices.Items)
		rq.Nil(prices.Item)
	})

	t.Run("single item", func(*testing.T) {
		var prices rest.AppPrices

		resp, err := api.Get(context.Background(), "/v1/prices/730?item=AWP+%7C+Dragon+Lore", nil, &prices, nil)
		rq.NoError(err)
		rq.Equal(http.StatusOK, resp.StatusCode)

		rq.NotNil(prices.Item)
		rq.Equal("AWP | Dragon Lore", prices.Item.Name)
		rq.InDelta(100, prices.Item.Price, 0.001)
	})

	t.Run("unknown item", func(*testing.T) {
		var errResp rest.Error

		resp, err := api.Get(context.Background(), "/v1/prices/730?item=Unknown", nil, nil, &errResp)
		rq.NoError(err)
		rq.Equal(http.StatusNotFound, resp.StatusCode)
	})

	t.Run("app not traded", func(*testing.T) {
		var errResp rest.Error

		resp, err := api.Get(context.Background(), "/v1/prices/570", nil, nil, &errResp)
		rq.NoError(err)
		rq.Equal(http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed app id", func(*testing.T) {
		var errResp rest.Error

		resp, err := api.Get(context.Background(), "/v1/prices/counterstrike", nil, nil, &errResp)
		rq.NoError(err)
		rq.Equal(http.StatusBadRequest, resp.StatusCode)
		rq.Equal(rest.ErrorCode("InvalidAppID"), errResp.Code)
	})
}

func TestGetV1Trades(t *testing.T) {
	rq := require.New(t)

	decidedAt := time.Now().Truncate(time.Second)

	api := newTestAPI(t, fakePriceReader{}, fakeTradeReader{records: []entity.TradeRecord{
		{
			OfferID:       "100001",
			PartnerID:     "76561198999999999",
			Status:        entity.TradeStatusConfirmed,
			ReceivedValue: 114,
			GivenValue:    10,
			DecidedAt:     decidedAt,
		},
		{
			OfferID:   "100002",
			PartnerID: "76561198999999998",
			Reason:    "TradeNoOverpay",
			Status:    entity.TradeStatusDeclined,
			DecidedAt: decidedAt,
		},
	}})

	t.Run("listing", func(*testing.T) {
		var trades []rest.Trade

		resp, err := api.Get(context.Background(), "/v1/trades", nil, &trades, nil)
		rq.NoError(err)
		rq.Equal(http.StatusOK, resp.StatusCode)

		rq.Len(trades, 2)
		rq.Equal("accept", trades[0].Action)
		rq.Equal("confirmed", trades[0].Status)
		rq.Equal("decline", trades[1].Action)
		rq.Equal("TradeNoOverpay", trades[1].Reason)
	})

	t.Run("paging", func(*testing.T) {
		var trades []rest.Trade

		resp, err := api.Get(context.Background(), "/v1/trades?limit=1&offset=1", nil, &trades, nil)
		rq.NoError(err)
		rq.Equal(http.StatusOK, resp.StatusCode)

		rq.Len(trades, 1)
		rq.Equal("100002", trades[0].OfferID)
	})

	t.Run("invalid paging", func(*testing.T) {
		var errResp rest.Error

		resp, err := api.Get(context.Background(), "/v1/trades?limit=-1", nil, nil, &errResp)
		rq.NoError(err)
		rq.Equal(http.StatusBadRequest, resp.StatusCode)
		rq.Equal(rest.ErrorCode("InvalidPaging"), errResp.Code)
	})
}
