package server

import (
	"context"
	"time"

	"steam_trader/internal/domain/entity"
	"steam_trader/internal/domain/value"
)

// PriceReader exposes the active price table and its freshness.
type PriceReader interface {
	Current() value.PriceTable
	UpdatedAt() time.Time
}

// TradeReader lists decided offers from the ledger.
type TradeReader interface {
	List(ctx context.Context, limit, offset int) ([]entity.TradeRecord, error)
}

// Server is the read-only HTTP surface of the agent: status, the active price
// table and the trade ledger. Decisions are never taken over HTTP.
type Server struct {
	name    string
	version string
	apps    []int64
	prices  PriceReader
	trades  TradeReader
}

func NewServer(
	name string,
	version string,
	apps []int64,
	prices PriceReader,
	trades TradeReader,
) Server {
	return Server{
		name:    name,
		version: version,
		apps:    apps,
		prices:  prices,
		trades:  trades,
	}
}
