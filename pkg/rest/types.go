// This file would normally be generated from an openapi spec as types.gen.go.
package rest

import "time"

// Status is a snapshot of the running agent.
type Status struct {
	Name            string    `json:"name"`
	Version         string    `json:"version"`
	Apps            []int64   `json:"apps"`
	PricedItems     int       `json:"pricedItems"`
	PricesUpdatedAt time.Time `json:"pricesUpdatedAt"`
}

// AppPrices describes the price table slice for a single app.
type AppPrices struct {
	AppID int64      `json:"appId"`
	Items int        `json:"items"`
	Item  *ItemPrice `json:"item,omitempty"`
}

type ItemPrice struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Trade is a decided offer from the ledger.
type Trade struct {
	OfferID       string    `json:"offerId"`
	PartnerID     string    `json:"partnerId"`
	Action        string    `json:"action"`
	Reason        string    `json:"reason,omitempty"`
	Status        string    `json:"status"`
	ReceivedValue float64   `json:"receivedValue"`
	GivenValue    float64   `json:"givenValue"`
	DecidedAt     time.Time `json:"decidedAt"`
}

// Error Error model
type Error struct {
	// Code Error code
	Code ErrorCode `json:"code"`

	// Message Human-readable message
	Message string `json:"message"`
}

// ErrorCode Error code
type ErrorCode string
