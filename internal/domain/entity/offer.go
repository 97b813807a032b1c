package entity

import "time"

// Item is a single tradable item position on an offer. Immutable once
// observed.
type Item struct {
	AppID          int64  `json:"appid"`
	MarketHashName string `json:"market_hash_name"`
	Amount         int    `json:"amount"`
}

// Offer is a proposed exchange between the agent and a counterparty.
// ItemsToReceive are what the counterparty gives us, ItemsToGive are what
// leaves our inventory. Either side may be empty.
type Offer struct {
	ID             string
	PartnerID      string
	ItemsToReceive []Item
	ItemsToGive    []Item
	EscrowDays     int
	UpdatedAt      time.Time
}
