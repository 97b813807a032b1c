package entity

import "time"

type TradeStatus string

const (
	// Terminal decline.
	TradeStatusDeclined TradeStatus = "declined"
	// Accepted, mobile confirmation still pending.
	TradeStatusAccepted TradeStatus = "accepted"
	// Accepted and confirmed.
	TradeStatusConfirmed TradeStatus = "confirmed"
	// Accepted but confirmation retries were exhausted. The transfer itself
	// already happened, this is an operational-alert state.
	TradeStatusAbandoned TradeStatus = "abandoned"
	// The accept call itself failed; accepts are not retried.
	TradeStatusAcceptFailed TradeStatus = "accept_failed"
)

// TradeRecord is the persisted outcome of a decided offer. One record per
// offer, written when the decision is executed; the status may advance as the
// confirmation settles, but a decided offer is never re-decided.
type TradeRecord struct {
	OfferID       string      `db:"offer_id"`
	PartnerID     string      `db:"partner_id"`
	Reason        string      `db:"reason"`
	Status        TradeStatus `db:"status"`
	ReceivedValue float64     `db:"received_value"`
	GivenValue    float64     `db:"given_value"`
	DecidedAt     time.Time   `db:"decided_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}
