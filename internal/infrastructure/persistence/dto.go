package persistence

import (
	"time"

	"steam_trader/internal/domain/entity"
)

// tradeSchema maps a row of the trades table.
type tradeSchema struct {
	OfferID       string    `db:"offer_id"`
	PartnerID     string    `db:"partner_id"`
	Reason        string    `db:"reason"`
	Status        string    `db:"status"`
	ReceivedValue float64   `db:"received_value"`
	GivenValue    float64   `db:"given_value"`
	DecidedAt     time.Time `db:"decided_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (s *tradeSchema) toDomain() entity.TradeRecord {
	return entity.TradeRecord{
		OfferID:       s.OfferID,
		PartnerID:     s.PartnerID,
		Reason:        s.Reason,
		Status:        entity.TradeStatus(s.Status),
		ReceivedValue: s.ReceivedValue,
		GivenValue:    s.GivenValue,
		DecidedAt:     s.DecidedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
