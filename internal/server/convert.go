package server

import (
	"steam_trader/internal/domain/entity"
	"steam_trader/pkg/rest"
)

func newRESTTrade(record entity.TradeRecord) rest.Trade {
	return rest.Trade{
		OfferID:       record.OfferID,
		PartnerID:     record.PartnerID,
		Action:        actionOf(record.Status),
		Reason:        record.Reason,
		Status:        string(record.Status),
		ReceivedValue: record.ReceivedValue,
		GivenValue:    record.GivenValue,
		DecidedAt:     record.DecidedAt,
	}
}

func actionOf(status entity.TradeStatus) string {
	if status == entity.TradeStatusDeclined {
		return "decline"
	}

	return "accept"
}
