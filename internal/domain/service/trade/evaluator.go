package trade

import (
	"git.appkode.ru/pub/go/failure"

	"steam_trader/internal/domain/entity"
	"steam_trader/internal/domain/value"
	"steam_trader/pkg/errcodes"
)

// Evaluate applies the policy rule chain to a single offer and returns the
// verdict. Pure and total: no I/O, no hidden state, same inputs always give
// the same decision.
//
// The rules run in a fixed order and the first match wins. The order is part
// of the policy contract: the escrow check runs before the admin bypass, so
// an admin whose offer would be held in escrow is still declined; the
// donation check runs before any valuation, because an empty give side values
// to zero and would otherwise always trip the overpay rule.
//
// detailsErr is the error (if any) from fetching partner/escrow details for
// the offer; a failed lookup declines the offer without further checks.
func Evaluate(offer entity.Offer, detailsErr error, prices value.PriceTable, policy value.Policy) value.Decision {
	if detailsErr != nil {
		return decline(errcodes.TradeUnknown)
	}

	if offer.EscrowDays != 0 {
		return decline(errcodes.TradeEscrow)
	}

	if policy.IsAdmin(offer.PartnerID) {
		return value.Decision{Action: value.ActionAccept}
	}

	if len(offer.ItemsToReceive) == 0 {
		return decline(errcodes.TradeItemMissing)
	}

	if len(offer.ItemsToGive) == 0 {
		// Donation: we receive items and give none.
		return value.Decision{Action: value.ActionAccept, Message: MessageDonation}
	}

	if hasDisallowedItems(offer, policy) {
		return decline(errcodes.TradeInvalidApp)
	}

	received := valueOf(offer.ItemsToReceive, prices, policy.UserMultiplier)

	if policy.MinTradeValueEnabled() && received < policy.MinTradeValue {
		return decline(errcodes.TradeValueTooLow)
	}

	if received < valueOf(offer.ItemsToGive, prices, policy.BotMultiplier) {
		return decline(errcodes.TradeNoOverpay)
	}

	return value.Decision{Action: value.ActionAccept, Message: policy.SuccessMessage}
}

// valueOf sums quantity × unit price × multiplier over the items. Unpriced
// items contribute 0.
func valueOf(items []entity.Item, prices value.PriceTable, multiplier float64) float64 {
	var total float64

	for _, item := range items {
		total += float64(item.Amount) * prices.Lookup(item.AppID, item.MarketHashName) * multiplier
	}

	return total
}

// hasDisallowedItems reports whether any item on either side belongs to an
// app outside the allow-list. Multiple hits collapse into one decline.
func hasDisallowedItems(offer entity.Offer, policy value.Policy) bool {
	for _, item := range offer.ItemsToReceive {
		if !policy.AllowsApp(item.AppID) {
			return true
		}
	}

	for _, item := range offer.ItemsToGive {
		if !policy.AllowsApp(item.AppID) {
			return true
		}
	}

	return false
}

func decline(reason failure.ErrorCode) value.Decision {
	return value.Decision{
		Action:  value.ActionDecline,
		Reason:  reason,
		Message: DeclineMessage(reason),
		IsError: true,
	}
}
