package trade

import (
	"git.appkode.ru/pub/go/failure"

	"steam_trader/pkg/errcodes"
)

// Counterparty-facing texts, posted on the partner profile when the reply
// toggles allow it.
const MessageDonation = "Thank you! Your donation is greatly appreciated. +rep"

//nolint:gochecknoglobals
var declineMessages = map[failure.ErrorCode]string{
	errcodes.TradeValueTooLow: "Sorry! Your trade was rejected, because it's value is too low.",
	errcodes.TradeNoOverpay:   "Sorry! Your trade was rejected, because you did not overpay enough.",
	errcodes.TradeItemMissing: "Sorry! Your trade was rejected, because you did not add any items on your side.",
	errcodes.TradeEscrow:      "Sorry! Your trade was rejected, because you do not have two-factor authentication enabled. We do not accept trades that go into escrow.",
	errcodes.TradeInvalidApp:  "Sorry! Your trade was rejected, because we do not accept items from one or more appID's you selected.",
	errcodes.TradeUnknown:     "Sorry! Your trade was rejected, because something went wrong with verifying the trade. Please try again later or contact the owner!",
}

func DeclineMessage(reason failure.ErrorCode) string {
	return declineMessages[reason]
}
