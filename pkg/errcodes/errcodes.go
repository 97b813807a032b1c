package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Trade decline reasons. These are business outcomes relayed to the
	// counterparty, not faults.
	TradeUnknown     failure.ErrorCode = "TradeUnknown"     // Partner/escrow details could not be verified
	TradeEscrow      failure.ErrorCode = "TradeEscrow"      // Trade would be held in escrow
	TradeItemMissing failure.ErrorCode = "TradeItemMissing" // Counterparty offers nothing
	TradeInvalidApp  failure.ErrorCode = "TradeInvalidApp"  // Item from a disallowed app
	TradeValueTooLow failure.ErrorCode = "TradeValueTooLow" // Received value below the configured minimum
	TradeNoOverpay   failure.ErrorCode = "TradeNoOverpay"   // Received value does not cover given value

	// Offer processing.
	OfferNotFound      failure.ErrorCode = "OfferNotFound"
	OfferAlreadyClosed failure.ErrorCode = "OfferAlreadyClosed"
	ConfirmationFailed failure.ErrorCode = "ConfirmationFailed"

	// Price feed.
	PriceFeedUnauthorized    failure.ErrorCode = "PriceFeedUnauthorized"    // Invalid API key or no access to the endpoint
	PriceFeedPaymentRequired failure.ErrorCode = "PriceFeedPaymentRequired" // Out of funds on the feed account
	PriceFeedUnavailable     failure.ErrorCode = "PriceFeedUnavailable"

	InvalidAppID   failure.ErrorCode = "InvalidAppID"
	InvalidOfferID failure.ErrorCode = "InvalidOfferID"
	InvalidPaging  failure.ErrorCode = "InvalidPaging"
)
