package value

import "git.appkode.ru/pub/go/failure"

type DecisionAction string

const (
	ActionAccept  DecisionAction = "accept"
	ActionDecline DecisionAction = "decline"
)

// Decision is the evaluator verdict for a single offer. Derived purely from
// the offer, the price table and the policy; carries no hidden state.
type Decision struct {
	Action DecisionAction
	// Reason is set on declines only.
	Reason failure.ErrorCode
	// Message is an optional counterparty-facing text.
	Message string
	// IsError routes Message through the failure-reply gate instead of the
	// success-reply gate.
	IsError bool
}

func (d Decision) Accepted() bool {
	return d.Action == ActionAccept
}
