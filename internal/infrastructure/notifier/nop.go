package notifier

import "context"

// Nop is the alerter used when no bot token is configured. Alerts still land
// in the logs through the caller.
type Nop struct{}

func NewNop() Nop {
	return Nop{}
}

func (Nop) Alert(_ context.Context, _ string) error {
	return nil
}
