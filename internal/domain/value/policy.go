package value

import "github.com/samber/lo"

// Policy is the static trading policy. Loaded once at startup and read-only
// for the process lifetime.
type Policy struct {
	Apps           []int64
	AdminIDs       []string
	MinTradeValue  float64 // 0 disables the minimum-value check
	UserMultiplier float64
	BotMultiplier  float64
	SuccessMessage string
	ReplyOnSuccess bool
	ReplyOnFailure bool
}

func (p Policy) AllowsApp(appID int64) bool {
	return lo.Contains(p.Apps, appID)
}

func (p Policy) IsAdmin(partnerID string) bool {
	return lo.Contains(p.AdminIDs, partnerID)
}

func (p Policy) MinTradeValueEnabled() bool {
	return p.MinTradeValue > 0
}
