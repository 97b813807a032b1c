package config

import "steam_trader/internal/domain/value"

// Trade is the decision policy. Multipliers skew the valuation in the bot's
// favor: received items are priced slightly below market, given items at
// market, so an exactly even offer does not pass.
type Trade struct {
	Apps           []int64  `env:"TRADE_APPS,notEmpty" envSeparator:"," validate:"min=1"`
	AdminIDs       []string `env:"TRADE_ADMIN_IDS" envSeparator:","`
	MinTradeValue  float64  `env:"TRADE_MIN_VALUE" envDefault:"0"`
	UserMultiplier float64  `env:"TRADE_USER_MULTIPLIER" envDefault:"0.95" validate:"gt=0"`
	BotMultiplier  float64  `env:"TRADE_BOT_MULTIPLIER" envDefault:"1" validate:"gt=0"`
	SuccessMessage string   `env:"TRADE_SUCCESS_MESSAGE" envDefault:"Thank you for trading with me! +rep"`
	ReplyOnSuccess bool     `env:"TRADE_REPLY_ON_SUCCESS" envDefault:"true"`
	ReplyOnFailure bool     `env:"TRADE_REPLY_ON_FAILURE" envDefault:"true"`
}

func (t Trade) Policy() value.Policy {
	return value.Policy{
		Apps:           t.Apps,
		AdminIDs:       t.AdminIDs,
		MinTradeValue:  t.MinTradeValue,
		UserMultiplier: t.UserMultiplier,
		BotMultiplier:  t.BotMultiplier,
		SuccessMessage: t.SuccessMessage,
		ReplyOnSuccess: t.ReplyOnSuccess,
		ReplyOnFailure: t.ReplyOnFailure,
	}
}
