package config

import "time"

type PriceFeed struct {
	APIKey         string        `env:"PRICE_FEED_API_KEY,notEmpty" json:"-"`
	BaseURL        string        `env:"PRICE_FEED_BASE_URL" envDefault:"https://api.steamapis.com"`
	UpdateInterval time.Duration `env:"PRICE_FEED_UPDATE_INTERVAL" envDefault:"3h"`
}
