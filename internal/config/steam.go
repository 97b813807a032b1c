package config

import "time"

// Steam holds the session material for the trade account. The bot does not
// log in by itself; the session cookies are issued elsewhere and handed in.
type Steam struct {
	APIKey           string        `env:"STEAM_API_KEY,notEmpty" json:"-"`
	SteamID          string        `env:"STEAM_ID,notEmpty"`
	SessionID        string        `env:"STEAM_SESSION_ID,notEmpty" json:"-"`
	LoginSecure      string        `env:"STEAM_LOGIN_SECURE,notEmpty" json:"-"`
	IdentitySecret   string        `env:"STEAM_IDENTITY_SECRET,notEmpty" json:"-"`
	DeviceID         string        `env:"STEAM_DEVICE_ID,notEmpty"`
	APIBaseURL       string        `env:"STEAM_API_BASE_URL" envDefault:"https://api.steampowered.com"`
	CommunityBaseURL string        `env:"STEAM_COMMUNITY_BASE_URL" envDefault:"https://steamcommunity.com"`
	PollInterval     time.Duration `env:"STEAM_POLL_INTERVAL" envDefault:"30s"`
}
