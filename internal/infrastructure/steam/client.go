package steam

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"steam_trader/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const requestTimeout = 15 * time.Second

// Client is a thin wrapper over the trade-offer web API and the community
// endpoints. It only moves bytes: authentication material (API key, session
// cookies, identity secret) is handed in via configuration, session refresh
// is someone else's job.
type Client struct {
	httpClient *http.Client

	apiBaseURL       string
	communityBaseURL string

	apiKey         string
	steamID        string
	sessionID      string
	loginSecure    string
	identitySecret string
	deviceID       string
}

func NewClient(cfg config.Steam, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient:       httpClient,
		apiBaseURL:       strings.TrimRight(cfg.APIBaseURL, "/"),
		communityBaseURL: strings.TrimRight(cfg.CommunityBaseURL, "/"),
		apiKey:           cfg.APIKey,
		steamID:          cfg.SteamID,
		sessionID:        cfg.SessionID,
		loginSecure:      cfg.LoginSecure,
		identitySecret:   cfg.IdentitySecret,
		deviceID:         cfg.DeviceID,
	}
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("http.NewRequest: %w", err)
	}

	c.setSessionCookies(req)

	return c.do(req, dest)
}

func (c *Client) postForm(ctx context.Context, rawURL string, form url.Values, referer string, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("http.NewRequest: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	c.setSessionCookies(req)

	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) //nolint:errcheck
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}

func (c *Client) setSessionCookies(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: c.sessionID})
	req.AddCookie(&http.Cookie{Name: "steamLoginSecure", Value: c.loginSecure})
}
