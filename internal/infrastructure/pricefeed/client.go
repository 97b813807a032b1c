package pricefeed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"steam_trader/internal/config"
	"steam_trader/internal/domain"
	"steam_trader/pkg/errcodes"
	"steam_trader/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const requestTimeout = 30 * time.Second

// Client fetches market prices from the external price feed. One request per
// app returns the full compact price page for that app.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.PriceFeed, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	httpClient.Transport = httpx.NewAPIKeyRoundTripper(
		transportOrDefault(httpClient.Transport),
		"api_key",
		cfg.APIKey,
	)

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Fetch returns market hash name to price for one app.
//
// A 401 or a 402 is a credentials or billing problem on the feed account and
// will not heal on retry, so callers should treat those as fatal at startup.
func (c *Client) Fetch(ctx context.Context, appID int64) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/market/items/%d?format=compact", c.baseURL, appID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequest: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.PriceFeedUnavailable, "price feed request failed")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, domain.NewError(errcodes.PriceFeedUnauthorized, "price feed rejected the API key")
	case http.StatusPaymentRequired:
		return nil, domain.NewError(errcodes.PriceFeedPaymentRequired, "price feed account is out of funds")
	default:
		return nil, domain.NewError(errcodes.PriceFeedUnavailable,
			fmt.Sprintf("price feed returned status %d", resp.StatusCode))
	}

	prices := make(map[string]float64)
	if err := json.NewDecoder(resp.Body).Decode(&prices); err != nil {
		return nil, domain.WrapError(err, errcodes.PriceFeedUnavailable, "price feed response malformed")
	}

	return prices, nil
}

// IsFatal reports whether the feed error cannot heal without operator action.
func IsFatal(err error) bool {
	code, ok := domain.GetCode(err)
	if !ok {
		return false
	}

	return code == errcodes.PriceFeedUnauthorized || code == errcodes.PriceFeedPaymentRequired
}

func transportOrDefault(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		return http.DefaultTransport
	}

	return rt
}
