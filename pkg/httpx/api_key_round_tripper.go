package httpx

import (
	"fmt"
	"net/http"
)

// APIKeyRoundTripper appends an API key query parameter to every outgoing
// request. Key material stays out of the call sites and of the request logs
// (the logging masker strips it).
type APIKeyRoundTripper struct {
	next      http.RoundTripper
	paramName string
	key       string
}

func NewAPIKeyRoundTripper(
	next http.RoundTripper,
	paramName string,
	key string,
) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:      next,
		paramName: paramName,
		key:       key,
	}
}

func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	query := req.URL.Query()
	query.Set(rt.paramName, rt.key)

	req = req.Clone(req.Context())
	req.URL.RawQuery = query.Encode()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
