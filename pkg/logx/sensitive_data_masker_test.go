package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"steam_trader/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Account secrets",
			input:  []byte(`{"sharedSecret":"aGVsbG8=","identitySecret":"d29ybGQ="}`),
			output: []byte(`{"sharedSecret":"[MASKED]","identitySecret":"[MASKED]"}`),
		},
		{
			name:   "API key in query string",
			input:  []byte(`GET /market/items/730?format=compact&api_key=0123456789abcdef&page=1`),
			output: []byte(`GET /market/items/730?format=compact&api_key=[MASKED]&page=1`),
		},
		{
			name:   "Session cookies",
			input:  []byte("Cookie: sessionid=deadbeef; steamLoginSecure=76561198000000000%7C%7Ctoken;\r\n"),
			output: []byte("Cookie: sessionid=[MASKED]; steamLoginSecure=[MASKED];\r\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
