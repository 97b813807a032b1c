package steam_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"steam_trader/internal/domain"
	"steam_trader/pkg/errcodes"
)

const confirmationList = `{
	"success": true,
	"conf": [
		{"id": "900001", "nonce": "nonce-1", "creator_id": "100001", "type": 2},
		{"id": "900002", "nonce": "nonce-2", "creator_id": "100002", "type": 3}
	]
}`

func TestConfirm(t *testing.T) {
	rq := require.New(t)

	mux := http.NewServeMux()

	mux.HandleFunc("/mobileconf/getlist", func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("76561198000000042", r.URL.Query().Get("a"))
		rq.Equal("android:test-device", r.URL.Query().Get("p"))
		rq.Equal("list", r.URL.Query().Get("tag"))
		rq.NotEmpty(r.URL.Query().Get("k"))
		rq.NotEmpty(r.URL.Query().Get("t"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(confirmationList)) //nolint:errcheck
	})

	mux.HandleFunc("/mobileconf/ajaxop", func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("allow", r.URL.Query().Get("op"))
		rq.Equal("900001", r.URL.Query().Get("cid"))
		rq.Equal("nonce-1", r.URL.Query().Get("ck"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`)) //nolint:errcheck
	})

	client := newTestClient(t, mux)

	rq.NoError(client.Confirm(context.Background(), "100001"))
}

func TestConfirmNoPendingConfirmation(t *testing.T) {
	rq := require.New(t)

	mux := http.NewServeMux()

	mux.HandleFunc("/mobileconf/getlist", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(confirmationList)) //nolint:errcheck
	})

	client := newTestClient(t, mux)

	err := client.Confirm(context.Background(), "100999")
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ConfirmationFailed, code)
}

func TestConfirmRejectedByCommunity(t *testing.T) {
	rq := require.New(t)

	mux := http.NewServeMux()

	mux.HandleFunc("/mobileconf/getlist", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(confirmationList)) //nolint:errcheck
	})

	mux.HandleFunc("/mobileconf/ajaxop", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false}`)) //nolint:errcheck
	})

	client := newTestClient(t, mux)

	err := client.Confirm(context.Background(), "100001")
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ConfirmationFailed, code)
}
