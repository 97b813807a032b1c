package steam

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfirmationKey(t *testing.T) {
	rq := require.New(t)

	secret := base64.StdEncoding.EncodeToString([]byte("identity-secret-bytes"))
	at := time.Unix(1700000000, 0)

	key, err := confirmationKey(secret, "list", at)
	rq.NoError(err)
	rq.NotEmpty(key)

	// The signature is deterministic over secret, tag and time.
	again, err := confirmationKey(secret, "list", at)
	rq.NoError(err)
	rq.Equal(key, again)

	// HMAC-SHA1 output, base64 encoded.
	raw, err := base64.StdEncoding.DecodeString(key)
	rq.NoError(err)
	rq.Len(raw, 20)

	otherTag, err := confirmationKey(secret, "allow", at)
	rq.NoError(err)
	rq.NotEqual(key, otherTag)

	otherTime, err := confirmationKey(secret, "list", at.Add(time.Second))
	rq.NoError(err)
	rq.NotEqual(key, otherTime)
}

func TestConfirmationKeyInvalidSecret(t *testing.T) {
	rq := require.New(t)

	_, err := confirmationKey("not base64 !!!", "list", time.Now())
	rq.Error(err)
}
