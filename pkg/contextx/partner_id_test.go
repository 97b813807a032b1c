package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"steam_trader/pkg/contextx"
)

func TestPartnerID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var testPartnerIDEmpty contextx.PartnerID

	testPartnerIDNotEmpty := contextx.PartnerID("76561198000000000")

	partnerID, err := contextx.PartnerIDFromContext(ctx)
	rq.Equal(testPartnerIDEmpty, partnerID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "partner id: no value in context")

	ctx = contextx.WithPartnerID(ctx, testPartnerIDNotEmpty)

	partnerID, err = contextx.PartnerIDFromContext(ctx)
	rq.Equal(testPartnerIDNotEmpty, partnerID)
	rq.NoError(err)
}
