package steam

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"steam_trader/internal/domain"
	"steam_trader/pkg/errcodes"
)

// Confirmation type for trade offers in the mobileconf list.
const confirmationTypeTrade = 2

// Confirm finds the pending mobile confirmation for the offer and acts on it.
// Each call is one full attempt; retry policy lives with the caller.
func (c *Client) Confirm(ctx context.Context, offerID string) error {
	confirmations, err := c.fetchConfirmations(ctx)
	if err != nil {
		return err
	}

	for _, conf := range confirmations {
		if conf.Type != confirmationTypeTrade || conf.CreatorID != offerID {
			continue
		}

		return c.acceptConfirmation(ctx, conf)
	}

	return domain.NewError(errcodes.ConfirmationFailed, fmt.Sprintf("no pending confirmation for offer %s", offerID))
}

func (c *Client) fetchConfirmations(ctx context.Context) ([]confirmationDTO, error) {
	query, err := c.confirmationQuery("list")
	if err != nil {
		return nil, err
	}

	var resp confirmationListResponse

	endpoint := c.communityBaseURL + "/mobileconf/getlist?" + query.Encode()
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("get confirmations: %w", err)
	}

	if !resp.Success {
		return nil, domain.NewError(errcodes.ConfirmationFailed, "confirmation list rejected")
	}

	return resp.Conf, nil
}

func (c *Client) acceptConfirmation(ctx context.Context, conf confirmationDTO) error {
	query, err := c.confirmationQuery("allow")
	if err != nil {
		return err
	}

	query.Set("op", "allow")
	query.Set("cid", conf.ID)
	query.Set("ck", conf.Nonce)

	var resp successResponse

	endpoint := c.communityBaseURL + "/mobileconf/ajaxop?" + query.Encode()
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return fmt.Errorf("accept confirmation: %w", err)
	}

	if !resp.Success {
		return domain.NewError(errcodes.ConfirmationFailed, "confirmation rejected")
	}

	return nil
}

func (c *Client) confirmationQuery(tag string) (url.Values, error) {
	now := time.Now()

	key, err := confirmationKey(c.identitySecret, tag, now)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("p", c.deviceID)
	query.Set("a", c.steamID)
	query.Set("k", key)
	query.Set("t", strconv.FormatInt(now.Unix(), 10))
	query.Set("m", "react")
	query.Set("tag", tag)

	return query, nil
}

// confirmationKey signs the tag with the identity secret: HMAC-SHA1 over the
// big-endian unix time followed by the tag bytes, base64 both ways.
func confirmationKey(identitySecret, tag string, at time.Time) (string, error) {
	secret, err := base64.StdEncoding.DecodeString(identitySecret)
	if err != nil {
		return "", fmt.Errorf("decode identity secret: %w", err)
	}

	payload := make([]byte, 8, 8+len(tag))
	binary.BigEndian.PutUint64(payload, uint64(at.Unix()))
	payload = append(payload, tag...)

	mac := hmac.New(sha1.New, secret)
	mac.Write(payload)

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
