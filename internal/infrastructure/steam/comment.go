package steam

import (
	"context"
	"fmt"
	"net/url"

	"steam_trader/internal/domain"
	"steam_trader/pkg/errcodes"
)

// Comment posts a profile comment on the partner's page.
func (c *Client) Comment(ctx context.Context, partnerID, text string) error {
	form := url.Values{}
	form.Set("comment", text)
	form.Set("sessionid", c.sessionID)

	endpoint := fmt.Sprintf("%s/comment/Profile/post/%s/-1/", c.communityBaseURL, partnerID)
	referer := fmt.Sprintf("%s/profiles/%s", c.communityBaseURL, partnerID)

	var resp successResponse

	if err := c.postForm(ctx, endpoint, form, referer, &resp); err != nil {
		return fmt.Errorf("post comment: %w", err)
	}

	if !resp.Success {
		return domain.NewError(errcodes.InternalServerError, "profile comment rejected")
	}

	return nil
}
