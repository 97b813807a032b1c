package steam

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"steam_trader/internal/domain/entity"
)

const (
	// State of an offer waiting for our decision.
	tradeOfferStateActive = 2

	// Offset between a 32-bit account id and the 64-bit public id.
	steamID64Base = 76561197960265728
)

// RecentOffers lists active received offers updated since the cursor.
func (c *Client) RecentOffers(ctx context.Context, since time.Time) ([]entity.Offer, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("get_received_offers", "1")
	query.Set("active_only", "1")
	query.Set("get_descriptions", "1")
	query.Set("language", "en")

	if !since.IsZero() {
		query.Set("time_historical_cutoff", strconv.FormatInt(since.Unix(), 10))
	}

	var resp tradeOffersResponse

	endpoint := c.apiBaseURL + "/IEconService/GetTradeOffers/v1/?" + query.Encode()
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("get trade offers: %w", err)
	}

	names := descriptionIndex(resp.Response.Descriptions)

	offers := make([]entity.Offer, 0, len(resp.Response.TradeOffersReceived))

	for _, dto := range resp.Response.TradeOffersReceived {
		if dto.TradeOfferState != tradeOfferStateActive {
			continue
		}

		offers = append(offers, entity.Offer{
			ID:             dto.TradeOfferID,
			PartnerID:      accountIDToSteamID64(dto.AccountIDOther),
			ItemsToReceive: toItems(dto.ItemsToReceive, names),
			ItemsToGive:    toItems(dto.ItemsToGive, names),
			UpdatedAt:      time.Unix(dto.TimeUpdated, 0),
		})
	}

	return offers, nil
}

// PartnerDetails returns the escrow hold the offer would incur.
func (c *Client) PartnerDetails(ctx context.Context, offer entity.Offer) (int, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("steamid_target", offer.PartnerID)

	var resp holdDurationsResponse

	endpoint := c.apiBaseURL + "/IEconService/GetTradeHoldDurations/v1/?" + query.Encode()
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return 0, fmt.Errorf("get trade hold durations: %w", err)
	}

	return resp.Response.TheirEscrow.EscrowEndDurationDays, nil
}

// Accept accepts the offer through the community endpoint. Not safely
// repeatable; callers must not retry.
func (c *Client) Accept(ctx context.Context, offer entity.Offer) error {
	form := url.Values{}
	form.Set("sessionid", c.sessionID)
	form.Set("serverid", "1")
	form.Set("tradeofferid", offer.ID)
	form.Set("partner", offer.PartnerID)

	offerURL := fmt.Sprintf("%s/tradeoffer/%s/", c.communityBaseURL, offer.ID)

	if err := c.postForm(ctx, offerURL+"accept", form, offerURL, nil); err != nil {
		return fmt.Errorf("accept offer: %w", err)
	}

	return nil
}

// Decline declines the offer through the web API.
func (c *Client) Decline(ctx context.Context, offer entity.Offer) error {
	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("tradeofferid", offer.ID)

	endpoint := c.apiBaseURL + "/IEconService/DeclineTradeOffer/v1/"

	if err := c.postForm(ctx, endpoint, form, "", nil); err != nil {
		return fmt.Errorf("decline offer: %w", err)
	}

	return nil
}

func descriptionIndex(descriptions []descriptionDTO) map[string]string {
	names := make(map[string]string, len(descriptions))

	for _, d := range descriptions {
		names[assetKey(d.AppID, d.ClassID, d.InstanceID)] = d.MarketHashName
	}

	return names
}

func toItems(assets []assetDTO, names map[string]string) []entity.Item {
	if len(assets) == 0 {
		return nil
	}

	items := make([]entity.Item, 0, len(assets))

	for _, a := range assets {
		amount, err := strconv.Atoi(a.Amount)
		if err != nil || amount <= 0 {
			amount = 1
		}

		items = append(items, entity.Item{
			AppID:          a.AppID,
			MarketHashName: names[assetKey(a.AppID, a.ClassID, a.InstanceID)],
			Amount:         amount,
		})
	}

	return items
}

func assetKey(appID int64, classID, instanceID string) string {
	return fmt.Sprintf("%d_%s_%s", appID, classID, instanceID)
}

func accountIDToSteamID64(accountID int64) string {
	return strconv.FormatInt(accountID+steamID64Base, 10)
}
