package steam

// Wire DTOs for the trade-offer web API.

type tradeOffersResponse struct {
	Response struct {
		TradeOffersReceived []tradeOfferDTO  `json:"trade_offers_received"`
		Descriptions        []descriptionDTO `json:"descriptions"`
	} `json:"response"`
}

type tradeOfferDTO struct {
	TradeOfferID    string     `json:"tradeofferid"`
	AccountIDOther  int64      `json:"accountid_other"`
	TradeOfferState int        `json:"trade_offer_state"`
	ItemsToGive     []assetDTO `json:"items_to_give"`
	ItemsToReceive  []assetDTO `json:"items_to_receive"`
	TimeUpdated     int64      `json:"time_updated"`
}

type assetDTO struct {
	AppID      int64  `json:"appid"`
	ClassID    string `json:"classid"`
	InstanceID string `json:"instanceid"`
	Amount     string `json:"amount"`
}

type descriptionDTO struct {
	AppID          int64  `json:"appid"`
	ClassID        string `json:"classid"`
	InstanceID     string `json:"instanceid"`
	MarketHashName string `json:"market_hash_name"`
}

type holdDurationsResponse struct {
	Response struct {
		TheirEscrow struct {
			EscrowEndDurationDays int `json:"escrow_end_duration_days"`
		} `json:"their_escrow"`
	} `json:"response"`
}

type confirmationListResponse struct {
	Success bool              `json:"success"`
	Conf    []confirmationDTO `json:"conf"`
}

type confirmationDTO struct {
	ID        string `json:"id"`
	Nonce     string `json:"nonce"`
	CreatorID string `json:"creator_id"`
	Type      int    `json:"type"`
}

type successResponse struct {
	Success bool `json:"success"`
}
