package kirka

import (
	"context"
	"encoding/json"
)

// Shop element ids the store rotates for chests.
const (
	StoreWoodChest     = 1
	StoreIceChest      = 2
	StoreGoldenChest   = 3
	StorePartyCard     = 4
	StoreSoldiersCard  = 5
	StoreGirlsBandCard = 6
	StoreColdCard      = 30
)

// GetRewards returns the pending level/daily rewards.
func (c *Client) GetRewards(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.get(ctx, c.apiURL("/rewards"), true, &resp)
	return resp, err
}

// GetAds returns the ad-reward state for the account.
func (c *Client) GetAds(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.get(ctx, c.apiURL("/rewards/ad"), true, &resp)
	return resp, err
}

// GetAdReward returns the unauthenticated ad-reward descriptor.
func (c *Client) GetAdReward(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.get(ctx, c.apiURL("/rewards/ad"), false, &resp)
	return resp, err
}

// ClaimRewards claims all pending rewards.
func (c *Client) ClaimRewards(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/rewards/take"), true, nil, &resp)
	return resp, err
}

// ClaimAd claims the reward for a watched ad.
func (c *Client) ClaimAd(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/rewards/claimAd"), true, nil, &resp)
	return resp, err
}

// GetSets returns the purchasable item sets.
func (c *Client) GetSets(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.get(ctx, c.apiURL("/shop/sets"), false, &resp)
	return resp, err
}

// GetBundles returns the purchasable bundles.
func (c *Client) GetBundles(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.get(ctx, c.apiURL("/shop/bundles"), false, &resp)
	return resp, err
}

type shopBuyRequest struct {
	ID int `json:"id"`
}

// StoreBuy purchases a shop element by id.
func (c *Client) StoreBuy(ctx context.Context, itemID int) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/shop/buy"), true, shopBuyRequest{ID: itemID}, &resp)
	return resp, err
}

// StoreBuySet purchases an item set by id.
func (c *Client) StoreBuySet(ctx context.Context, setID int) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/shop/buySet"), true, shopBuyRequest{ID: setID}, &resp)
	return resp, err
}

// GetShop returns the raw shop listing. Requires elevated access.
func (c *Client) GetShop(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.get(ctx, c.apiURL("/shop"), true, &resp)
	return resp, err
}

// GetReports returns moderation reports. Requires inspector access.
func (c *Client) GetReports(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/inspector/reports"), true, nil, &resp)
	return resp, err
}

// Quest types accepted by the quests endpoint.
const (
	QuestTypeDaily  = "daily"
	QuestTypeHourly = "hourly"
	QuestTypeEvent  = "event"
)

// GetQuests returns quests of the given type; an empty type returns all.
func (c *Client) GetQuests(ctx context.Context, questType string) (json.RawMessage, error) {
	var resp json.RawMessage
	req := struct {
		Type string `json:"type,omitempty"`
	}{Type: questType}
	err := c.post(ctx, c.apiURL("/quests"), true, req, &resp)
	return resp, err
}

func (c *Client) GetAllQuests(ctx context.Context) (json.RawMessage, error) {
	return c.GetQuests(ctx, "")
}

func (c *Client) GetDailyQuests(ctx context.Context) (json.RawMessage, error) {
	return c.GetQuests(ctx, QuestTypeDaily)
}

func (c *Client) GetHourlyQuests(ctx context.Context) (json.RawMessage, error) {
	return c.GetQuests(ctx, QuestTypeHourly)
}

func (c *Client) GetEventQuests(ctx context.Context) (json.RawMessage, error) {
	return c.GetQuests(ctx, QuestTypeEvent)
}
