package kirka

import (
	"context"
	"encoding/json"
)

// ListItem puts an inventory item on the market at the given price.
func (c *Client) ListItem(ctx context.Context, itemID string, price int64) (json.RawMessage, error) {
	var resp json.RawMessage
	req := struct {
		ID    string `json:"id"`
		Price int64  `json:"price"`
	}{ID: itemID, Price: price}
	err := c.post(ctx, c.apiURL("/inventory/market"), true, req, &resp)
	return resp, err
}

// QuickSell sells the given amount of an item back to the game.
func (c *Client) QuickSell(ctx context.Context, itemID string, amount int) (json.RawMessage, error) {
	var resp json.RawMessage
	req := struct {
		ID     string `json:"id"`
		Amount int    `json:"amount"`
	}{ID: itemID, Amount: amount}
	err := c.post(ctx, c.apiURL("/inventory/sell"), true, req, &resp)
	return resp, err
}

func (c *Client) QuickSellOne(ctx context.Context, itemID string) (json.RawMessage, error) {
	return c.QuickSell(ctx, itemID, 1)
}

type marketSearchRequest struct {
	Search string `json:"search"`
	Rarity string `json:"rarity"`
}

// GetMarket returns the unfiltered market listing.
func (c *Client) GetMarket(ctx context.Context) (json.RawMessage, error) {
	return c.SearchMarket(ctx, "", "")
}

// SearchMarket filters market listings by skin name and/or rarity.
func (c *Client) SearchMarket(ctx context.Context, skin, rarity string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/market"), true, marketSearchRequest{Search: skin, Rarity: rarity}, &resp)
	return resp, err
}

// MarketBuy purchases a listed item from another user.
func (c *Client) MarketBuy(ctx context.Context, userID, itemID string) (json.RawMessage, error) {
	var resp json.RawMessage
	req := struct {
		UserID string `json:"userId"`
		ItemID string `json:"itemId"`
	}{UserID: userID, ItemID: itemID}
	err := c.post(ctx, c.apiURL("/market/buy"), true, req, &resp)
	return resp, err
}
