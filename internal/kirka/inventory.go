package kirka

import (
	"context"
	"encoding/json"
)

// Chest and character card item ids the shop rotates.
const (
	GoldenChestID = "077a4cf2-7b76-4624-8be6-4a7316cf5906"
	IceChestID    = "ec230bdb-4b96-42c3-8bd0-65d204a153fc"
	WoodChestID   = "71182187-109c-40c9-94f6-22dbb60d70ee"

	ColdCardID      = "723c4ba7-57b3-4ae4-b65e-75686fa77bf2"
	GirlsBandCardID = "723c4ba7-57b3-4ae4-b65e-75686fa77bf1"
	PartyCardID     = "6281ed5a-663a-45e1-9772-962c95aa4605"
	SoldiersCardID  = "9cc5bd60-806f-4818-a7d4-1ba9b32bd96c"
)

type itemRequest struct {
	ID string `json:"id"`
}

// GetInventory fetches another user's inventory through an inventory API key.
func (c *Client) GetInventory(ctx context.Context, apiKey, longID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/inventory/get_"+apiKey), false, itemRequest{ID: longID}, &resp)
	return resp, err
}

// GetMyInventory returns the inventory of the account bound to the token.
func (c *Client) GetMyInventory(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.get(ctx, c.apiURL("/inventory"), true, &resp)
	return resp, err
}

// OpenChest opens one chest of the given item id.
func (c *Client) OpenChest(ctx context.Context, itemID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/inventory/openChest"), true, itemRequest{ID: itemID}, &resp)
	return resp, err
}

func (c *Client) OpenGoldenChest(ctx context.Context) (json.RawMessage, error) {
	return c.OpenChest(ctx, GoldenChestID)
}

func (c *Client) OpenIceChest(ctx context.Context) (json.RawMessage, error) {
	return c.OpenChest(ctx, IceChestID)
}

func (c *Client) OpenWoodChest(ctx context.Context) (json.RawMessage, error) {
	return c.OpenChest(ctx, WoodChestID)
}

// OpenCharacterCard opens one character card of the given item id.
func (c *Client) OpenCharacterCard(ctx context.Context, itemID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/inventory/openCharacterCard"), true, itemRequest{ID: itemID}, &resp)
	return resp, err
}

func (c *Client) OpenColdCharacterCard(ctx context.Context) (json.RawMessage, error) {
	return c.OpenCharacterCard(ctx, ColdCardID)
}

func (c *Client) OpenGirlsBandCharacterCard(ctx context.Context) (json.RawMessage, error) {
	return c.OpenCharacterCard(ctx, GirlsBandCardID)
}

func (c *Client) OpenPartyCharacterCard(ctx context.Context) (json.RawMessage, error) {
	return c.OpenCharacterCard(ctx, PartyCardID)
}

func (c *Client) OpenSoldiersCharacterCard(ctx context.Context) (json.RawMessage, error) {
	return c.OpenCharacterCard(ctx, SoldiersCardID)
}

// EquipItem equips an item from the inventory.
func (c *Client) EquipItem(ctx context.Context, itemID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/inventory/take"), true, itemRequest{ID: itemID}, &resp)
	return resp, err
}
