package kirka

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Lobby is one matchmaker room listing.
type Lobby struct {
	Clients int `json:"clients"`
}

// GetLobbies returns the open lobbies for a region (eu1, na1, sa1, asia1,
// oceania1).
func (c *Client) GetLobbies(ctx context.Context, region string) ([]Lobby, error) {
	var lobbies []Lobby
	if err := c.get(ctx, c.regionURL(region), false, &lobbies); err != nil {
		c.logger.Error("Failed to get lobbies", zap.String("region", region), zap.Error(err))
		return nil, err
	}
	return lobbies, nil
}

// GetPlayerCount sums the players across a region's lobbies.
func (c *Client) GetPlayerCount(ctx context.Context, region string) (int, error) {
	lobbies, err := c.GetLobbies(ctx, region)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, lobby := range lobbies {
		total += lobby.Clients
	}
	return total, nil
}

// GetVideos returns the featured community videos.
func (c *Client) GetVideos(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/videos"), false, nil, &resp)
	return resp, err
}

// GetStreams returns the live Twitch streams the game features.
func (c *Client) GetStreams(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.get(ctx, c.apiURL("/twitch"), false, &resp)
	return resp, err
}

// GetSoloLeaderboard returns the global solo leaderboard.
func (c *Client) GetSoloLeaderboard(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.get(ctx, c.apiURL("/leaderboard/solo"), false, &resp)
	return resp, err
}

// GetClanLeaderboard returns the clan championship leaderboard.
func (c *Client) GetClanLeaderboard(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.get(ctx, c.apiURL("/leaderboard/clanChampionship"), false, &resp)
	return resp, err
}
