package kirka

import (
	"context"
	"encoding/json"
)

type friendshipRequest struct {
	ShortID string `json:"shortId,omitempty"`
	UserID  string `json:"userId,omitempty"`
}

// OfferFriendship sends a friend request to the user with the given short id.
func (c *Client) OfferFriendship(ctx context.Context, shortID string) (json.RawMessage, error) {
	var resp json.RawMessage
	req := friendshipRequest{ShortID: NormalizeShortID(shortID)}
	err := c.post(ctx, c.apiURL("/user/offerFriendship"), true, req, &resp)
	return resp, err
}

// AcceptFriendship accepts a pending friend request from the given user.
func (c *Client) AcceptFriendship(ctx context.Context, userID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/user/acceptFriendship"), true, friendshipRequest{UserID: userID}, &resp)
	return resp, err
}

// DeclineFriendship declines a pending friend request. The API uses the same
// endpoint for declining requests and removing friends.
func (c *Client) DeclineFriendship(ctx context.Context, userID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/user/cancelFriendship"), true, friendshipRequest{UserID: userID}, &resp)
	return resp, err
}

// RemoveFriend removes an existing friend.
func (c *Client) RemoveFriend(ctx context.Context, userID string) (json.RawMessage, error) {
	return c.DeclineFriendship(ctx, userID)
}

// Rename changes the display name of the account bound to the token.
func (c *Client) Rename(ctx context.Context, name string) (json.RawMessage, error) {
	var resp json.RawMessage
	req := struct {
		Name string `json:"name"`
	}{Name: name}
	err := c.post(ctx, c.apiURL("/user/updateProfile"), true, req, &resp)
	return resp, err
}

// GetNotifications returns pending account notifications.
func (c *Client) GetNotifications(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.get(ctx, c.apiURL("/notification"), true, &resp)
	return resp, err
}

// MarkNotificationsSeen acknowledges all pending notifications.
func (c *Client) MarkNotificationsSeen(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/notification/saw"), true, nil, &resp)
	return resp, err
}
