package kirka

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Clan roles understood by the updateMember endpoint.
const (
	ClanRoleLeader  = "LEADER"
	ClanRoleOfficer = "OFFICER"
	ClanRoleNewbie  = "NEWBIE"
)

type ClanMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type Clan struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	DiscordLink string       `json:"discordLink"`
	Members     []ClanMember `json:"members"`
}

// GetClan looks up a clan by name.
func (c *Client) GetClan(ctx context.Context, name string) (*Clan, error) {
	var clan Clan
	if err := c.get(ctx, c.apiURL("/clans/"+name), false, &clan); err != nil {
		c.logger.Error("Failed to get clan", zap.String("clan", name), zap.Error(err))
		return nil, err
	}
	return &clan, nil
}

// GetMyClan returns the clan of the account bound to the token.
func (c *Client) GetMyClan(ctx context.Context) (*Clan, error) {
	var clan Clan
	if err := c.get(ctx, c.apiURL("/clans/mine"), true, &clan); err != nil {
		c.logger.Error("Failed to get own clan", zap.Error(err))
		return nil, err
	}
	return &clan, nil
}

// CreateClan founds a new clan with the given name.
func (c *Client) CreateClan(ctx context.Context, name string) (json.RawMessage, error) {
	var resp json.RawMessage
	req := struct {
		Name string `json:"name"`
	}{Name: name}
	err := c.post(ctx, c.apiURL("/clans/create"), true, req, &resp)
	return resp, err
}

// InviteToClan invites a user (by short id) to the caller's clan.
func (c *Client) InviteToClan(ctx context.Context, shortID string) (json.RawMessage, error) {
	var resp json.RawMessage
	req := struct {
		ShortID string `json:"shortId"`
	}{ShortID: NormalizeShortID(shortID)}
	err := c.post(ctx, c.apiURL("/clans/invite"), true, req, &resp)
	return resp, err
}

// UpdateClanDescription replaces the clan description.
func (c *Client) UpdateClanDescription(ctx context.Context, clanID, description string) (json.RawMessage, error) {
	var resp json.RawMessage
	req := struct {
		ID          string `json:"id"`
		Description string `json:"description"`
	}{ID: clanID, Description: description}
	err := c.post(ctx, c.apiURL("/clans/updateClan"), true, req, &resp)
	return resp, err
}

// UpdateClanDiscordLink replaces the clan's discord link.
func (c *Client) UpdateClanDiscordLink(ctx context.Context, clanID, discordLink string) (json.RawMessage, error) {
	var resp json.RawMessage
	req := struct {
		ID          string `json:"id"`
		DiscordLink string `json:"discordLink"`
	}{ID: clanID, DiscordLink: discordLink}
	err := c.post(ctx, c.apiURL("/clans/updateClan"), true, req, &resp)
	return resp, err
}

type inviteRequest struct {
	InviteID string `json:"inviteId"`
}

// AcceptClanInvite accepts a pending clan invite.
func (c *Client) AcceptClanInvite(ctx context.Context, inviteID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/clans/acceptInvite"), true, inviteRequest{InviteID: inviteID}, &resp)
	return resp, err
}

// DeclineClanInvite declines a pending clan invite.
func (c *Client) DeclineClanInvite(ctx context.Context, inviteID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/clans/cancelInvite"), true, inviteRequest{InviteID: inviteID}, &resp)
	return resp, err
}

// LeaveClan leaves the caller's current clan.
func (c *Client) LeaveClan(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.post(ctx, c.apiURL("/clans/leave"), true, nil, &resp)
	return resp, err
}

// SetClanMemberRole changes a clan member's role.
func (c *Client) SetClanMemberRole(ctx context.Context, memberID, role string) (json.RawMessage, error) {
	var resp json.RawMessage
	req := struct {
		MemberID string `json:"memberId"`
		Role     string `json:"role"`
	}{MemberID: memberID, Role: role}
	err := c.post(ctx, c.apiURL("/clans/updateMember"), true, req, &resp)
	return resp, err
}

func (c *Client) SetOfficer(ctx context.Context, memberID string) (json.RawMessage, error) {
	return c.SetClanMemberRole(ctx, memberID, ClanRoleOfficer)
}

func (c *Client) SetNewbie(ctx context.Context, memberID string) (json.RawMessage, error) {
	return c.SetClanMemberRole(ctx, memberID, ClanRoleNewbie)
}

func (c *Client) SetLeader(ctx context.Context, memberID string) (json.RawMessage, error) {
	return c.SetClanMemberRole(ctx, memberID, ClanRoleLeader)
}

// KickClanMember removes a member from the caller's clan.
func (c *Client) KickClanMember(ctx context.Context, memberID string) (json.RawMessage, error) {
	var resp json.RawMessage
	req := struct {
		MemberID string `json:"memberId"`
	}{MemberID: memberID}
	err := c.post(ctx, c.apiURL("/clans/kickMember"), true, req, &resp)
	return resp, err
}
