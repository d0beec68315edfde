package kirka

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type ProfileStats struct {
	Kills     int64 `json:"kills"`
	Deaths    int64 `json:"deaths"`
	Wins      int64 `json:"wins"`
	Games     int64 `json:"games"`
	Headshots int64 `json:"headshots"`
	Scores    int64 `json:"scores"`
}

type ActiveSkin struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
}

type Profile struct {
	ID               string       `json:"id"`
	ShortID          string       `json:"shortId"`
	Name             string       `json:"name"`
	Bio              string       `json:"bio"`
	Role             string       `json:"role"`
	Level            int          `json:"level"`
	TotalXP          int64        `json:"totalXp"`
	XPSinceLastLevel int64        `json:"xpSinceLastLevel"`
	XPUntilNextLevel int64        `json:"xpUntilNextLevel"`
	Coins            int64        `json:"coins"`
	Diamonds         int64        `json:"diamonds"`
	CreatedAt        string       `json:"createdAt"`
	Clan             string       `json:"clan"`
	ActiveWeaponSkin *ActiveSkin  `json:"activeWeapon1Skin"`
	ActiveBodySkin   *ActiveSkin  `json:"activeBodySkin"`
	Stats            ProfileStats `json:"stats"`
}

func (p *Profile) KDRatio() float64 {
	return ratio(p.Stats.Kills, p.Stats.Deaths)
}

func (p *Profile) WinRate() float64 {
	return ratio(p.Stats.Wins, p.Stats.Games)
}

func (p *Profile) HeadshotRate() float64 {
	return ratio(p.Stats.Headshots, p.Stats.Kills)
}

func (p *Profile) ScorePerGame() float64 {
	return ratio(p.Stats.Scores, p.Stats.Games)
}

func (p *Profile) XPProgress() string {
	needed := p.XPUntilNextLevel
	if needed <= 0 {
		needed = 1
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", p.XPSinceLastLevel, p.XPUntilNextLevel,
		float64(p.XPSinceLastLevel)/float64(needed)*100)
}

// JoinDate renders the account creation timestamp as "January 2, 2006".
// Returns the raw value if the timestamp does not parse.
func (p *Profile) JoinDate() string {
	t, err := time.Parse("2006-01-02T15:04:05.000Z", p.CreatedAt)
	if err != nil {
		return p.CreatedAt
	}
	return t.Format("January 2, 2006")
}

func ratio(num, den int64) float64 {
	if den == 0 {
		den = 1
	}
	return float64(num) / float64(den)
}

// NormalizeShortID upcases a short id and strips the optional '#' the game UI
// displays in front of it.
func NormalizeShortID(shortID string) string {
	return strings.ReplaceAll(strings.ToUpper(shortID), "#", "")
}

type profileRequest struct {
	ID        string `json:"id"`
	IsShortID bool   `json:"isShortId,omitempty"`
}

// GetProfile looks up a profile by its public short id.
func (c *Client) GetProfile(ctx context.Context, shortID string) (*Profile, error) {
	var profile Profile
	req := profileRequest{ID: NormalizeShortID(shortID), IsShortID: true}
	if err := c.post(ctx, c.apiURL("/user/getProfile"), false, req, &profile); err != nil {
		c.logger.Error("Failed to get profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// GetProfileByID looks up a profile by its canonical long id.
func (c *Client) GetProfileByID(ctx context.Context, longID string) (*Profile, error) {
	var profile Profile
	req := profileRequest{ID: longID}
	if err := c.post(ctx, c.apiURL("/user/getProfile"), false, req, &profile); err != nil {
		c.logger.Error("Failed to get profile by id", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// GetMyProfile returns the profile bound to the client's token.
func (c *Client) GetMyProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.get(ctx, c.apiURL("/user"), true, &profile); err != nil {
		c.logger.Error("Failed to get own profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}
