package command

import (
	"context"
	"strings"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/kirka"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/util"
	"github.com/i-am-called-glitchy/kirka-bot-go/pkg/errors"
)

type PlayersCommand struct {
	deps *Dependencies
}

func NewPlayersCommand(deps *Dependencies) *PlayersCommand {
	return &PlayersCommand{deps: deps}
}

func (c *PlayersCommand) Name() string {
	return "players"
}

func (c *PlayersCommand) Description() string {
	return "Show player counts per region"
}

func (c *PlayersCommand) Aliases() []string {
	return []string{"playercount", "online"}
}

func (c *PlayersCommand) Hidden() bool {
	return false
}

func (c *PlayersCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, args string) error {
	regions := kirka.Regions
	if requested := strings.ToLower(strings.TrimSpace(args)); requested != "" {
		if !validRegion(requested) {
			return errors.NewValidationError("unknown region '"+requested+"'", "region", requested)
		}
		regions = []string{requested}
	}

	counts := make(map[string]int, len(regions))
	for _, region := range regions {
		count, err := c.deps.Client.GetPlayerCount(ctx, region)
		if err != nil {
			return err
		}
		counts[region] = count
	}
	return cmdCtx.Reply(ctx, c.deps.Formatter.FormatPlayerCounts(counts))
}

type LobbiesCommand struct {
	deps *Dependencies
}

func NewLobbiesCommand(deps *Dependencies) *LobbiesCommand {
	return &LobbiesCommand{deps: deps}
}

func (c *LobbiesCommand) Name() string {
	return "lobbies"
}

func (c *LobbiesCommand) Description() string {
	return "Show lobby counts for a region (default eu1)"
}

func (c *LobbiesCommand) Aliases() []string {
	return nil
}

func (c *LobbiesCommand) Hidden() bool {
	return false
}

func (c *LobbiesCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, args string) error {
	region := strings.ToLower(strings.TrimSpace(args))
	if region == "" {
		region = kirka.Regions[0]
	}
	if !validRegion(region) {
		return errors.NewValidationError("unknown region '"+region+"'", "region", region)
	}

	lobbies, err := c.deps.Client.GetLobbies(ctx, region)
	if err != nil {
		return err
	}
	return cmdCtx.Reply(ctx, c.deps.Formatter.FormatLobbies(region, lobbies))
}

func validRegion(region string) bool {
	return util.Contains(kirka.Regions, region)
}
