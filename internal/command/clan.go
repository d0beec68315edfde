package command

import (
	"context"
	"strings"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
	"github.com/i-am-called-glitchy/kirka-bot-go/pkg/errors"
)

type ClanCommand struct {
	deps *Dependencies
}

func NewClanCommand(deps *Dependencies) *ClanCommand {
	return &ClanCommand{deps: deps}
}

func (c *ClanCommand) Name() string {
	return "clan"
}

func (c *ClanCommand) Description() string {
	return "Show a clan's profile by name"
}

func (c *ClanCommand) Aliases() []string {
	return nil
}

func (c *ClanCommand) Hidden() bool {
	return false
}

func (c *ClanCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.NewValidationError("usage: "+c.deps.Prefix+"clan <name>", "args", args)
	}

	clan, err := c.deps.Client.GetClan(ctx, name)
	if err != nil {
		return err
	}
	return cmdCtx.Reply(ctx, c.deps.Formatter.FormatClan(clan))
}
