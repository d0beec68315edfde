package command

import (
	"context"
	"strings"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/kirka"
	"github.com/i-am-called-glitchy/kirka-bot-go/pkg/errors"
)

type StatsCommand struct {
	deps *Dependencies
}

func NewStatsCommand(deps *Dependencies) *StatsCommand {
	return &StatsCommand{deps: deps}
}

func (c *StatsCommand) Name() string {
	return "stats"
}

func (c *StatsCommand) Description() string {
	return "Show a player's profile stats by short ID"
}

func (c *StatsCommand) Aliases() []string {
	return []string{"profile", "user"}
}

func (c *StatsCommand) Hidden() bool {
	return false
}

func (c *StatsCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, args string) error {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return errors.NewValidationError("usage: "+c.deps.Prefix+"stats <shortId>", "args", args)
	}

	shortID := kirka.NormalizeShortID(fields[0])
	profile, err := c.deps.Client.GetProfile(ctx, shortID)
	if err != nil {
		return err
	}
	return cmdCtx.Reply(ctx, c.deps.Formatter.FormatProfile(profile))
}
