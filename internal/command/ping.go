package command

import (
	"context"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
)

type PingCommand struct{}

func NewPingCommand() *PingCommand {
	return &PingCommand{}
}

func (c *PingCommand) Name() string {
	return "ping"
}

func (c *PingCommand) Description() string {
	return "Liveness check"
}

func (c *PingCommand) Aliases() []string {
	return nil
}

func (c *PingCommand) Hidden() bool {
	return true
}

func (c *PingCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, args string) error {
	return cmdCtx.Reply(ctx, "Pong!")
}
