package command

import (
	"context"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/adapter"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
)

type HelpCommand struct {
	deps     *Dependencies
	registry *Registry
}

func NewHelpCommand(deps *Dependencies, registry *Registry) *HelpCommand {
	return &HelpCommand{deps: deps, registry: registry}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Aliases() []string {
	return []string{"commands", "h"}
}

func (c *HelpCommand) Hidden() bool {
	return false
}

func (c *HelpCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, args string) error {
	visible := c.registry.Visible()
	entries := make([]adapter.HelpEntry, 0, len(visible))
	for _, cmd := range visible {
		entries = append(entries, adapter.HelpEntry{
			Name:        cmd.Name(),
			Description: cmd.Description(),
		})
	}
	return cmdCtx.Reply(ctx, c.deps.Formatter.FormatHelp(entries))
}
