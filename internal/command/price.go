package command

import (
	"context"
	"strings"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
	"github.com/i-am-called-glitchy/kirka-bot-go/pkg/errors"
)

type PriceCommand struct {
	deps *Dependencies
}

func NewPriceCommand(deps *Dependencies) *PriceCommand {
	return &PriceCommand{deps: deps}
}

func (c *PriceCommand) Name() string {
	return "price"
}

func (c *PriceCommand) Description() string {
	return "Look up a skin's price on the BVL sheet"
}

func (c *PriceCommand) Aliases() []string {
	return []string{"bvl"}
}

func (c *PriceCommand) Hidden() bool {
	return false
}

func (c *PriceCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, args string) error {
	skin := strings.TrimSpace(args)
	if skin == "" {
		return errors.NewValidationError("usage: "+c.deps.Prefix+"price <skin name>", "args", args)
	}

	price, err := c.deps.Prices.BVL(ctx, skin)
	if err != nil {
		return err
	}
	return cmdCtx.Reply(ctx, c.deps.Formatter.FormatPrice(skin, price))
}

type ValueCommand struct {
	deps *Dependencies
}

func NewValueCommand(deps *Dependencies) *ValueCommand {
	return &ValueCommand{deps: deps}
}

func (c *ValueCommand) Name() string {
	return "value"
}

func (c *ValueCommand) Description() string {
	return "Look up a skin's base value on the YZZZMTZ sheet"
}

func (c *ValueCommand) Aliases() []string {
	return []string{"basevalue", "yzzzmtz"}
}

func (c *ValueCommand) Hidden() bool {
	return false
}

func (c *ValueCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, args string) error {
	skin := strings.TrimSpace(args)
	if skin == "" {
		return errors.NewValidationError("usage: "+c.deps.Prefix+"value <skin name>", "args", args)
	}

	price, err := c.deps.Prices.YZZZMTZ(ctx, skin)
	if err != nil {
		return err
	}
	return cmdCtx.Reply(ctx, c.deps.Formatter.FormatPrice(skin, price))
}
