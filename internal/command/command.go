package command

import (
	"context"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/adapter"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/kirka"
	"go.uber.org/zap"
)

// Command is a registered chat command. Aliases resolve to the same instance
// as the canonical name; hidden commands are kept out of help listings.
type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Hidden() bool
	Execute(ctx context.Context, cmdCtx *domain.CommandContext, args string) error
}

type Dependencies struct {
	Client    *kirka.Client
	Prices    *kirka.PriceService
	Formatter *adapter.Formatter
	Prefix    string
	Logger    *zap.Logger
}
