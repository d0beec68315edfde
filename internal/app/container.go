package app

import (
	"context"
	"fmt"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/adapter"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/bot"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/command"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/config"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/constants"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/kirka"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/service"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Container bundles assembled services for constructing runtime components like Bot.
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Blacklist *service.BlacklistRegistry

	botDeps *bot.Dependencies
}

// NewBot instantiates a bot using the pre-built dependency graph.
func (c *Container) NewBot() (*bot.Bot, error) {
	if c == nil || c.botDeps == nil {
		return nil, fmt.Errorf("bot dependencies not initialized")
	}
	return bot.NewBot(c.botDeps)
}

// Build assembles the transport, API client, gates and command set, returning
// a container capable of creating fully-wired bots.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Chat transport
	limiter := rate.NewLimiter(rate.Limit(cfg.Chat.SendRatePerSecond), cfg.Chat.SendBurst)
	socket := kirka.NewWebSocket(
		cfg.Kirka.ChatWSURL,
		cfg.Kirka.Token,
		constants.WebSocketConfig.MaxReconnectAttempts,
		constants.WebSocketConfig.ReconnectDelay,
		limiter,
		logger,
	)

	// API surface
	client := kirka.NewClient(cfg.Kirka.APIBaseURL, cfg.Kirka.Domain, cfg.Kirka.Token, logger)
	prices := kirka.NewPriceService(constants.PriceCacheConfig.MaxEntries, constants.PriceCacheConfig.TTL, logger)

	// Dispatch gates
	cooldowns := service.NewCooldownController(cfg.Cooldown.Window, cfg.Cooldown.MaxEntries)
	blacklist := service.NewBlacklistRegistry(cfg.Blacklist.CommandTTL, cfg.Blacklist.MaxCommands)

	formatter := adapter.NewFormatter(cfg.Bot.Prefix)
	normalizer := adapter.NewNormalizer(logger)

	cmdDeps := &command.Dependencies{
		Client:    client,
		Prices:    prices,
		Formatter: formatter,
		Prefix:    cfg.Bot.Prefix,
		Logger:    logger,
	}

	registry := command.NewRegistry()
	registry.Register(command.NewHelpCommand(cmdDeps, registry))
	registry.Register(command.NewStatsCommand(cmdDeps))
	registry.Register(command.NewPriceCommand(cmdDeps))
	registry.Register(command.NewValueCommand(cmdDeps))
	registry.Register(command.NewClanCommand(cmdDeps))
	registry.Register(command.NewPlayersCommand(cmdDeps))
	registry.Register(command.NewLobbiesCommand(cmdDeps))
	registry.Register(command.NewPingCommand())

	logger.Info("Command registry assembled",
		zap.Int("commands", registry.Count()),
	)

	send := func(sendCtx context.Context, text string) error {
		logger.Debug("Sending chat message",
			zap.String("text", text),
		)
		return socket.Send(sendCtx, text)
	}

	dispatcher := command.NewDispatcher(registry, cooldowns, blacklist, cfg.Bot.Prefix, send, logger)

	deps := &bot.Dependencies{
		Config:     cfg,
		Logger:     logger,
		Client:     client,
		Socket:     socket,
		Normalizer: normalizer,
		Dispatcher: dispatcher,
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Blacklist: blacklist,
		botDeps:   deps,
	}, nil
}
