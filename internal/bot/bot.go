package bot

import (
	"context"
	"fmt"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/adapter"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/command"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/config"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/kirka"
	"go.uber.org/zap"
)

// TradeFunc observes a system trade line. The raw message text is passed
// through unparsed.
type TradeFunc func(message string)

// Dependencies carries everything a Bot needs, pre-wired.
type Dependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	Client     *kirka.Client
	Socket     *kirka.WebSocket
	Normalizer *adapter.Normalizer
	Dispatcher *command.Dispatcher
}

// Bot ties the chat socket to the dispatcher: frames in, normalized events
// out, commands dispatched one at a time in arrival order.
type Bot struct {
	deps *Dependencies

	onTradeOffer     TradeFunc
	onTradeAccepted  TradeFunc
	onTradeCancelled TradeFunc

	removeFrameCB []func()
	removeStateCB []func()
}

func NewBot(deps *Dependencies) (*Bot, error) {
	if deps == nil {
		return nil, fmt.Errorf("dependencies must not be nil")
	}
	if deps.Socket == nil || deps.Normalizer == nil || deps.Dispatcher == nil {
		return nil, fmt.Errorf("socket, normalizer and dispatcher are required")
	}
	return &Bot{deps: deps}, nil
}

// OnTradeOffer registers a hook for system trade-offer lines. Must be called
// before Start.
func (b *Bot) OnTradeOffer(fn TradeFunc) { b.onTradeOffer = fn }

// OnTradeAccepted registers a hook for accepted-trade lines.
func (b *Bot) OnTradeAccepted(fn TradeFunc) { b.onTradeAccepted = fn }

// OnTradeCancelled registers a hook for cancelled-trade lines.
func (b *Bot) OnTradeCancelled(fn TradeFunc) { b.onTradeCancelled = fn }

// Start connects the chat socket and blocks until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	remove := b.deps.Socket.OnFrame(func(frame *kirka.Frame) {
		b.handleFrame(ctx, frame)
	})
	b.removeFrameCB = append(b.removeFrameCB, remove)

	removeState := b.deps.Socket.OnStateChange(func(state kirka.WebSocketState) {
		if state == kirka.WSStateConnected {
			b.deps.Normalizer.Reset()
		}
	})
	b.removeStateCB = append(b.removeStateCB, removeState)

	if err := b.deps.Socket.Connect(ctx); err != nil {
		return err
	}

	b.deps.Logger.Info("Bot started",
		zap.String("prefix", b.deps.Config.Bot.Prefix),
	)

	<-ctx.Done()
	return ctx.Err()
}

func (b *Bot) handleFrame(ctx context.Context, frame *kirka.Frame) {
	if frame.IsSystem() {
		b.handleSystemFrame(frame)
	}

	// Events from one frame are dispatched sequentially so batch order is
	// preserved end to end.
	for _, event := range b.deps.Normalizer.Normalize(frame) {
		b.deps.Dispatcher.Dispatch(ctx, event)
	}
}

func (b *Bot) handleSystemFrame(frame *kirka.Frame) {
	msg := frame.Message
	switch {
	case adapter.IsTradeOffer(msg):
		if b.onTradeOffer != nil {
			b.onTradeOffer(msg)
		}
	case adapter.IsTradeAccepted(msg):
		if b.onTradeAccepted != nil {
			b.onTradeAccepted(msg)
		}
	case adapter.IsTradeCancelled(msg):
		if b.onTradeCancelled != nil {
			b.onTradeCancelled(msg)
		}
	}
}

// Shutdown detaches callbacks and tears down the socket and HTTP client.
func (b *Bot) Shutdown(ctx context.Context) error {
	for _, remove := range b.removeFrameCB {
		remove()
	}
	for _, remove := range b.removeStateCB {
		remove()
	}
	b.removeFrameCB = nil
	b.removeStateCB = nil

	if err := b.deps.Socket.Disconnect(); err != nil {
		b.deps.Logger.Error("Failed to disconnect socket", zap.Error(err))
		return err
	}
	b.deps.Client.Close()

	b.deps.Logger.Info("Bot stopped")
	return nil
}
