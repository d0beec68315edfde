package bot

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/adapter"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/command"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/config"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/kirka"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/service"
	"go.uber.org/zap"
)

func decodeFrame(t *testing.T, raw string) *kirka.Frame {
	t.Helper()
	var frame kirka.Frame
	if err := json.Unmarshal([]byte(raw), &frame); err != nil {
		t.Fatalf("bad test frame: %v", err)
	}
	return &frame
}

func newTestBot(t *testing.T, handlers ...command.Command) (*Bot, *[]string) {
	t.Helper()
	logger := zap.NewNop()

	registry := command.NewRegistry()
	for _, h := range handlers {
		registry.Register(h)
	}

	var sent []string
	send := func(_ context.Context, text string) error {
		sent = append(sent, text)
		return nil
	}

	dispatcher := command.NewDispatcher(
		registry,
		service.NewCooldownController(time.Hour, 100),
		service.NewBlacklistRegistry(time.Hour, 1000),
		".",
		send,
		logger,
	)

	deps := &Dependencies{
		Config:     &config.Config{Bot: config.BotConfig{Prefix: "."}},
		Logger:     logger,
		Client:     kirka.NewClient("http://localhost", "kirka.io", "", logger),
		Socket:     kirka.NewWebSocket("ws://localhost", "", 1, time.Second, nil, logger),
		Normalizer: adapter.NewNormalizer(logger),
		Dispatcher: dispatcher,
	}

	b, err := NewBot(deps)
	if err != nil {
		t.Fatalf("NewBot: %v", err)
	}
	return b, &sent
}

func TestHandleFrameDispatchesAfterHandshake(t *testing.T) {
	b, sent := newTestBot(t)
	ctx := context.Background()

	// Greeting frame is swallowed, even when it looks like a command.
	b.handleFrame(ctx, decodeFrame(t, `{"type":2,"message":".wat","user":{"id":"u1","shortId":"AB12C","name":"a"}}`))
	if len(*sent) != 0 {
		t.Fatalf("greeting frame produced replies: %v", *sent)
	}

	b.handleFrame(ctx, decodeFrame(t, `{"type":2,"message":".wat","user":{"id":"u1","shortId":"AB12C","name":"a"}}`))
	if len(*sent) != 1 || (*sent)[0] != "AB12C -|- Command not found." {
		t.Fatalf("replies = %v", *sent)
	}
}

func TestHandleFrameBatchOrder(t *testing.T) {
	b, sent := newTestBot(t)
	ctx := context.Background()

	b.handleFrame(ctx, decodeFrame(t, `{"type":0}`))

	batch := `{"type":3,"messages":[
		{"type":2,"message":".first","user":{"id":"u1","shortId":"AA111","name":"a"}},
		{"type":2,"message":".second","user":{"id":"u2","shortId":"BB222","name":"b"}}
	]}`
	b.handleFrame(ctx, decodeFrame(t, batch))

	if len(*sent) != 2 {
		t.Fatalf("replies = %v", *sent)
	}
	if (*sent)[0] != "AA111 -|- Command not found." || (*sent)[1] != "BB222 -|- Command not found." {
		t.Errorf("batch replies out of order: %v", *sent)
	}
}

func TestHandleSystemFrameTradeHooks(t *testing.T) {
	b, sent := newTestBot(t)
	ctx := context.Background()

	var offers, accepted, cancelled []string
	b.OnTradeOffer(func(msg string) { offers = append(offers, msg) })
	b.OnTradeAccepted(func(msg string) { accepted = append(accepted, msg) })
	b.OnTradeCancelled(func(msg string) { cancelled = append(cancelled, msg) })

	b.handleFrame(ctx, decodeFrame(t, `{"type":0}`))
	b.handleFrame(ctx, decodeFrame(t, `{"type":13,"message":"**p1** is offering their **Fiery Tanto**"}`))
	b.handleFrame(ctx, decodeFrame(t, `{"type":13,"message":"**p2** accepted **p1**'s offer"}`))
	b.handleFrame(ctx, decodeFrame(t, `{"type":13,"message":"**p1** cancelled their trade"}`))

	if len(offers) != 1 || len(accepted) != 1 || len(cancelled) != 1 {
		t.Errorf("hooks = %d/%d/%d, want 1/1/1", len(offers), len(accepted), len(cancelled))
	}
	if len(*sent) != 0 {
		t.Errorf("system frames produced replies: %v", *sent)
	}
}

func TestNewBotValidatesDependencies(t *testing.T) {
	if _, err := NewBot(nil); err == nil {
		t.Error("nil deps must be rejected")
	}
	if _, err := NewBot(&Dependencies{}); err == nil {
		t.Error("empty deps must be rejected")
	}
}
