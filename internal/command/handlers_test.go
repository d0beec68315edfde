package command

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/adapter"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/kirka"
	"github.com/i-am-called-glitchy/kirka-bot-go/pkg/errors"
	"go.uber.org/zap"
)

func newHandlerFixture(t *testing.T, apiHandler http.HandlerFunc) (*Dependencies, *replyRecorder, *domain.CommandContext) {
	t.Helper()

	var client *kirka.Client
	if apiHandler != nil {
		server := httptest.NewServer(apiHandler)
		t.Cleanup(server.Close)
		client = kirka.NewClient(server.URL, "kirka.io", "", zap.NewNop())
		t.Cleanup(client.Close)
	}

	deps := &Dependencies{
		Client:    client,
		Formatter: adapter.NewFormatter("."),
		Prefix:    ".",
		Logger:    zap.NewNop(),
	}

	recorder := &replyRecorder{}
	cmdCtx := domain.NewCommandContext(chatEvent(".test"), "test", "", recorder.send)
	return deps, recorder, cmdCtx
}

func TestStatsCommandRequiresArgs(t *testing.T) {
	deps, _, cmdCtx := newHandlerFixture(t, nil)
	cmd := NewStatsCommand(deps)

	err := cmd.Execute(context.Background(), cmdCtx, "")
	var valErr *errors.ValidationError
	if !stderrors.As(err, &valErr) {
		t.Fatalf("err = %v, want a validation error", err)
	}
	if !strings.Contains(err.Error(), ".stats <shortId>") {
		t.Errorf("usage text missing: %v", err)
	}
}

func TestStatsCommandNormalizesShortID(t *testing.T) {
	var gotBody []byte
	deps, recorder, cmdCtx := newHandlerFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		io.WriteString(w, `{"id":"long-1","shortId":"AB12C","name":"tester","level":12,
			"createdAt":"2021-06-15T10:30:00.000Z",
			"stats":{"kills":10,"deaths":5,"wins":2,"games":4}}`)
	})
	cmd := NewStatsCommand(deps)

	if err := cmd.Execute(context.Background(), cmdCtx, "#ab12c trailing junk"); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(string(gotBody), `"id":"AB12C"`) {
		t.Errorf("request body = %s", gotBody)
	}
	if len(recorder.sent) != 1 {
		t.Fatalf("replies = %v", recorder.sent)
	}
	reply := recorder.sent[0]
	if !strings.Contains(reply, "tester (#AB12C)") || !strings.Contains(reply, "K/D 2.00") {
		t.Errorf("reply = %q", reply)
	}
}

func TestClanCommandRequiresArgs(t *testing.T) {
	deps, _, cmdCtx := newHandlerFixture(t, nil)
	cmd := NewClanCommand(deps)

	err := cmd.Execute(context.Background(), cmdCtx, "   ")
	var valErr *errors.ValidationError
	if !stderrors.As(err, &valErr) {
		t.Fatalf("err = %v, want a validation error", err)
	}
}

func TestPingCommand(t *testing.T) {
	_, recorder, cmdCtx := newHandlerFixture(t, nil)
	cmd := NewPingCommand()

	if !cmd.Hidden() {
		t.Error("ping must be hidden from help")
	}
	if err := cmd.Execute(context.Background(), cmdCtx, ""); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(recorder.sent) != 1 || recorder.sent[0] != "AB12C -|- Pong!" {
		t.Errorf("replies = %v", recorder.sent)
	}
}

func TestHelpCommandListsVisibleOnly(t *testing.T) {
	deps, recorder, cmdCtx := newHandlerFixture(t, nil)

	registry := NewRegistry()
	help := NewHelpCommand(deps, registry)
	registry.Register(help)
	registry.Register(&stubCommand{name: "stats", aliases: []string{"profile"}})
	registry.Register(NewPingCommand())

	if err := help.Execute(context.Background(), cmdCtx, ""); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(recorder.sent) != 1 {
		t.Fatalf("replies = %v", recorder.sent)
	}

	reply := recorder.sent[0]
	if !strings.Contains(reply, ".help") || !strings.Contains(reply, ".stats") {
		t.Errorf("reply = %q", reply)
	}
	if strings.Contains(reply, ".ping") {
		t.Errorf("hidden command leaked into help: %q", reply)
	}
	if strings.Contains(reply, ".profile") {
		t.Errorf("alias listed as its own command: %q", reply)
	}
}

func TestLobbiesCommandRejectsUnknownRegion(t *testing.T) {
	deps, _, cmdCtx := newHandlerFixture(t, nil)
	cmd := NewLobbiesCommand(deps)

	err := cmd.Execute(context.Background(), cmdCtx, "mars1")
	var valErr *errors.ValidationError
	if !stderrors.As(err, &valErr) {
		t.Fatalf("err = %v, want a validation error", err)
	}
}

func TestPriceCommandRequiresArgs(t *testing.T) {
	deps, _, cmdCtx := newHandlerFixture(t, nil)

	for _, cmd := range []Command{NewPriceCommand(deps), NewValueCommand(deps)} {
		err := cmd.Execute(context.Background(), cmdCtx, "")
		var valErr *errors.ValidationError
		if !stderrors.As(err, &valErr) {
			t.Errorf("%s: err = %v, want a validation error", cmd.Name(), err)
		}
	}
}
