package command

import (
	"context"
	"testing"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
)

type stubCommand struct {
	name    string
	aliases []string
	hidden  bool
	execute func(ctx context.Context, cmdCtx *domain.CommandContext, args string) error
	calls   int
}

func (s *stubCommand) Name() string        { return s.name }
func (s *stubCommand) Description() string { return "stub" }
func (s *stubCommand) Aliases() []string   { return s.aliases }
func (s *stubCommand) Hidden() bool        { return s.hidden }

func (s *stubCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, args string) error {
	s.calls++
	if s.execute != nil {
		return s.execute(ctx, cmdCtx, args)
	}
	return nil
}

func TestRegistryAliasesResolveSameInstance(t *testing.T) {
	registry := NewRegistry()
	stats := &stubCommand{name: "stats", aliases: []string{"profile", "user"}}
	registry.Register(stats)

	for _, key := range []string{"stats", "profile", "user", "STATS", "Profile"} {
		if got := registry.Resolve(key); got != Command(stats) {
			t.Errorf("Resolve(%q) = %v, want the registered instance", key, got)
		}
	}

	if registry.Count() != 3 {
		t.Errorf("Count() = %d, want 3", registry.Count())
	}
}

func TestRegistryResolveUnknown(t *testing.T) {
	registry := NewRegistry()
	if got := registry.Resolve("nope"); got != nil {
		t.Fatalf("Resolve of unknown name = %v, want nil", got)
	}
	if got := registry.Resolve(""); got != nil {
		t.Fatalf("Resolve of empty name = %v, want nil", got)
	}
}

func TestRegistryLastWriterWins(t *testing.T) {
	registry := NewRegistry()
	first := &stubCommand{name: "ping"}
	second := &stubCommand{name: "ping"}
	registry.Register(first)
	registry.Register(second)

	if got := registry.Resolve("ping"); got != Command(second) {
		t.Fatal("re-registering a name must overwrite the previous handler")
	}
}

func TestRegistryVisible(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubCommand{name: "stats", aliases: []string{"profile"}})
	registry.Register(&stubCommand{name: "help", aliases: []string{"h"}})
	registry.Register(&stubCommand{name: "ping", hidden: true})

	visible := registry.Visible()
	if len(visible) != 2 {
		t.Fatalf("Visible() returned %d commands, want 2", len(visible))
	}
	if visible[0].Name() != "help" || visible[1].Name() != "stats" {
		t.Errorf("Visible() order = [%s, %s], want [help, stats]",
			visible[0].Name(), visible[1].Name())
	}
}
