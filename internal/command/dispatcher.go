package command

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"strconv"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/adapter"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/constants"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/domain"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/service"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/util"
	"github.com/i-am-called-glitchy/kirka-bot-go/pkg/errors"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

const (
	replyCommandNotFound    = "Command not found."
	replyBlacklisted        = "Blacklisted"
	replyCommandBlacklisted = "Blacklisted from using this command."
)

// Dispatcher turns normalized chat events into gated command invocations.
// Per event: parse, resolve, blacklist, cooldown, execute. Handler failures
// (errors and panics alike) are converted into an error reply and never abort
// the ingestion loop. Events are processed strictly one at a time by the
// single transport consumer, so the gates need no per-key synchronization
// beyond their own.
type Dispatcher struct {
	registry  *Registry
	cooldowns *service.CooldownController
	blacklist *service.BlacklistRegistry
	prefix    string
	send      domain.ReplyFunc
	logger    *zap.Logger
}

func NewDispatcher(registry *Registry, cooldowns *service.CooldownController, blacklist *service.BlacklistRegistry, prefix string, send domain.ReplyFunc, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		registry:  registry,
		cooldowns: cooldowns,
		blacklist: blacklist,
		prefix:    prefix,
		send:      send,
		logger:    logger,
	}
}

// Dispatch runs one event through the full pipeline. It never returns an
// error: every failure terminates in a reply or a log line.
func (d *Dispatcher) Dispatch(ctx context.Context, event *domain.ChatEvent) {
	name, args, ok := ParseCommand(event.Content, d.prefix)
	if !ok {
		return
	}

	cmdCtx := domain.NewCommandContext(event, name, args, d.send)

	handler := d.registry.Resolve(name)
	if handler == nil {
		d.reply(ctx, cmdCtx, replyCommandNotFound)
		return
	}

	switch d.blacklist.Classify(event.Author.ID, name) {
	case service.VerdictSilent:
		return
	case service.VerdictNotified:
		d.reply(ctx, cmdCtx, replyBlacklisted)
		return
	case service.VerdictCommand:
		d.reply(ctx, cmdCtx, replyCommandBlacklisted)
		return
	}

	if d.cooldowns.Check(event.Author.ID, name) {
		remaining := d.cooldowns.Remaining(event.Author.ID, name)
		d.reply(ctx, cmdCtx, fmt.Sprintf("Command on cooldown. Wait %ss", formatSeconds(remaining.Seconds())))
		return
	}

	if stack, err := d.invoke(ctx, handler, cmdCtx, args); err != nil {
		d.logger.Error("Command execution failed",
			zap.String("command", name),
			zap.String("user", event.Author.ID),
			zap.Error(err),
		)
		text := adapter.NewResponse().
			AddError(fmt.Sprintf("%s\n```\n%s\n```", err.Error(), technicalDetail(err, stack))).
			Build()
		d.reply(ctx, cmdCtx, util.TruncateString(text, constants.StringLimits.ReplyText))
		return
	}

	d.cooldowns.Update(event.Author.ID, name)
}

// invoke runs the handler, trapping panics alongside returned errors. The
// stack is only non-nil for panics.
func (d *Dispatcher) invoke(ctx context.Context, handler Command, cmdCtx *domain.CommandContext, args string) ([]byte, error) {
	var execErr error
	recovered := panics.Try(func() {
		execErr = handler.Execute(ctx, cmdCtx, args)
	})
	if recovered != nil {
		err := errors.NewCommandError(fmt.Sprintf("panic: %v", recovered.Value), cmdCtx.Command, nil)
		return recovered.Stack, err
	}
	if execErr != nil {
		// Message carries the handler's own text; the cause would duplicate
		// it in Error().
		return nil, errors.NewCommandError(execErr.Error(), cmdCtx.Command, nil)
	}
	return nil, nil
}

func (d *Dispatcher) reply(ctx context.Context, cmdCtx *domain.CommandContext, text string) {
	if err := cmdCtx.Reply(ctx, text); err != nil {
		d.logger.Error("Failed to send reply",
			zap.String("command", cmdCtx.Command),
			zap.Error(err),
		)
	}
}

// technicalDetail renders the diagnostic section of an error reply: the panic
// stack when there is one, otherwise the structured error fields.
func technicalDetail(err error, stack []byte) string {
	if len(stack) > 0 {
		return string(stack)
	}
	var botErr *errors.BotError
	if stderrors.As(err, &botErr) {
		return fmt.Sprintf("code=%s status=%d context=%v", botErr.Code, botErr.StatusCode, botErr.Context)
	}
	return err.Error()
}

// formatSeconds rounds to two decimal places without padding zeros, so 4.5
// renders as "4.5" rather than "4.50".
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(math.Round(seconds*100)/100, 'f', -1, 64)
}
