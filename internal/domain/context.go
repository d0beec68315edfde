package domain

import "context"

// ReplySeparator joins the sender identity and the response body, matching the
// framing the game chat expects.
const ReplySeparator = " -|- "

// ReplyFunc sends text out through the chat transport.
type ReplyFunc func(ctx context.Context, text string) error

// CommandContext bundles the parsed command, its argument string, the author
// identity and a bound reply capability for one dispatched event.
type CommandContext struct {
	Command string
	Args    string
	Author  Author
	Event   *ChatEvent

	send ReplyFunc
}

func NewCommandContext(event *ChatEvent, command, args string, send ReplyFunc) *CommandContext {
	return &CommandContext{
		Command: command,
		Args:    args,
		Author:  event.Author,
		Event:   event,
		send:    send,
	}
}

// Reply sends text prefixed with the author's display identity.
func (c *CommandContext) Reply(ctx context.Context, text string) error {
	if c.send == nil {
		return nil
	}
	return c.send(ctx, c.Author.ShortID+ReplySeparator+text)
}

// ReplyRaw sends text verbatim, without the identity prefix.
func (c *CommandContext) ReplyRaw(ctx context.Context, text string) error {
	if c.send == nil {
		return nil
	}
	return c.send(ctx, text)
}
