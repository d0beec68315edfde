package service

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Verdict is the outcome of a blacklist classification.
type Verdict int

const (
	// VerdictNone permits normal dispatch.
	VerdictNone Verdict = iota
	// VerdictSilent drops the command with no reply.
	VerdictSilent
	// VerdictNotified drops the command and replies with the generic
	// blacklist message.
	VerdictNotified
	// VerdictCommand drops the command and replies with the per-command
	// blacklist message.
	VerdictCommand
)

type userSet map[string]struct{}

// BlacklistRegistry holds the three suppression tiers: a silent user set, a
// notified user set, and a per-command user set that expires as a whole a
// fixed window after creation. The per-command table caps the number of
// distinct command keys, evicting the oldest first.
type BlacklistRegistry struct {
	mu       sync.RWMutex
	silent   userSet
	notified userSet
	commands *expirable.LRU[string, userSet]
}

func NewBlacklistRegistry(commandTTL time.Duration, maxCommands int) *BlacklistRegistry {
	return &BlacklistRegistry{
		silent:   make(userSet),
		notified: make(userSet),
		commands: expirable.NewLRU[string, userSet](maxCommands, nil, commandTTL),
	}
}

// Classify returns the suppression verdict for a user attempting a command,
// checking the silent tier first, then notified, then per-command.
func (b *BlacklistRegistry) Classify(userID, command string) Verdict {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.silent[userID]; ok {
		return VerdictSilent
	}
	if _, ok := b.notified[userID]; ok {
		return VerdictNotified
	}
	if users, ok := b.commands.Peek(command); ok {
		if _, banned := users[userID]; banned {
			return VerdictCommand
		}
	}
	return VerdictNone
}

func (b *BlacklistRegistry) AddSilent(userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.silent[userID] = struct{}{}
}

func (b *BlacklistRegistry) RemoveSilent(userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.silent, userID)
}

func (b *BlacklistRegistry) AddNotified(userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notified[userID] = struct{}{}
}

func (b *BlacklistRegistry) RemoveNotified(userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.notified, userID)
}

// AddCommand blacklists a user from one command. The command's whole set
// keeps the expiry of its first insertion.
func (b *BlacklistRegistry) AddCommand(command, userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if users, ok := b.commands.Peek(command); ok {
		users[userID] = struct{}{}
		return
	}
	b.commands.Add(command, userSet{userID: {}})
}

// RemoveCommand lifts a user's blacklist for one command.
func (b *BlacklistRegistry) RemoveCommand(command, userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if users, ok := b.commands.Peek(command); ok {
		delete(users, userID)
	}
}
