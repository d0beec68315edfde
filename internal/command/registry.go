package command

import (
	"sort"
	"strings"
	"sync"
)

// Registry stores command handlers keyed by their canonical names and every
// alias. All names share one descriptor instance; re-registering a taken name
// silently overwrites it (last writer wins). There is no removal.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Command
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Command),
	}
}

// Register adds a command handler under its name and all aliases. Names are
// stored in lowercase form to provide case-insensitive lookups.
func (r *Registry) Register(handler Command) {
	if handler == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[strings.ToLower(handler.Name())] = handler
	for _, alias := range handler.Aliases() {
		r.handlers[strings.ToLower(alias)] = handler
	}
}

// Resolve returns the handler registered for the given name or alias, or nil.
// Keys are compared in lowercase to maintain parity with Register behaviour.
func (r *Registry) Resolve(name string) Command {
	if r == nil || name == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[strings.ToLower(name)]
}

// Count returns the number of registered keys, aliases included.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Visible returns each distinct non-hidden descriptor once, sorted by
// canonical name.
func (r *Registry) Visible() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Command]struct{}, len(r.handlers))
	visible := make([]Command, 0, len(r.handlers))
	for _, handler := range r.handlers {
		if handler.Hidden() {
			continue
		}
		if _, ok := seen[handler]; ok {
			continue
		}
		seen[handler] = struct{}{}
		visible = append(visible, handler)
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].Name() < visible[j].Name()
	})
	return visible
}
