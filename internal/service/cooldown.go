package service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CooldownController gates command execution per (user, command) pair. The
// window and capacity are fixed at construction; when the table is full the
// oldest inserted entry is evicted regardless of expiry. Reads go through
// Peek so they never disturb the insertion order the eviction relies on.
type CooldownController struct {
	window time.Duration
	table  *expirable.LRU[string, time.Time]
}

func NewCooldownController(window time.Duration, maxEntries int) *CooldownController {
	return &CooldownController{
		window: window,
		table:  expirable.NewLRU[string, time.Time](maxEntries, nil, window),
	}
}

// Check reports whether an unexpired cooldown exists for the pair.
func (c *CooldownController) Check(userID, command string) bool {
	expiry, ok := c.table.Peek(cooldownKey(userID, command))
	return ok && time.Now().Before(expiry)
}

// Remaining returns how long until the pair's cooldown expires. Only
// meaningful after a positive Check; returns zero when no entry exists.
func (c *CooldownController) Remaining(userID, command string) time.Duration {
	expiry, ok := c.table.Peek(cooldownKey(userID, command))
	if !ok {
		return 0
	}
	return time.Until(expiry)
}

// Update sets or refreshes the pair's cooldown to now + window.
func (c *CooldownController) Update(userID, command string) {
	c.table.Add(cooldownKey(userID, command), time.Now().Add(c.window))
}

// Len returns the number of tracked pairs.
func (c *CooldownController) Len() int {
	return c.table.Len()
}

// Window returns the configured cooldown duration.
func (c *CooldownController) Window() time.Duration {
	return c.window
}

func cooldownKey(userID, command string) string {
	return userID + ":" + command
}
