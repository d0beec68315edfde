package domain

import "encoding/json"

// Author is the fixed-shape identity attached to every chat event. ID is the
// canonical key for cooldown and blacklist lookups; ShortID is the display
// identity used when framing replies.
type Author struct {
	ID      string
	ShortID string
	Name    string
	Role    string
	Level   int
}

// ChatEvent is one normalized, independently-dispatchable chat message.
// Raw keeps the originating frame payload for diagnostics only.
type ChatEvent struct {
	Content   string
	Author    Author
	EventType int
	Raw       json.RawMessage
}
