package kirka

import "encoding/json"

// Frame type discriminants observed on the chat socket.
const (
	FrameTypeChat   = 2  // single chat message
	FrameTypeBatch  = 3  // bundle of chat messages
	FrameTypeSystem = 13 // server-authored line, no user attached
)

// FrameUser is the author payload carried by chat frames. Absent fields decode
// to zero values.
type FrameUser struct {
	ID      string `json:"id"`
	ShortID string `json:"shortId"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Level   int    `json:"level"`
}

// Frame is one decoded unit from the chat socket. A batch frame carries its
// sub-messages in Messages; every other field belongs to a single message.
type Frame struct {
	Type     int        `json:"type"`
	Message  string     `json:"message"`
	User     *FrameUser `json:"user"`
	Messages []*Frame   `json:"messages"`

	// Raw is the original payload, kept for diagnostics.
	Raw json.RawMessage `json:"-"`
}

func (f *Frame) UnmarshalJSON(data []byte) error {
	type frameAlias Frame
	var alias frameAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*f = Frame(alias)
	f.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// IsSystem reports whether the frame is a server-authored chat line (trade
// announcements and similar), which carries no user.
func (f *Frame) IsSystem() bool {
	return f != nil && f.Type == FrameTypeSystem && f.User == nil
}

type WebSocketState string

const (
	WSStateConnecting   WebSocketState = "CONNECTING"
	WSStateConnected    WebSocketState = "CONNECTED"
	WSStateDisconnected WebSocketState = "DISCONNECTED"
	WSStateReconnecting WebSocketState = "RECONNECTING"
	WSStateFailed       WebSocketState = "FAILED"
)

func (s WebSocketState) String() string {
	return string(s)
}

// Regions the matchmaker exposes lobby listings for.
var Regions = []string{"eu1", "na1", "sa1", "asia1", "oceania1"}
