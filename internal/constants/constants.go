package constants

import "time"

var WebSocketConfig = struct {
	MaxReconnectAttempts int
	ReconnectDelay       time.Duration
	HandshakeTimeout     time.Duration
	DisconnectTimeout    time.Duration
}{
	MaxReconnectAttempts: 5,
	ReconnectDelay:       5 * time.Second,
	HandshakeTimeout:     10 * time.Second,
	DisconnectTimeout:    5 * time.Second,
}

var ChatSendConfig = struct {
	RatePerSecond float64
	Burst         int
}{
	RatePerSecond: 1,
	Burst:         3,
}

var CooldownConfig = struct {
	Window     time.Duration
	MaxEntries int
}{
	Window:     5 * time.Second,
	MaxEntries: 100,
}

var BlacklistConfig = struct {
	CommandTTL  time.Duration
	MaxCommands int
}{
	CommandTTL:  time.Hour,
	MaxCommands: 1000,
}

var PriceCacheConfig = struct {
	TTL        time.Duration
	MaxEntries int
}{
	TTL:        10 * time.Minute,
	MaxEntries: 512,
}

var APIConfig = struct {
	RequestTimeout time.Duration
}{
	RequestTimeout: 10 * time.Second,
}

var PriceSheets = struct {
	BVLURL        string
	BVLNameField  string
	BVLPriceField string
	YZZZMTZURL    string
	YZZZMTZName   string
	YZZZMTZPrice  string
}{
	BVLURL:        "https://opensheet.elk.sh/1tzHjKpu2gYlHoCePjp6bFbKBGvZpwDjiRzT9ZUfNwbY/Alphabetical",
	BVLNameField:  "Skin Name",
	BVLPriceField: "Price",
	YZZZMTZURL:    "https://opensheet.elk.sh/1VqX9kwJx0WlHWKCJNGyIQe33APdUSXz0hEFk6x2-3bU/Sorted+View",
	YZZZMTZName:   "Name",
	YZZZMTZPrice:  "Base Value",
}

var StringLimits = struct {
	ArgText   int
	ReplyText int
}{
	ArgText:   500,
	ReplyText: 2000,
}
