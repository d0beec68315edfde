package adapter

import "strings"

// Trade announcements arrive as server-authored chat lines; these predicates
// classify them by the marker text the game embeds.

func IsTradeOffer(content string) bool {
	return strings.Contains(content, "is offering their")
}

func IsTradeAccepted(content string) bool {
	return strings.Contains(content, "** accepted **") && strings.Contains(content, "**'s offer")
}

func IsTradeCancelled(content string) bool {
	return strings.Contains(content, "cancelled their trade")
}
