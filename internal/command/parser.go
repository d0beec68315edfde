package command

import "strings"

// ParseCommand splits prefixed message content into a command name and its
// argument string. The name is the first whitespace-delimited token after the
// prefix, lowered; the argument string is the original content with the
// prefix and the name token stripped from the front, then trimmed, so the
// arguments keep their casing and internal spacing.
//
// ok is false when the content does not start with the prefix (not a
// command). A message equal to exactly the prefix yields an empty name, which
// will fail to resolve.
func ParseCommand(content, prefix string) (name, args string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", "", false
	}

	rest := content[len(prefix):]
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", "", true
	}

	token := fields[0]
	name = strings.ToLower(token)
	after := rest[strings.Index(rest, token)+len(token):]
	return name, strings.TrimSpace(after), true
}
